package domain

// SlotStatus статус часового слота в сетке доступности
type SlotStatus string

const (
	SlotPast      SlotStatus = "past"
	SlotBlocked   SlotStatus = "blocked"
	SlotBooked    SlotStatus = "booked"
	SlotAvailable SlotStatus = "available"
)

// HourSlot один часовой слот сетки доступности
type HourSlot struct {
	Hour   int        // 0-23
	Time   string     // "HH:00", для отображения
	Status SlotStatus
}

// DayAvailability сетка слотов одного календарного дня
type DayAvailability struct {
	Date  string // "YYYY-MM-DD"
	Slots []HourSlot
}
