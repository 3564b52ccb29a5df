package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// Рабочее окно дня: часовые слоты с 06:00 по 21:00 включительно
const (
	WorkingHourStart = 6
	WorkingHourEnd   = 22 // не включая, последний слот - 21:00
)

// Фиксированные заблокированные диапазоны (групповые занятия).
// Действуют каждый день независимо от содержимого таблицы blocked_times.
const (
	MorningBlockStart = 6
	MorningBlockEnd   = 11 // включительно
	EveningBlockStart = 17
	EveningBlockEnd   = 20 // включительно
)

// Default values
const (
	DefaultPIN              = "0000"
	DefaultAvailabilityDays = 7
)

// PINLength длина клиентского PIN
const PINLength = 4

// ValidStatuses список допустимых статусов бронирования
var ValidStatuses = []BookingStatus{
	StatusUpcoming,
	StatusCompleted,
	StatusCancelled,
}

// IsHourBlocked сообщает, попадает ли час в фиксированный заблокированный диапазон
func IsHourBlocked(hour int) bool {
	if hour >= MorningBlockStart && hour <= MorningBlockEnd {
		return true
	}
	if hour >= EveningBlockStart && hour <= EveningBlockEnd {
		return true
	}
	return false
}
