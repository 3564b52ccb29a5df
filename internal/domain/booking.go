package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusUpcoming  BookingStatus = "upcoming"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a booked hourly training slot
type Booking struct {
	ID        int64
	ClientID  int64
	Date      string // "YYYY-MM-DD" (локальная дата)
	Hour      int    // 0-23, начало часового слота
	Status    BookingStatus
	CreatedAt time.Time
}

// IsUpcoming returns true if the booking has not reached a terminal state yet
func (b *Booking) IsUpcoming() bool {
	return b.Status == StatusUpcoming
}

// IsTerminal returns true if no further transitions are allowed.
// completed и cancelled - терминальные статусы.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// BookingWithClient бронирование с денормализованными данными клиента
// для расписания тренера (имя и остаток занятий)
type BookingWithClient struct {
	Booking
	ClientName     string
	ClientSessions int
}
