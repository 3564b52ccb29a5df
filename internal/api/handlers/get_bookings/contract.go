package get_bookings

import (
	"context"

	"github.com/m04kA/PT-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetClientBookings(ctx context.Context, clientID int64) (*models.BookingListResponse, error)
	GetSchedule(ctx context.Context) (*models.ScheduleResponse, error)
}

// Expirer переводит просроченные upcoming бронирования перед выдачей
// расписания, чтобы тренер не видел устаревшие статусы между тиками
// фонового прохода
type Expirer interface {
	Execute(ctx context.Context) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
