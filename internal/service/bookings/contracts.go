package bookings

import (
	"context"
	"time"

	"github.com/m04kA/PT-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListUpcomingByClient(ctx context.Context, clientID int64) ([]*domain.Booking, error)
	ListScheduleView(ctx context.Context, today string) ([]*domain.BookingWithClient, error)
	ListInProgress(ctx context.Context, today string, currentHour int) ([]*domain.BookingWithClient, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
