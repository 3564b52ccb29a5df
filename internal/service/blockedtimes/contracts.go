package blockedtimes

import (
	"context"

	"github.com/m04kA/PT-BookingService/internal/domain"
)

// BlockedTimeRepository интерфейс репозитория заблокированных интервалов
type BlockedTimeRepository interface {
	Create(ctx context.Context, bt *domain.BlockedTime) (*domain.BlockedTime, error)
	List(ctx context.Context) ([]*domain.BlockedTime, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
