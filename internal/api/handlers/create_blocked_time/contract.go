package create_blocked_time

import (
	"context"

	"github.com/m04kA/PT-BookingService/internal/service/blockedtimes/models"
)

type BlockedTimesService interface {
	Create(ctx context.Context, startTime, endTime string, dayOfWeek *int) (*models.BlockedTimeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
