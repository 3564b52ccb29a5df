package get_blocked_times

import (
	"context"

	"github.com/m04kA/PT-BookingService/internal/service/blockedtimes/models"
)

type BlockedTimesService interface {
	List(ctx context.Context) (*models.BlockedTimeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
