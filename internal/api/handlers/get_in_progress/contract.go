package get_in_progress

import (
	"context"

	"github.com/m04kA/PT-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetInProgress(ctx context.Context) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
