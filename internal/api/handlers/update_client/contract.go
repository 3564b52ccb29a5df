package update_client

import (
	"context"

	"github.com/m04kA/PT-BookingService/internal/service/clients/models"
)

type ClientsService interface {
	UpdatePIN(ctx context.Context, clientID int64, pin string) error
	UpdateSessions(ctx context.Context, clientID int64, sessionsRemaining int) error
	Get(ctx context.Context, clientID int64) (*models.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
