package create_client

import (
	"context"

	"github.com/m04kA/PT-BookingService/internal/service/clients/models"
)

type ClientsService interface {
	Create(ctx context.Context, name string, sessionsRemaining int) (*models.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
