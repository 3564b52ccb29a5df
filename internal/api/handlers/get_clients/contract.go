package get_clients

import (
	"context"

	"github.com/m04kA/PT-BookingService/internal/service/clients/models"
)

type ClientsService interface {
	List(ctx context.Context) (*models.ClientListResponse, error)
	ListBookable(ctx context.Context) (*models.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
