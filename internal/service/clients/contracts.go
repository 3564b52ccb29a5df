package clients

import (
	"context"

	"github.com/m04kA/PT-BookingService/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	ListBookable(ctx context.Context) ([]*domain.Client, error)
	UpdatePIN(ctx context.Context, id int64, pin string) error
	UpdateSessions(ctx context.Context, id int64, sessionsRemaining int) error
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
// (удаление клиента каскадно удаляет его бронирования)
type BookingRepository interface {
	DeleteByClient(ctx context.Context, clientID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
