package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/m04kA/PT-BookingService/internal/domain"
	clientRepo "github.com/m04kA/PT-BookingService/internal/infra/storage/client"
	"github.com/m04kA/PT-BookingService/internal/service/clients/models"
)

// Service сервис для работы с клиентами: CRUD, PIN, баланс занятий
type Service struct {
	clientRepo  ClientRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		clientRepo:  clientRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create создает нового клиента. Имя нормализуется (trim),
// PIN по умолчанию "0000", стартовый баланс занятий задается тренером.
func (s *Service) Create(ctx context.Context, name string, sessionsRemaining int) (*models.ClientResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if sessionsRemaining < 0 {
		return nil, ErrInvalidSessions
	}

	s.logger.Info("Create: creating client name=%q sessions=%d", name, sessionsRemaining)

	client := &domain.Client{
		Name:              name,
		PIN:               domain.DefaultPIN,
		SessionsRemaining: sessionsRemaining,
	}

	created, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		if errors.Is(err, clientRepo.ErrNameTaken) {
			s.logger.Warn("Create: client name=%q already taken", name)
			return nil, ErrNameTaken
		}
		s.logger.Error("Create: repository error for name=%q: %v", name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created client id=%d name=%q", created.ID, created.Name)
	return models.FromDomainClient(created), nil
}

// Get получает клиента по ID
func (s *Service) Get(ctx context.Context, clientID int64) (*models.ClientResponse, error) {
	if clientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Get: client id=%d not found", clientID)
			return nil, ErrClientNotFound
		}
		s.logger.Error("Get: repository error for client id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(client), nil
}

// List получает всех клиентов, отсортированных по имени
func (s *Service) List(ctx context.Context) (*models.ClientListResponse, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d clients", len(clients))
	return models.FromDomainClientList(clients), nil
}

// ListBookable получает клиентов, у которых остались занятия.
// Подсказка для интерфейса записи; create по балансу не гейтится.
func (s *Service) ListBookable(ctx context.Context) (*models.ClientListResponse, error) {
	clients, err := s.clientRepo.ListBookable(ctx)
	if err != nil {
		s.logger.Error("ListBookable: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookable - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookable: fetched %d bookable clients", len(clients))
	return models.FromDomainClientList(clients), nil
}

// UpdatePIN меняет PIN клиента. PIN - ровно 4 цифры.
func (s *Service) UpdatePIN(ctx context.Context, clientID int64, pin string) error {
	if clientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}
	if !isValidPIN(pin) {
		return ErrInvalidPIN
	}

	s.logger.Info("UpdatePIN: updating pin for client id=%d", clientID)

	if err := s.clientRepo.UpdatePIN(ctx, clientID, pin); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("UpdatePIN: client id=%d not found", clientID)
			return ErrClientNotFound
		}
		s.logger.Error("UpdatePIN: repository error for client id=%d: %v", clientID, err)
		return fmt.Errorf("%w: UpdatePIN - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePIN: successfully updated pin for client id=%d", clientID)
	return nil
}

// UpdateSessions выставляет клиенту абсолютное количество оставшихся занятий
func (s *Service) UpdateSessions(ctx context.Context, clientID int64, sessionsRemaining int) error {
	if clientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}
	if sessionsRemaining < 0 {
		return ErrInvalidSessions
	}

	s.logger.Info("UpdateSessions: setting sessions=%d for client id=%d", sessionsRemaining, clientID)

	if err := s.clientRepo.UpdateSessions(ctx, clientID, sessionsRemaining); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("UpdateSessions: client id=%d not found", clientID)
			return ErrClientNotFound
		}
		s.logger.Error("UpdateSessions: repository error for client id=%d: %v", clientID, err)
		return fmt.Errorf("%w: UpdateSessions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSessions: successfully set sessions=%d for client id=%d", sessionsRemaining, clientID)
	return nil
}

// VerifyPIN проверяет PIN клиента. Несовпадение - ErrPINMismatch.
func (s *Service) VerifyPIN(ctx context.Context, clientID int64, pin string) error {
	if clientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("VerifyPIN: client id=%d not found", clientID)
			return ErrClientNotFound
		}
		s.logger.Error("VerifyPIN: repository error for client id=%d: %v", clientID, err)
		return fmt.Errorf("%w: VerifyPIN - repository error: %v", ErrInternal, err)
	}

	if client.PIN != pin {
		s.logger.Warn("VerifyPIN: pin mismatch for client id=%d", clientID)
		return ErrPINMismatch
	}

	return nil
}

// Delete удаляет клиента вместе со всеми его бронированиями.
// Оба удаления выполняются в одной транзакции: бронирований-сирот
// без клиента остаться не должно.
func (s *Service) Delete(ctx context.Context, clientID int64) error {
	if clientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	s.logger.Info("Delete: deleting client id=%d with bookings", clientID)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.DeleteByClient(ctx, clientID); err != nil {
			return fmt.Errorf("delete bookings: %w", err)
		}

		if err := s.clientRepo.Delete(ctx, clientID); err != nil {
			return fmt.Errorf("delete client: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Delete: client id=%d not found", clientID)
			return ErrClientNotFound
		}
		s.logger.Error("Delete: transaction error for client id=%d: %v", clientID, err)
		return fmt.Errorf("%w: Delete - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted client id=%d", clientID)
	return nil
}

// isValidPIN проверяет формат PIN: ровно 4 цифры
func isValidPIN(pin string) bool {
	if len(pin) != domain.PINLength {
		return false
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
