package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PT-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PT-BookingService/internal/infra/storage/booking"
	clientRepo "github.com/m04kA/PT-BookingService/internal/infra/storage/client"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	clientRepo   ClientRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		clientRepo:   clientRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет создание бронирования.
// Проверки и вставка выполняются в сериализуемой транзакции; клиентский
// снимок доступности не принимается на веру - статус слота перепроверяется
// на сервере. Страховкой от гонки служат частичные уникальные индексы:
// даже если обе конкурентные транзакции прошли проверки, закоммитится
// ровно одна, вторая получит ErrSlotTaken / ErrDuplicateForDay.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, date=%s, hour=%d", req.ClientID, req.Date, req.Hour)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Booking

	// 3. Проверки и вставка в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Клиент должен существовать
		if _, err := uc.clientRepo.GetByID(txCtx, req.ClientID); err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				uc.logger.Warn("CreateBooking: client id=%d not found", req.ClientID)
				return ErrClientNotFound
			}
			uc.logger.Error("CreateBooking: failed to get client id=%d: %v", req.ClientID, err)
			return fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}

		// 3.2. Слот должен быть доступен на момент вызова: не прошедший
		// и не заблокированный
		if domain.IsSlotPast(req.Date, req.Hour, now) {
			uc.logger.Warn("CreateBooking: slot %s %02d:00 is in the past", req.Date, req.Hour)
			return ErrSlotInPast
		}
		if domain.IsHourBlocked(req.Hour) {
			uc.logger.Warn("CreateBooking: hour %d is blocked", req.Hour)
			return ErrSlotBlocked
		}

		// 3.3. Слот не занят upcoming бронированием (проверяется раньше
		// дневного лимита клиента - причины отказа различимы для вызывающего)
		taken, err := uc.bookingRepo.ExistsUpcomingSlot(txCtx, req.Date, req.Hour)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check slot %s %02d:00: %v", req.Date, req.Hour, err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("CreateBooking: slot %s %02d:00 already taken", req.Date, req.Hour)
			return ErrSlotTaken
		}

		// 3.4. Не более одного upcoming бронирования клиента в день
		hasBooking, err := uc.bookingRepo.HasUpcomingOnDate(txCtx, req.ClientID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check client day: %v", err)
			return fmt.Errorf("%w: failed to check client day: %v", ErrInternal, err)
		}
		if hasBooking {
			uc.logger.Warn("CreateBooking: client id=%d already has a booking on %s", req.ClientID, req.Date)
			return ErrDuplicateForDay
		}

		// 3.5. Вставка
		booking := &domain.Booking{
			ClientID: req.ClientID,
			Date:     req.Date,
			Hour:     req.Hour,
			Status:   domain.StatusUpcoming,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Конкурент успел раньше - уникальный индекс сработал после
			// наших проверок
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: lost race for slot %s %02d:00", req.Date, req.Hour)
				return ErrSlotTaken
			}
			if errors.Is(err, bookingRepo.ErrClientDayTaken) {
				uc.logger.Warn("CreateBooking: lost race for client=%d day %s", req.ClientID, req.Date)
				return ErrDuplicateForDay
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		ClientID:  result.ClientID,
		Date:      result.Date,
		Hour:      result.Hour,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
	}, nil
}
