package complete_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PT-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PT-BookingService/internal/infra/storage/booking"
)

// UseCase use case завершения бронирования.
// Перевод в completed и списание занятия - единственное место в системе,
// где мультистрочная запись обязана быть атомарной: частично применённое
// завершение (статус без списания или списание без статуса) недопустимо.
type UseCase struct {
	bookingRepo BookingRepository
	clientRepo  ClientRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		clientRepo:  clientRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute завершает бронирование: статус completed + списание одного
// занятия с полом на нуле. Повторное завершение возвращает
// ErrAlreadyCompleted без списания.
func (uc *UseCase) Execute(ctx context.Context, bookingID int64) error {
	uc.logger.Info("CompleteBooking: booking id=%d", bookingID)

	if bookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Загружаем бронирование (FOR UPDATE внутри транзакции:
		// конкурентные complete/expire на одной строке сериализуются)
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CompleteBooking: booking id=%d not found", bookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CompleteBooking: failed to get booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Идемпотентность: уже завершённое не списывает занятие повторно
		if booking.Status == domain.StatusCompleted {
			uc.logger.Warn("CompleteBooking: booking id=%d already completed", bookingID)
			return ErrAlreadyCompleted
		}

		// 3. Переводим в completed
		if err := uc.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusCompleted); err != nil {
			uc.logger.Error("CompleteBooking: failed to update status for id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		// 4. Списываем одно занятие владельца (GREATEST(x-1, 0))
		if err := uc.clientRepo.DecrementSessions(txCtx, booking.ClientID); err != nil {
			uc.logger.Error("CompleteBooking: failed to decrement sessions for client=%d: %v", booking.ClientID, err)
			return fmt.Errorf("%w: failed to decrement sessions: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("CompleteBooking: successfully completed booking id=%d", bookingID)
	return nil
}
