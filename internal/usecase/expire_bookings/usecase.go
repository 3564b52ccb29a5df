package expire_bookings

import (
	"context"
	"fmt"

	"github.com/m04kA/PT-BookingService/internal/domain"
)

// UseCase use case авто-завершения просроченных бронирований.
// Upcoming бронирование, часовое окно которого полностью истекло,
// переводится в completed со списанием занятия - как при ручном
// завершении тренером.
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

// Execute переводит просроченные upcoming бронирования в completed.
// Возвращает количество переведённых бронирований.
//
// Каждое бронирование обрабатывается отдельной сериализуемой транзакцией
// с перечитыванием статуса под блокировкой строки: конкурентный ручной
// complete или cancel на том же бронировании не приводит к двойному
// списанию - строка, сменившая статус после выборки, пропускается.
func (uc *UseCase) Execute(ctx context.Context) (int, error) {
	now := uc.timeProvider.Now()
	today := domain.DateStr(now)
	currentHour := now.Hour()

	candidates, err := uc.bookingRepo.ListFinishedUpcoming(ctx, today, currentHour)
	if err != nil {
		uc.logger.Error("ExpireBookings: failed to list finished bookings: %v", err)
		return 0, fmt.Errorf("%w: failed to list finished bookings: %v", ErrInternal, err)
	}

	if len(candidates) == 0 {
		return 0, nil
	}

	uc.logger.Info("ExpireBookings: found %d finished upcoming bookings", len(candidates))

	expired := 0
	for _, candidate := range candidates {
		transitioned, err := uc.expireOne(ctx, candidate.ID)
		if err != nil {
			// Одна неудача не останавливает весь проход - остальные
			// бронирования всё равно нужно перевести
			uc.logger.Error("ExpireBookings: failed to expire booking id=%d: %v", candidate.ID, err)
			continue
		}
		if transitioned {
			expired++
		}
	}

	uc.logger.Info("ExpireBookings: expired %d of %d bookings", expired, len(candidates))
	return expired, nil
}

// expireOne переводит одно бронирование в completed со списанием занятия.
// Возвращает false без ошибки, если бронирование уже покинуло статус
// upcoming (конкурентный complete/cancel успел раньше).
func (uc *UseCase) expireOne(ctx context.Context, bookingID int64) (bool, error) {
	transitioned := false

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			return fmt.Errorf("get booking: %w", err)
		}

		// Статус-гард: списание применяется только к upcoming
		if booking.Status != domain.StatusUpcoming {
			return nil
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusCompleted); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		if err := uc.clientRepo.DecrementSessions(txCtx, booking.ClientID); err != nil {
			return fmt.Errorf("decrement sessions: %w", err)
		}

		transitioned = true
		return nil
	})

	if err != nil {
		return false, err
	}

	return transitioned, nil
}
