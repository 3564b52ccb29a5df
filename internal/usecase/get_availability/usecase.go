package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/PT-BookingService/internal/domain"
)

// UseCase use case построения сетки доступности слотов.
// Чистое чтение: состояние не изменяется, при ошибке хранилища
// частичный результат не возвращается.
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute строит сетку доступности на req.Days дней, начиная с сегодня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Days == 0 {
		req.Days = domain.DefaultAvailabilityDays
	}

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	today := domain.DateStr(now)
	endDate := domain.DateStrAfter(now, req.Days)

	// Один bulk-запрос на все upcoming бронирования окна
	bookings, err := uc.bookingRepo.ListUpcomingInRange(ctx, today, endDate)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list bookings in [%s, %s): %v", today, endDate, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	booked := buildBookedSet(bookings)

	days := make([]domain.DayAvailability, 0, req.Days)
	for d := 0; d < req.Days; d++ {
		date := domain.DateStrAfter(now, d)
		days = append(days, buildDayGrid(date, now, booked))
	}

	uc.logger.Info("GetAvailability: built %d-day grid from %s, %d booked slots", req.Days, today, len(booked))

	return &Response{Days: days}, nil
}
