package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PT-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PT-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/PT-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: отмена и производные выборки
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Cancel отменяет бронирование.
// Отмена безусловна: статус переводится в cancelled из любого состояния,
// списанное занятие не возвращается. Тренер - единственный оператор;
// отмена ошибочно завершённого бронирования - рабочий сценарий,
// state-machine-гард здесь намеренно отсутствует.
func (s *Service) Cancel(ctx context.Context, bookingID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// GetClientBookings получает upcoming бронирования клиента,
// отсортированные по дате и часу
func (s *Service) GetClientBookings(ctx context.Context, clientID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%d", clientID)

	if clientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListUpcomingByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: fetched %d bookings for client=%d", len(bookings), clientID)
	return models.FromDomainBookingList(bookings), nil
}

// GetSchedule получает расписание тренера: все upcoming бронирования
// плюс завершённые и отменённые за сегодня, с данными клиентов
func (s *Service) GetSchedule(ctx context.Context) (*models.ScheduleResponse, error) {
	today := domain.DateStr(s.timeProvider.Now())

	bookings, err := s.bookingRepo.ListScheduleView(ctx, today)
	if err != nil {
		s.logger.Error("GetSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: fetched %d bookings for %s", len(bookings), today)
	return models.FromDomainSchedule(bookings), nil
}

// GetInProgress получает бронирования, идущие прямо сейчас: upcoming
// со слотом текущего часа. Не хранимый статус, а производная выборка -
// тренер получает по ней запрос "завершить или отменить?".
func (s *Service) GetInProgress(ctx context.Context) (*models.ScheduleResponse, error) {
	now := s.timeProvider.Now()
	today := domain.DateStr(now)
	currentHour := now.Hour()

	bookings, err := s.bookingRepo.ListInProgress(ctx, today, currentHour)
	if err != nil {
		s.logger.Error("GetInProgress: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetInProgress - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetInProgress: %d bookings in progress at %s %02d:00", len(bookings), today, currentHour)
	return models.FromDomainSchedule(bookings), nil
}
