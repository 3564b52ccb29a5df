package blockedtimes

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/PT-BookingService/internal/domain"
	"github.com/m04kA/PT-BookingService/internal/service/blockedtimes/models"
)

// Service сервис для работы с заблокированными интервалами.
// Интервалы хранятся для отображения в интерфейсе тренера;
// фактическая блокировка часов при записи - фиксированное правило
// в domain.IsHourBlocked.
type Service struct {
	blockedTimeRepo BlockedTimeRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса заблокированных интервалов
func NewService(blockedTimeRepo BlockedTimeRepository, logger Logger) *Service {
	return &Service{
		blockedTimeRepo: blockedTimeRepo,
		logger:          logger,
	}
}

// Create создает новый заблокированный интервал.
// Время - строго "HH:MM", день недели - 0-6 либо nil (каждый день).
func (s *Service) Create(ctx context.Context, startTime, endTime string, dayOfWeek *int) (*models.BlockedTimeResponse, error) {
	if !isValidTime(startTime) || !isValidTime(endTime) {
		return nil, ErrInvalidTime
	}
	if dayOfWeek != nil && (*dayOfWeek < 0 || *dayOfWeek > 6) {
		return nil, ErrInvalidDayOfWeek
	}

	s.logger.Info("Create: creating blocked time %s-%s", startTime, endTime)

	bt := &domain.BlockedTime{
		StartTime: startTime,
		EndTime:   endTime,
		DayOfWeek: dayOfWeek,
	}

	created, err := s.blockedTimeRepo.Create(ctx, bt)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created blocked time id=%d", created.ID)
	return models.FromDomainBlockedTime(created), nil
}

// List получает все заблокированные интервалы
func (s *Service) List(ctx context.Context) (*models.BlockedTimeListResponse, error) {
	blockedTimes, err := s.blockedTimeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d blocked times", len(blockedTimes))
	return models.FromDomainBlockedTimeList(blockedTimes), nil
}

// isValidTime проверяет формат времени "HH:MM"
func isValidTime(value string) bool {
	_, err := time.Parse(domain.TimeFormat, value)
	return err == nil
}
