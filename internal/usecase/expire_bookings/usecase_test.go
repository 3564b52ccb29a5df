package expire_bookings_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PT-BookingService/internal/domain"
	expireBookings "github.com/m04kA/PT-BookingService/internal/usecase/expire_bookings"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type fakeBookingRepo struct {
	candidates []*domain.Booking
	byID       map[int64]*domain.Booking
	listErr    error
	updateErr  map[int64]error
	updated    []int64

	gotToday string
	gotHour  int
}

func (f *fakeBookingRepo) ListFinishedUpcoming(_ context.Context, today string, currentHour int) ([]*domain.Booking, error) {
	f.gotToday = today
	f.gotHour = currentHour
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.candidates, nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return b, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, _ domain.BookingStatus) error {
	if err := f.updateErr[id]; err != nil {
		return err
	}
	f.updated = append(f.updated, id)
	return nil
}

type fakeClientRepo struct {
	decremented []int64
}

func (f *fakeClientRepo) DecrementSessions(_ context.Context, id int64) error {
	f.decremented = append(f.decremented, id)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	t time.Time
}

func (f fixedTime) Now() time.Time {
	return f.t
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// afternoon фиксированный момент: 2025-06-10 14:30
func afternoon() time.Time {
	return time.Date(2025, time.June, 10, 14, 30, 0, 0, time.UTC)
}

func newUseCase(bookings *fakeBookingRepo, clients *fakeClientRepo) *expireBookings.UseCase {
	return expireBookings.NewUseCase(bookings, clients, fakeTxManager{}, noopLogger{}).
		WithTimeProvider(fixedTime{afternoon()})
}

func upcoming(id, clientID int64, date string, hour int) *domain.Booking {
	return &domain.Booking{ID: id, ClientID: clientID, Date: date, Hour: hour, Status: domain.StatusUpcoming}
}

// =============================================================================
// SWEEP TESTS
// =============================================================================

func TestExecute_ExpiresFinishedBookings(t *testing.T) {
	// GIVEN: два upcoming бронирования с полностью истекшими окнами
	// WHEN: запускаем проход
	// THEN: оба переведены в completed, по занятию списано с каждого владельца

	b1 := upcoming(1, 10, "2025-06-09", 15)
	b2 := upcoming(2, 20, "2025-06-10", 13)

	bookings := &fakeBookingRepo{
		candidates: []*domain.Booking{b1, b2},
		byID:       map[int64]*domain.Booking{1: b1, 2: b2},
	}
	clients := &fakeClientRepo{}
	uc := newUseCase(bookings, clients)

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	assert.Equal(t, []int64{1, 2}, bookings.updated)
	assert.Equal(t, []int64{10, 20}, clients.decremented)

	// Выборка кандидатов привязана к текущему моменту
	assert.Equal(t, "2025-06-10", bookings.gotToday)
	assert.Equal(t, 14, bookings.gotHour)
}

func TestExecute_NoCandidates(t *testing.T) {
	bookings := &fakeBookingRepo{}
	clients := &fakeClientRepo{}
	uc := newUseCase(bookings, clients)

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, clients.decremented)
}

func TestExecute_SkipsConcurrentlyTransitioned(t *testing.T) {
	// GIVEN: между выборкой и обработкой бронирование отменили
	// WHEN: перечитываем его под блокировкой внутри транзакции
	// THEN: пропускаем без списания и без ошибки

	cancelled := upcoming(1, 10, "2025-06-09", 15)
	cancelled.Status = domain.StatusCancelled
	still := upcoming(2, 20, "2025-06-10", 13)

	bookings := &fakeBookingRepo{
		candidates: []*domain.Booking{upcoming(1, 10, "2025-06-09", 15), still},
		byID:       map[int64]*domain.Booking{1: cancelled, 2: still},
	}
	clients := &fakeClientRepo{}
	uc := newUseCase(bookings, clients)

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	assert.Equal(t, []int64{2}, bookings.updated)
	assert.Equal(t, []int64{20}, clients.decremented)
}

func TestExecute_FailureDoesNotStopSweep(t *testing.T) {
	// Сбой на одном бронировании не прерывает обработку остальных
	b1 := upcoming(1, 10, "2025-06-09", 15)
	b2 := upcoming(2, 20, "2025-06-10", 13)

	bookings := &fakeBookingRepo{
		candidates: []*domain.Booking{b1, b2},
		byID:       map[int64]*domain.Booking{1: b1, 2: b2},
		updateErr:  map[int64]error{1: errors.New("deadlock detected")},
	}
	clients := &fakeClientRepo{}
	uc := newUseCase(bookings, clients)

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	assert.Equal(t, []int64{2}, bookings.updated)
}

func TestExecute_ListError(t *testing.T) {
	bookings := &fakeBookingRepo{listErr: errors.New("connection refused")}
	uc := newUseCase(bookings, &fakeClientRepo{})

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, expireBookings.ErrInternal)
}
