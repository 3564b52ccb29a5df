package get_availability_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PT-BookingService/internal/domain"
	getAvailability "github.com/m04kA/PT-BookingService/internal/usecase/get_availability"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	err       error
	gotStart  string
	gotEnd    string
}

func (f *fakeBookingRepo) ListUpcomingInRange(_ context.Context, startDate, endDate string) ([]*domain.Booking, error) {
	f.gotStart = startDate
	f.gotEnd = endDate
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
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

func newUseCase(repo *fakeBookingRepo, now time.Time) *getAvailability.UseCase {
	return getAvailability.NewUseCase(repo, noopLogger{}).WithTimeProvider(fixedTime{now})
}

func slotByHour(t *testing.T, day domain.DayAvailability, hour int) domain.HourSlot {
	t.Helper()
	for _, slot := range day.Slots {
		if slot.Hour == hour {
			return slot
		}
	}
	t.Fatalf("slot for hour %d not found on %s", hour, day.Date)
	return domain.HourSlot{}
}

// =============================================================================
// GRID SHAPE TESTS
// =============================================================================

func TestExecute_DefaultWindow(t *testing.T) {
	// GIVEN: запрос без days
	// WHEN: строим сетку
	// THEN: 7 дней начиная с сегодня, в каждом дне слоты рабочего окна 06:00-21:00

	repo := &fakeBookingRepo{}
	uc := newUseCase(repo, afternoon())

	resp, err := uc.Execute(context.Background(), &getAvailability.Request{})
	require.NoError(t, err)

	require.Len(t, resp.Days, 7)
	assert.Equal(t, "2025-06-10", resp.Days[0].Date)
	assert.Equal(t, "2025-06-16", resp.Days[6].Date)

	// Bulk-выборка покрывает полуинтервал [сегодня, сегодня+7)
	assert.Equal(t, "2025-06-10", repo.gotStart)
	assert.Equal(t, "2025-06-17", repo.gotEnd)

	for _, day := range resp.Days {
		require.Len(t, day.Slots, domain.WorkingHourEnd-domain.WorkingHourStart)
		assert.Equal(t, domain.WorkingHourStart, day.Slots[0].Hour)
		assert.Equal(t, domain.WorkingHourEnd-1, day.Slots[len(day.Slots)-1].Hour)
	}
}

func TestExecute_CustomWindow(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCase(repo, afternoon())

	resp, err := uc.Execute(context.Background(), &getAvailability.Request{Days: 3})
	require.NoError(t, err)

	require.Len(t, resp.Days, 3)
	assert.Equal(t, "2025-06-12", resp.Days[2].Date)
}

func TestExecute_SlotLabels(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCase(repo, afternoon())

	resp, err := uc.Execute(context.Background(), &getAvailability.Request{Days: 1})
	require.NoError(t, err)

	slot := slotByHour(t, resp.Days[0], 15)
	assert.Equal(t, "15:00", slot.Time)
}

// =============================================================================
// STATUS PRIORITY CHAIN TESTS
// =============================================================================

func TestExecute_PastBeatsBlocked(t *testing.T) {
	// GIVEN: сейчас 14:30, утренний заблокированный час 08:00 уже прошёл
	// WHEN: строим сетку на сегодня
	// THEN: слот показан как past, а не blocked

	repo := &fakeBookingRepo{}
	uc := newUseCase(repo, afternoon())

	resp, err := uc.Execute(context.Background(), &getAvailability.Request{Days: 1})
	require.NoError(t, err)

	assert.Equal(t, domain.SlotPast, slotByHour(t, resp.Days[0], 8).Status)
}

func TestExecute_CurrentHourIsPast(t *testing.T) {
	// Час считается прошедшим с момента своего начала
	repo := &fakeBookingRepo{}
	uc := newUseCase(repo, afternoon())

	resp, err := uc.Execute(context.Background(), &getAvailability.Request{Days: 1})
	require.NoError(t, err)

	assert.Equal(t, domain.SlotPast, slotByHour(t, resp.Days[0], 14).Status)
	assert.Equal(t, domain.SlotAvailable, slotByHour(t, resp.Days[0], 15).Status)
}

func TestExecute_BlockedBeatsBooked(t *testing.T) {
	// GIVEN: upcoming бронирование на завтра в вечернем заблокированном часе
	// WHEN: строим сетку
	// THEN: слот показан как blocked - бронирование не переопределяет блокировку

	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, ClientID: 1, Date: "2025-06-11", Hour: 18, Status: domain.StatusUpcoming},
		},
	}
	uc := newUseCase(repo, afternoon())

	resp, err := uc.Execute(context.Background(), &getAvailability.Request{Days: 2})
	require.NoError(t, err)

	assert.Equal(t, domain.SlotBlocked, slotByHour(t, resp.Days[1], 18).Status)
}

func TestExecute_BookedSlot(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, ClientID: 1, Date: "2025-06-11", Hour: 14, Status: domain.StatusUpcoming},
		},
	}
	uc := newUseCase(repo, afternoon())

	resp, err := uc.Execute(context.Background(), &getAvailability.Request{Days: 2})
	require.NoError(t, err)

	assert.Equal(t, domain.SlotBooked, slotByHour(t, resp.Days[1], 14).Status)
	// Соседний свободный час остаётся available
	assert.Equal(t, domain.SlotAvailable, slotByHour(t, resp.Days[1], 15).Status)
}

func TestExecute_FutureDayHasNoPastSlots(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCase(repo, afternoon())

	resp, err := uc.Execute(context.Background(), &getAvailability.Request{Days: 2})
	require.NoError(t, err)

	for _, slot := range resp.Days[1].Slots {
		assert.NotEqual(t, domain.SlotPast, slot.Status, "hour %d", slot.Hour)
	}
}

// =============================================================================
// VALIDATION AND ERROR TESTS
// =============================================================================

func TestExecute_InvalidDays(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, afternoon())

	_, err := uc.Execute(context.Background(), &getAvailability.Request{Days: -1})
	assert.ErrorIs(t, err, getAvailability.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &getAvailability.Request{Days: getAvailability.MaxDays + 1})
	assert.ErrorIs(t, err, getAvailability.ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := newUseCase(repo, afternoon())

	_, err := uc.Execute(context.Background(), &getAvailability.Request{})
	assert.ErrorIs(t, err, getAvailability.ErrInternal)
}
