package bookings_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PT-BookingService/internal/domain"
	bookingstore "github.com/m04kA/PT-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/PT-BookingService/internal/service/bookings"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type fakeBookingRepo struct {
	byClient      []*domain.Booking
	schedule      []*domain.BookingWithClient
	inProgress    []*domain.BookingWithClient
	updateErr     error
	updatedID     int64
	updatedStatus domain.BookingStatus

	gotToday string
	gotHour  int
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return nil, errors.New("not used")
}

func (f *fakeBookingRepo) ListUpcomingByClient(_ context.Context, _ int64) ([]*domain.Booking, error) {
	return f.byClient, nil
}

func (f *fakeBookingRepo) ListScheduleView(_ context.Context, today string) ([]*domain.BookingWithClient, error) {
	f.gotToday = today
	return f.schedule, nil
}

func (f *fakeBookingRepo) ListInProgress(_ context.Context, today string, currentHour int) ([]*domain.BookingWithClient, error) {
	f.gotToday = today
	f.gotHour = currentHour
	return f.inProgress, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
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

func newService(repo *fakeBookingRepo) *bookings.Service {
	return bookings.NewService(repo, noopLogger{}).WithTimeProvider(fixedTime{afternoon()})
}

// =============================================================================
// CANCEL TESTS
// =============================================================================

func TestCancel_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newService(repo)

	err := svc.Cancel(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, int64(5), repo.updatedID)
	assert.Equal(t, domain.StatusCancelled, repo.updatedStatus)
}

func TestCancel_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{updateErr: bookingstore.ErrBookingNotFound}
	svc := newService(repo)

	err := svc.Cancel(context.Background(), 99)
	assert.ErrorIs(t, err, bookings.ErrBookingNotFound)
}

// =============================================================================
// LIST TESTS
// =============================================================================

func TestGetClientBookings(t *testing.T) {
	repo := &fakeBookingRepo{
		byClient: []*domain.Booking{
			{ID: 1, ClientID: 3, Date: "2025-06-11", Hour: 14, Status: domain.StatusUpcoming},
			{ID: 2, ClientID: 3, Date: "2025-06-12", Hour: 15, Status: domain.StatusUpcoming},
		},
	}
	svc := newService(repo)

	resp, err := svc.GetClientBookings(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
	assert.Equal(t, "2025-06-11", resp.Bookings[0].Date)
	assert.Equal(t, string(domain.StatusUpcoming), resp.Bookings[0].Status)
}

func TestGetClientBookings_InvalidID(t *testing.T) {
	svc := newService(&fakeBookingRepo{})

	_, err := svc.GetClientBookings(context.Background(), 0)
	assert.ErrorIs(t, err, bookings.ErrInvalidInput)
}

func TestGetSchedule(t *testing.T) {
	// Расписание запрашивается относительно сегодняшней даты
	repo := &fakeBookingRepo{
		schedule: []*domain.BookingWithClient{
			{
				Booking:        domain.Booking{ID: 1, ClientID: 3, Date: "2025-06-10", Hour: 15, Status: domain.StatusUpcoming},
				ClientName:     "Анна",
				ClientSessions: 4,
			},
		},
	}
	svc := newService(repo)

	resp, err := svc.GetSchedule(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-06-10", repo.gotToday)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "Анна", resp.Bookings[0].ClientName)
	assert.Equal(t, 4, resp.Bookings[0].ClientSessions)
}

func TestGetInProgress_UsesCurrentHour(t *testing.T) {
	// In-progress - производная выборка: сегодняшние upcoming
	// в слоте текущего часа
	repo := &fakeBookingRepo{
		inProgress: []*domain.BookingWithClient{
			{
				Booking:    domain.Booking{ID: 1, ClientID: 3, Date: "2025-06-10", Hour: 14, Status: domain.StatusUpcoming},
				ClientName: "Борис",
			},
		},
	}
	svc := newService(repo)

	resp, err := svc.GetInProgress(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-06-10", repo.gotToday)
	assert.Equal(t, 14, repo.gotHour)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, 14, resp.Bookings[0].Hour)
}
