package get_bookings_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getBookingsHandler "github.com/m04kA/PT-BookingService/internal/api/handlers/get_bookings"
	"github.com/m04kA/PT-BookingService/internal/service/bookings/models"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type fakeService struct {
	clientBookings *models.BookingListResponse
	schedule       *models.ScheduleResponse
	scheduleCalls  int
}

func (f *fakeService) GetClientBookings(_ context.Context, _ int64) (*models.BookingListResponse, error) {
	return f.clientBookings, nil
}

func (f *fakeService) GetSchedule(_ context.Context) (*models.ScheduleResponse, error) {
	f.scheduleCalls++
	return f.schedule, nil
}

type fakeExpirer struct {
	calls int
	err   error
}

func (f *fakeExpirer) Execute(_ context.Context) (int, error) {
	f.calls++
	return 0, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, svc *fakeService, expirer *fakeExpirer, target string) *httptest.ResponseRecorder {
	t.Helper()

	h := getBookingsHandler.NewHandler(svc, expirer, noopLogger{})
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

// =============================================================================
// ROUTING TESTS
// =============================================================================

func TestHandle_ScheduleRunsExpirySweep(t *testing.T) {
	// GIVEN: запрос расписания без clientId
	// WHEN: обрабатываем запрос
	// THEN: просроченные бронирования переведены до чтения расписания

	svc := &fakeService{schedule: &models.ScheduleResponse{Bookings: []models.BookingWithClientResponse{}}}
	expirer := &fakeExpirer{}

	rec := doRequest(t, svc, expirer, "/api/v1/bookings")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, expirer.calls)
	assert.Equal(t, 1, svc.scheduleCalls)
}

func TestHandle_SweepFailureDoesNotBlockSchedule(t *testing.T) {
	svc := &fakeService{schedule: &models.ScheduleResponse{Bookings: []models.BookingWithClientResponse{}}}
	expirer := &fakeExpirer{err: errors.New("deadlock detected")}

	rec := doRequest(t, svc, expirer, "/api/v1/bookings")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.scheduleCalls)
}

func TestHandle_ClientBookingsSkipSweep(t *testing.T) {
	// Выборка клиента - не расписание тренера, проход не запускается
	svc := &fakeService{clientBookings: &models.BookingListResponse{Bookings: []models.BookingResponse{}}}
	expirer := &fakeExpirer{}

	rec := doRequest(t, svc, expirer, "/api/v1/bookings?clientId=3")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, expirer.calls)
	assert.Zero(t, svc.scheduleCalls)
}

func TestHandle_InvalidClientID(t *testing.T) {
	rec := doRequest(t, &fakeService{}, &fakeExpirer{}, "/api/v1/bookings?clientId=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
