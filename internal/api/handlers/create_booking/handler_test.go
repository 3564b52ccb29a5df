package create_booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBookingHandler "github.com/m04kA/PT-BookingService/internal/api/handlers/create_booking"
	createBooking "github.com/m04kA/PT-BookingService/internal/usecase/create_booking"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createBooking.Request) (*createBooking.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := createBookingHandler.NewHandler(uc, noopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{"clientId":1,"date":"2025-06-11","hour":14}`

// =============================================================================
// STATUS MAPPING TESTS
// =============================================================================

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{ID: 42, ClientID: 1, Date: "2025-06-11", Hour: 14, Status: "upcoming"}}

	rec := doRequest(t, uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":42`)
	assert.Contains(t, rec.Body.String(), `"status":"upcoming"`)
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"clientId":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownField(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"clientId":1,"date":"2025-06-11","hour":14,"extra":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"client not found", createBooking.ErrClientNotFound, http.StatusNotFound},
		{"slot in past", createBooking.ErrSlotInPast, http.StatusConflict},
		{"slot blocked", createBooking.ErrSlotBlocked, http.StatusConflict},
		{"slot taken", createBooking.ErrSlotTaken, http.StatusConflict},
		{"duplicate for day", createBooking.ErrDuplicateForDay, http.StatusConflict},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
