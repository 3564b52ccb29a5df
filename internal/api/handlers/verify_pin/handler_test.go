package verify_pin_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	verifyPINHandler "github.com/m04kA/PT-BookingService/internal/api/handlers/verify_pin"
	"github.com/m04kA/PT-BookingService/internal/service/clients"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type fakeService struct {
	err error
}

func (f *fakeService) VerifyPIN(_ context.Context, _ int64, _ string) error {
	return f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, svc *fakeService, id, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := verifyPINHandler.NewHandler(svc, noopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/clients/"+id+"/verify-pin", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

// =============================================================================
// VERIFY PIN TESTS
// =============================================================================

func TestHandle_Valid(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "1", `{"pin":"4321"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":true`)
}

func TestHandle_Mismatch(t *testing.T) {
	rec := doRequest(t, &fakeService{err: clients.ErrPINMismatch}, "1", `{"pin":"0000"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_ClientNotFound(t *testing.T) {
	rec := doRequest(t, &fakeService{err: clients.ErrClientNotFound}, "99", `{"pin":"0000"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidID(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "abc", `{"pin":"0000"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "1", `{"pin":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
