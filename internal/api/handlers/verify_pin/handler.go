package verify_pin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PT-BookingService/internal/api/handlers"
	"github.com/m04kA/PT-BookingService/internal/service/clients"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidClientID    = "некорректный ID клиента"
	msgClientNotFound     = "клиент не найден"
	msgPINMismatch        = "неверный PIN"
)

// VerifyPINRequest HTTP request model
type VerifyPINRequest struct {
	PIN string `json:"pin"`
}

// VerifyPINResponse HTTP response model
type VerifyPINResponse struct {
	Valid bool `json:"valid"`
}

type Handler struct {
	service ClientsService
	logger  Logger
}

func NewHandler(service ClientsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients/{id}/verify-pin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || clientID <= 0 {
		h.logger.Warn("POST /clients/{id}/verify-pin - Invalid client ID: %q", vars["id"])
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req VerifyPINRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients/{id}/verify-pin - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.VerifyPIN(r.Context(), clientID, req.PIN); err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("POST /clients/{id}/verify-pin - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, clients.ErrPINMismatch):
			h.logger.Warn("POST /clients/{id}/verify-pin - PIN mismatch: client_id=%d", clientID)
			handlers.RespondUnauthorized(w, msgPINMismatch)

		default:
			h.logger.Error("POST /clients/{id}/verify-pin - Failed to verify pin: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients/{id}/verify-pin - PIN verified: client_id=%d", clientID)
	handlers.RespondJSON(w, http.StatusOK, VerifyPINResponse{Valid: true})
}
