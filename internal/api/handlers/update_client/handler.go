package update_client

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
	msgNothingToUpdate    = "не указано ни одно поле для обновления"
	msgInvalidPIN         = "PIN должен состоять ровно из 4 цифр"
	msgInvalidSessions    = "количество занятий не может быть отрицательным"
	msgClientNotFound     = "клиент не найден"
)

// UpdateClientRequest HTTP request model.
// Частичное обновление: присутствующие поля применяются независимо.
type UpdateClientRequest struct {
	PIN               *string `json:"pin,omitempty"`
	SessionsRemaining *int    `json:"sessionsRemaining,omitempty"`
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

// Handle PATCH /api/v1/clients/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || clientID <= 0 {
		h.logger.Warn("PATCH /clients/{id} - Invalid client ID: %q", vars["id"])
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req UpdateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /clients/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.PIN == nil && req.SessionsRemaining == nil {
		h.logger.Warn("PATCH /clients/{id} - Nothing to update: client_id=%d", clientID)
		handlers.RespondBadRequest(w, msgNothingToUpdate)
		return
	}

	if req.PIN != nil {
		if err := h.service.UpdatePIN(r.Context(), clientID, *req.PIN); err != nil {
			h.respondError(w, "UpdatePIN", clientID, err)
			return
		}
	}

	if req.SessionsRemaining != nil {
		if err := h.service.UpdateSessions(r.Context(), clientID, *req.SessionsRemaining); err != nil {
			h.respondError(w, "UpdateSessions", clientID, err)
			return
		}
	}

	result, err := h.service.Get(r.Context(), clientID)
	if err != nil {
		h.respondError(w, "Get", clientID, err)
		return
	}

	h.logger.Info("PATCH /clients/{id} - Client updated: client_id=%d", clientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, step string, clientID int64, err error) {
	switch {
	case errors.Is(err, clients.ErrClientNotFound):
		h.logger.Warn("PATCH /clients/{id} - Client not found: client_id=%d", clientID)
		handlers.RespondNotFound(w, msgClientNotFound)

	case errors.Is(err, clients.ErrInvalidPIN):
		h.logger.Warn("PATCH /clients/{id} - Invalid PIN format: client_id=%d", clientID)
		handlers.RespondBadRequest(w, msgInvalidPIN)

	case errors.Is(err, clients.ErrInvalidSessions):
		h.logger.Warn("PATCH /clients/{id} - Invalid sessions count: client_id=%d", clientID)
		handlers.RespondBadRequest(w, msgInvalidSessions)

	default:
		h.logger.Error("PATCH /clients/{id} - %s failed: client_id=%d, error=%v", step, clientID, err)
		handlers.RespondInternalError(w)
	}
}
