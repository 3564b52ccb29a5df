package create_client

import (
	"errors"
	"net/http"

	"github.com/m04kA/PT-BookingService/internal/api/handlers"
	"github.com/m04kA/PT-BookingService/internal/service/clients"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "имя клиента не может быть пустым"
	msgInvalidSessions    = "количество занятий не может быть отрицательным"
	msgNameTaken          = "клиент с таким именем уже существует"
)

// CreateClientRequest HTTP request model
type CreateClientRequest struct {
	Name              string `json:"name"`
	SessionsRemaining int    `json:"sessionsRemaining"`
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

// Handle POST /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.Name, req.SessionsRemaining)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidName):
			h.logger.Warn("POST /clients - Invalid name: %q", req.Name)
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, clients.ErrInvalidSessions):
			h.logger.Warn("POST /clients - Invalid sessions count: %d", req.SessionsRemaining)
			handlers.RespondBadRequest(w, msgInvalidSessions)

		case errors.Is(err, clients.ErrNameTaken):
			h.logger.Warn("POST /clients - Name taken: %q", req.Name)
			handlers.RespondConflict(w, msgNameTaken)

		default:
			h.logger.Error("POST /clients - Failed to create client: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients - Client created: client_id=%d, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
