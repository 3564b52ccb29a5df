package get_clients

import (
	"net/http"

	"github.com/m04kA/PT-BookingService/internal/api/handlers"
	"github.com/m04kA/PT-BookingService/internal/service/clients/models"
)

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

// Handle GET /api/v1/clients?bookable=true
// С bookable=true возвращаются только клиенты с остатком занятий.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		result *models.ClientListResponse
		err    error
	)

	if r.URL.Query().Get("bookable") == "true" {
		result, err = h.service.ListBookable(r.Context())
	} else {
		result, err = h.service.List(r.Context())
	}

	if err != nil {
		h.logger.Error("GET /clients - Failed to list clients: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients - Fetched %d clients", len(result.Clients))
	handlers.RespondJSON(w, http.StatusOK, result)
}
