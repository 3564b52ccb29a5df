package get_blocked_times

import (
	"net/http"

	"github.com/m04kA/PT-BookingService/internal/api/handlers"
)

type Handler struct {
	service BlockedTimesService
	logger  Logger
}

func NewHandler(service BlockedTimesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/blocked-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /blocked-times - Failed to list blocked times: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /blocked-times - Fetched %d blocked times", len(result.BlockedTimes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
