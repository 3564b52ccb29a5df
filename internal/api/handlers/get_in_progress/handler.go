package get_in_progress

import (
	"net/http"

	"github.com/m04kA/PT-BookingService/internal/api/handlers"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/in-progress
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetInProgress(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings/in-progress - Failed to get in-progress bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/in-progress - %d bookings in progress", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
