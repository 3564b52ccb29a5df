package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/PT-BookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/PT-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidDays = "некорректное значение параметра days"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?days=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid days param: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		days = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{Days: days})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: days=%d", days)
			handlers.RespondBadRequest(w, msgInvalidDays)

		default:
			h.logger.Error("GET /availability - Failed to build availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Built grid for %d days", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
