package get_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/PT-BookingService/internal/api/handlers"
	"github.com/m04kA/PT-BookingService/internal/service/bookings"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
)

type Handler struct {
	service BookingsService
	expirer Expirer
	logger  Logger
}

func NewHandler(service BookingsService, expirer Expirer, logger Logger) *Handler {
	return &Handler{
		service: service,
		expirer: expirer,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?clientId=N
// С clientId - upcoming бронирования клиента,
// без clientId - полное расписание тренера с данными клиентов.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("clientId"); raw != "" {
		clientID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || clientID <= 0 {
			h.logger.Warn("GET /bookings - Invalid clientId param: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidClientID)
			return
		}

		result, err := h.service.GetClientBookings(r.Context(), clientID)
		if err != nil {
			if errors.Is(err, bookings.ErrInvalidInput) {
				h.logger.Warn("GET /bookings - Invalid input: client_id=%d", clientID)
				handlers.RespondBadRequest(w, msgInvalidClientID)
				return
			}
			h.logger.Error("GET /bookings - Failed to get client bookings: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("GET /bookings - Fetched %d bookings for client_id=%d", len(result.Bookings), clientID)
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	}

	// Просроченные upcoming переводятся до чтения: расписание не должно
	// показывать как upcoming то, что уже истекло. Сбой прохода не
	// блокирует выдачу - фоновый тикер доберёт позже.
	if count, err := h.expirer.Execute(r.Context()); err != nil {
		h.logger.Error("GET /bookings - Expiry sweep failed: %v", err)
	} else if count > 0 {
		h.logger.Info("GET /bookings - Expiry sweep completed %d bookings", count)
	}

	result, err := h.service.GetSchedule(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings - Failed to get schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Fetched schedule with %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
