package create_blocked_time

import (
	"errors"
	"net/http"

	"github.com/m04kA/PT-BookingService/internal/api/handlers"
	"github.com/m04kA/PT-BookingService/internal/service/blockedtimes"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidDayOfWeek   = "день недели должен быть в диапазоне 0-6"
)

// CreateBlockedTimeRequest HTTP request model
type CreateBlockedTimeRequest struct {
	StartTime string `json:"startTime"` // "06:00"
	EndTime   string `json:"endTime"`   // "11:59"
	DayOfWeek *int   `json:"dayOfWeek"` // 0-6, null = каждый день
}

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

// Handle POST /api/v1/blocked-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockedTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.StartTime, req.EndTime, req.DayOfWeek)
	if err != nil {
		switch {
		case errors.Is(err, blockedtimes.ErrInvalidTime):
			h.logger.Warn("POST /blocked-times - Invalid time format: start=%q, end=%q", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, blockedtimes.ErrInvalidDayOfWeek):
			h.logger.Warn("POST /blocked-times - Invalid day of week")
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		default:
			h.logger.Error("POST /blocked-times - Failed to create blocked time: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-times - Blocked time created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
