package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/PT-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/PT-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgClientNotFound     = "клиент не найден"
	msgSlotInPast         = "выбранный слот уже прошёл"
	msgSlotBlocked        = "выбранный слот заблокирован"
	msgSlotTaken          = "выбранный слот уже занят"
	msgDuplicateForDay    = "у клиента уже есть запись на эту дату"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: client_id=%d, date=%s, hour=%d", req.ClientID, req.Date, req.Hour)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrClientNotFound):
			h.logger.Warn("POST /bookings - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrSlotInPast):
			h.logger.Warn("POST /bookings - Slot in past: client_id=%d, date=%s, hour=%d", req.ClientID, req.Date, req.Hour)
			handlers.RespondConflict(w, msgSlotInPast)

		case errors.Is(err, createBooking.ErrSlotBlocked):
			h.logger.Warn("POST /bookings - Slot blocked: client_id=%d, date=%s, hour=%d", req.ClientID, req.Date, req.Hour)
			handlers.RespondConflict(w, msgSlotBlocked)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: client_id=%d, date=%s, hour=%d", req.ClientID, req.Date, req.Hour)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrDuplicateForDay):
			h.logger.Warn("POST /bookings - Duplicate for day: client_id=%d, date=%s", req.ClientID, req.Date)
			handlers.RespondConflict(w, msgDuplicateForDay)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%d, date=%s, hour=%d, error=%v",
				req.ClientID, req.Date, req.Hour, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, client_id=%d, date=%s, hour=%d",
		result.ID, req.ClientID, req.Date, req.Hour)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
