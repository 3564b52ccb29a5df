package create_booking

import (
	"time"

	createBooking "github.com/m04kA/PT-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientID int64  `json:"clientId"`
	Date     string `json:"date"` // "2025-06-10"
	Hour     int    `json:"hour"` // 0-23
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	ClientID  int64  `json:"clientId"`
	Date      string `json:"date"`
	Hour      int    `json:"hour"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ClientID: r.ClientID,
		Date:     r.Date,
		Hour:     r.Hour,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		ClientID:  resp.ClientID,
		Date:      resp.Date,
		Hour:      resp.Hour,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
