package models

import (
	"time"

	"github.com/m04kA/PT-BookingService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64     `json:"id"`
	ClientID  int64     `json:"clientId"`
	Date      string    `json:"date"` // "2025-06-10"
	Hour      int       `json:"hour"` // 0-23
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingWithClientResponse бронирование с данными клиента
// для расписания тренера
type BookingWithClientResponse struct {
	BookingResponse
	ClientName     string `json:"clientName"`
	ClientSessions int    `json:"clientSessions"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ScheduleResponse ответ с расписанием тренера
type ScheduleResponse struct {
	Bookings []BookingWithClientResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:        b.ID,
		ClientID:  b.ClientID,
		Date:      b.Date,
		Hour:      b.Hour,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if br := FromDomainBooking(b); br != nil {
			resp.Bookings = append(resp.Bookings, *br)
		}
	}

	return resp
}

// FromDomainBookingWithClient конвертирует domain модель с данными клиента в DTO
func FromDomainBookingWithClient(b *domain.BookingWithClient) *BookingWithClientResponse {
	if b == nil {
		return nil
	}

	return &BookingWithClientResponse{
		BookingResponse: BookingResponse{
			ID:        b.ID,
			ClientID:  b.ClientID,
			Date:      b.Date,
			Hour:      b.Hour,
			Status:    string(b.Status),
			CreatedAt: b.CreatedAt,
		},
		ClientName:     b.ClientName,
		ClientSessions: b.ClientSessions,
	}
}

// FromDomainSchedule конвертирует список domain моделей с данными клиента в DTO
func FromDomainSchedule(bookings []*domain.BookingWithClient) *ScheduleResponse {
	resp := &ScheduleResponse{
		Bookings: make([]BookingWithClientResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if br := FromDomainBookingWithClient(b); br != nil {
			resp.Bookings = append(resp.Bookings, *br)
		}
	}

	return resp
}
