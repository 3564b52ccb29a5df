package get_availability

import (
	getAvailability "github.com/m04kA/PT-BookingService/internal/usecase/get_availability"
)

// SlotResponse HTTP модель часового слота
type SlotResponse struct {
	Hour   int    `json:"hour"`   // 0-23
	Time   string `json:"time"`   // "08:00"
	Status string `json:"status"` // past | blocked | booked | available
}

// DayResponse HTTP модель дня с сеткой слотов
type DayResponse struct {
	Date  string         `json:"date"` // "2025-06-10"
	Slots []SlotResponse `json:"slots"`
}

// AvailabilityResponse HTTP модель сетки доступности
type AvailabilityResponse struct {
	Days []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Days: make([]DayResponse, 0, len(resp.Days)),
	}

	for _, day := range resp.Days {
		dayResp := DayResponse{
			Date:  day.Date,
			Slots: make([]SlotResponse, 0, len(day.Slots)),
		}
		for _, slot := range day.Slots {
			dayResp.Slots = append(dayResp.Slots, SlotResponse{
				Hour:   slot.Hour,
				Time:   slot.Time,
				Status: string(slot.Status),
			})
		}
		out.Days = append(out.Days, dayResp)
	}

	return out
}
