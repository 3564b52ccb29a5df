package models

import (
	"time"

	"github.com/m04kA/PT-BookingService/internal/domain"
)

// BlockedTimeResponse ответ с данными заблокированного интервала
type BlockedTimeResponse struct {
	ID        int64     `json:"id"`
	StartTime string    `json:"startTime"` // "HH:MM"
	EndTime   string    `json:"endTime"`   // "HH:MM"
	DayOfWeek *int      `json:"dayOfWeek"` // 0-6, null = каждый день
	CreatedAt time.Time `json:"createdAt"`
}

// BlockedTimeListResponse ответ со списком заблокированных интервалов
type BlockedTimeListResponse struct {
	BlockedTimes []BlockedTimeResponse `json:"blockedTimes"`
}

// FromDomainBlockedTime конвертирует domain модель в DTO
func FromDomainBlockedTime(bt *domain.BlockedTime) *BlockedTimeResponse {
	if bt == nil {
		return nil
	}

	return &BlockedTimeResponse{
		ID:        bt.ID,
		StartTime: bt.StartTime,
		EndTime:   bt.EndTime,
		DayOfWeek: bt.DayOfWeek,
		CreatedAt: bt.CreatedAt,
	}
}

// FromDomainBlockedTimeList конвертирует список domain моделей в DTO
func FromDomainBlockedTimeList(blockedTimes []*domain.BlockedTime) *BlockedTimeListResponse {
	resp := &BlockedTimeListResponse{
		BlockedTimes: make([]BlockedTimeResponse, 0, len(blockedTimes)),
	}

	for _, bt := range blockedTimes {
		if btr := FromDomainBlockedTime(bt); btr != nil {
			resp.BlockedTimes = append(resp.BlockedTimes, *btr)
		}
	}

	return resp
}
