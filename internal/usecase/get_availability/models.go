package get_availability

import "github.com/m04kA/PT-BookingService/internal/domain"

// Request модель запроса на получение сетки доступности
type Request struct {
	Days int // Размер скользящего окна в днях (по умолчанию 7)
}

// Response модель ответа: по одному элементу на календарный день,
// от сегодня до сегодня+Days-1
type Response struct {
	Days []domain.DayAvailability
}
