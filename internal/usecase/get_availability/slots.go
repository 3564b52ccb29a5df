package get_availability

import (
	"time"

	"github.com/m04kA/PT-BookingService/internal/domain"
)

// buildBookedSet строит membership-множество занятых слотов с ключом "date_hour".
// Один проход по bulk-выборке вместо запроса на каждый слот.
func buildBookedSet(bookings []*domain.Booking) map[string]struct{} {
	booked := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		booked[domain.SlotKey(b.Date, b.Hour)] = struct{}{}
	}
	return booked
}

// slotStatus решает статус слота строгой цепочкой приоритетов,
// срабатывает первое совпадение:
//  1. past    - дата раньше сегодня, либо сегодня и час уже начался
//  2. blocked - час в фиксированном заблокированном диапазоне
//  3. booked  - на (date, hour) есть upcoming бронирование любого клиента
//  4. available - иначе
//
// Порядок гарантирует единственную авторитетную причину недоступности:
// прошедший заблокированный час показывается как past, а не blocked.
func slotStatus(date string, hour int, now time.Time, booked map[string]struct{}) domain.SlotStatus {
	if domain.IsSlotPast(date, hour, now) {
		return domain.SlotPast
	}
	if domain.IsHourBlocked(hour) {
		return domain.SlotBlocked
	}
	if _, ok := booked[domain.SlotKey(date, hour)]; ok {
		return domain.SlotBooked
	}
	return domain.SlotAvailable
}

// buildDayGrid строит сетку слотов одного дня в рабочем окне
func buildDayGrid(date string, now time.Time, booked map[string]struct{}) domain.DayAvailability {
	slots := make([]domain.HourSlot, 0, domain.WorkingHourEnd-domain.WorkingHourStart)

	for hour := domain.WorkingHourStart; hour < domain.WorkingHourEnd; hour++ {
		slots = append(slots, domain.HourSlot{
			Hour:   hour,
			Time:   domain.HourLabel(hour),
			Status: slotStatus(date, hour, now, booked),
		})
	}

	return domain.DayAvailability{
		Date:  date,
		Slots: slots,
	}
}
