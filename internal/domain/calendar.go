package domain

import (
	"fmt"
	"time"
)

// Календарные помощники работают с гражданской датой в локальном времени
// оператора. Все функции чистые: текущий момент передается параметром,
// чтобы тесты могли фиксировать "сегодня" и "текущий час".

// DateStr возвращает дату в формате "YYYY-MM-DD"
func DateStr(t time.Time) string {
	return t.Format(DateFormat)
}

// DateStrAfter возвращает дату через days дней от t
func DateStrAfter(t time.Time, days int) string {
	return t.AddDate(0, 0, days).Format(DateFormat)
}

// ParseDate разбирает дату "YYYY-MM-DD"
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected format %s", s, DateFormat)
	}
	return t, nil
}

// SlotKey возвращает ключ слота "date_hour" для membership-множеств
func SlotKey(date string, hour int) string {
	return fmt.Sprintf("%s_%d", date, hour)
}

// HourLabel возвращает отображаемое время слота: "HH:00"
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// IsSlotPast сообщает, что слот (date, hour) уже нельзя бронировать.
// Час считается прошедшим с момента своего начала: слот текущего часа
// уже недоступен, даже если на нем нет бронирования.
// Даты сравниваются лексикографически - формат YYYY-MM-DD это допускает.
func IsSlotPast(date string, hour int, now time.Time) bool {
	today := DateStr(now)
	if date < today {
		return true
	}
	if date == today && hour <= now.Hour() {
		return true
	}
	return false
}

// IsSlotFinished сообщает, что часовое окно слота полностью истекло.
// Используется авто-завершением: слот текущего часа еще идет (in-progress)
// и не подлежит переводу в completed.
func IsSlotFinished(date string, hour int, now time.Time) bool {
	today := DateStr(now)
	if date < today {
		return true
	}
	if date == today && hour < now.Hour() {
		return true
	}
	return false
}
