package domain

import "time"

// BlockedTime represents a declared recurring unavailable window.
// Хранится и редактируется через API, но используется только для отображения:
// фактическое правило блокировки часов - фиксированные диапазоны в constants.go.
type BlockedTime struct {
	ID        int64
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	DayOfWeek *int   // 0-6, NULL = каждый день
	CreatedAt time.Time
}
