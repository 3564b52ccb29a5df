package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PT-BookingService/internal/domain"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// afternoon фиксированный момент: 2025-06-10 14:30 (вторник)
func afternoon() time.Time {
	return time.Date(2025, time.June, 10, 14, 30, 0, 0, time.UTC)
}

// =============================================================================
// SLOT PAST / FINISHED TESTS
// =============================================================================

func TestIsSlotPast(t *testing.T) {
	now := afternoon()

	tests := []struct {
		name string
		date string
		hour int
		want bool
	}{
		{"yesterday is past", "2025-06-09", 21, true},
		{"today earlier hour is past", "2025-06-10", 13, true},
		{"today current hour is past", "2025-06-10", 14, true},
		{"today next hour is not past", "2025-06-10", 15, false},
		{"tomorrow is not past", "2025-06-11", 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsSlotPast(tt.date, tt.hour, now))
		})
	}
}

func TestIsSlotFinished(t *testing.T) {
	// Слот текущего часа уже недоступен для записи (past),
	// но его окно еще не истекло (not finished)
	now := afternoon()

	tests := []struct {
		name string
		date string
		hour int
		want bool
	}{
		{"yesterday is finished", "2025-06-09", 21, true},
		{"today earlier hour is finished", "2025-06-10", 13, true},
		{"today current hour is not finished", "2025-06-10", 14, false},
		{"today next hour is not finished", "2025-06-10", 15, false},
		{"tomorrow is not finished", "2025-06-11", 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsSlotFinished(tt.date, tt.hour, now))
		})
	}
}

// =============================================================================
// BLOCKED HOURS TESTS
// =============================================================================

func TestIsHourBlocked(t *testing.T) {
	blocked := map[int]bool{}
	for h := domain.MorningBlockStart; h <= domain.MorningBlockEnd; h++ {
		blocked[h] = true
	}
	for h := domain.EveningBlockStart; h <= domain.EveningBlockEnd; h++ {
		blocked[h] = true
	}

	for hour := 0; hour < 24; hour++ {
		assert.Equal(t, blocked[hour], domain.IsHourBlocked(hour), "hour %d", hour)
	}
}

func TestIsHourBlocked_Boundaries(t *testing.T) {
	assert.True(t, domain.IsHourBlocked(6))
	assert.True(t, domain.IsHourBlocked(11))
	assert.False(t, domain.IsHourBlocked(12))
	assert.False(t, domain.IsHourBlocked(16))
	assert.True(t, domain.IsHourBlocked(17))
	assert.True(t, domain.IsHourBlocked(20))
	assert.False(t, domain.IsHourBlocked(21))
}

// =============================================================================
// CALENDAR HELPERS TESTS
// =============================================================================

func TestDateStr(t *testing.T) {
	assert.Equal(t, "2025-06-10", domain.DateStr(afternoon()))
}

func TestDateStrAfter(t *testing.T) {
	now := afternoon()

	assert.Equal(t, "2025-06-10", domain.DateStrAfter(now, 0))
	assert.Equal(t, "2025-06-17", domain.DateStrAfter(now, 7))
	// Переход через границу месяца
	assert.Equal(t, "2025-07-01", domain.DateStrAfter(now, 21))
}

func TestParseDate(t *testing.T) {
	parsed, err := domain.ParseDate("2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 10, parsed.Day())

	_, err = domain.ParseDate("10.06.2025")
	assert.Error(t, err)

	_, err = domain.ParseDate("")
	assert.Error(t, err)
}

func TestSlotKey(t *testing.T) {
	assert.Equal(t, "2025-06-10_14", domain.SlotKey("2025-06-10", 14))
}

func TestHourLabel(t *testing.T) {
	assert.Equal(t, "06:00", domain.HourLabel(6))
	assert.Equal(t, "14:00", domain.HourLabel(14))
}

// =============================================================================
// BOOKING STATUS TESTS
// =============================================================================

func TestBookingStatusTransitions(t *testing.T) {
	upcoming := domain.Booking{Status: domain.StatusUpcoming}
	assert.True(t, upcoming.IsUpcoming())
	assert.False(t, upcoming.IsTerminal())

	completed := domain.Booking{Status: domain.StatusCompleted}
	assert.False(t, completed.IsUpcoming())
	assert.True(t, completed.IsTerminal())

	cancelled := domain.Booking{Status: domain.StatusCancelled}
	assert.True(t, cancelled.IsTerminal())
}
