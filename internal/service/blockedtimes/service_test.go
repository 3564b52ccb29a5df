package blockedtimes_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PT-BookingService/internal/domain"
	"github.com/m04kA/PT-BookingService/internal/service/blockedtimes"
	"github.com/m04kA/PT-BookingService/pkg/ptr"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type fakeBlockedTimeRepo struct {
	created *domain.BlockedTime
	list    []*domain.BlockedTime
}

func (f *fakeBlockedTimeRepo) Create(_ context.Context, bt *domain.BlockedTime) (*domain.BlockedTime, error) {
	created := *bt
	created.ID = 1
	f.created = &created
	return &created, nil
}

func (f *fakeBlockedTimeRepo) List(_ context.Context) ([]*domain.BlockedTime, error) {
	return f.list, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// =============================================================================
// CREATE TESTS
// =============================================================================

func TestCreate_Success(t *testing.T) {
	repo := &fakeBlockedTimeRepo{}
	svc := blockedtimes.NewService(repo, noopLogger{})

	resp, err := svc.Create(context.Background(), "06:00", "11:59", ptr.Ptr(1))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "06:00", resp.StartTime)
	assert.Equal(t, "11:59", resp.EndTime)
	require.NotNil(t, resp.DayOfWeek)
	assert.Equal(t, 1, *resp.DayOfWeek)
}

func TestCreate_EveryDay(t *testing.T) {
	// nil день недели означает ежедневный интервал
	repo := &fakeBlockedTimeRepo{}
	svc := blockedtimes.NewService(repo, noopLogger{})

	resp, err := svc.Create(context.Background(), "17:00", "20:59", nil)
	require.NoError(t, err)
	assert.Nil(t, resp.DayOfWeek)
}

func TestCreate_InvalidTime(t *testing.T) {
	svc := blockedtimes.NewService(&fakeBlockedTimeRepo{}, noopLogger{})

	invalid := []struct {
		start string
		end   string
	}{
		{"25:00", "11:59"},
		{"06:00", "11:61"},
		{"abc", "11:59"},
		{"", "11:59"},
	}

	for _, tt := range invalid {
		_, err := svc.Create(context.Background(), tt.start, tt.end, nil)
		assert.ErrorIs(t, err, blockedtimes.ErrInvalidTime, "start=%q end=%q", tt.start, tt.end)
	}
}

func TestCreate_InvalidDayOfWeek(t *testing.T) {
	svc := blockedtimes.NewService(&fakeBlockedTimeRepo{}, noopLogger{})

	_, err := svc.Create(context.Background(), "06:00", "11:59", ptr.Ptr(7))
	assert.ErrorIs(t, err, blockedtimes.ErrInvalidDayOfWeek)

	_, err = svc.Create(context.Background(), "06:00", "11:59", ptr.Ptr(-1))
	assert.ErrorIs(t, err, blockedtimes.ErrInvalidDayOfWeek)
}

// =============================================================================
// LIST TESTS
// =============================================================================

func TestList(t *testing.T) {
	repo := &fakeBlockedTimeRepo{
		list: []*domain.BlockedTime{
			{ID: 1, StartTime: "06:00", EndTime: "11:59"},
			{ID: 2, StartTime: "17:00", EndTime: "20:59", DayOfWeek: ptr.Ptr(0)},
		},
	}
	svc := blockedtimes.NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.BlockedTimes, 2)
	assert.Equal(t, "17:00", resp.BlockedTimes[1].StartTime)
}
