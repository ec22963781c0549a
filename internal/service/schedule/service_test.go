package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type stubScheduleRepo struct {
	days []*domain.ScheduleDay
	err  error
}

func (s *stubScheduleRepo) GetWeekByExecutor(_ context.Context, _ int64) ([]*domain.ScheduleDay, error) {
	return s.days, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_GetWeek(t *testing.T) {
	repo := &stubScheduleRepo{days: []*domain.ScheduleDay{
		{ExecutorID: 7, DayOfWeek: domain.Monday, Markers: []types.TimeString{"09:00", "10:00"}},
		{ExecutorID: 7, DayOfWeek: domain.Tuesday, IsDayOff: true},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetWeek(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ExecutorID)
	require.Len(t, resp.Days, 2)
	assert.Equal(t, []string{"09:00", "10:00"}, resp.Days[0].Markers)
	assert.True(t, resp.Days[1].IsDayOff)
}

func TestService_GetWeek_NotFound(t *testing.T) {
	svc := NewService(&stubScheduleRepo{}, nopLogger{})

	_, err := svc.GetWeek(context.Background(), 7)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
