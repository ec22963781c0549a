package update_schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

type stubScheduleRepo struct {
	replaced []*domain.ScheduleDay
}

func (s *stubScheduleRepo) ReplaceWeek(_ context.Context, _ int64, days []*domain.ScheduleDay) error {
	s.replaced = days
	return nil
}

func (s *stubScheduleRepo) GetWeekByExecutor(_ context.Context, _ int64) ([]*domain.ScheduleDay, error) {
	return s.replaced, nil
}

type stubTxManager struct{}

func (stubTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func fullWeek() []DayInput {
	return []DayInput{
		{DayOfWeek: "MON", Markers: []string{"09:00", "10:00"}},
		{DayOfWeek: "TUE", Markers: []string{"09:00"}},
		{DayOfWeek: "WED", Markers: []string{"09:00"}},
		{DayOfWeek: "THU", Markers: []string{"09:00"}},
		{DayOfWeek: "FRI", Markers: []string{"09:00"}},
		{DayOfWeek: "SAT", IsDayOff: true},
		{DayOfWeek: "SUN", IsDayOff: true, Markers: []string{"12:00"}},
	}
}

func TestUseCase_Execute(t *testing.T) {
	repo := &stubScheduleRepo{}
	uc := NewUseCase(repo, stubTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ExecutorID: 7, Days: fullWeek()})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ExecutorID)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, []string{"09:00", "10:00"}, resp.Days[0].Markers)

	// Маркеры выходного дня отброшены
	sunday := resp.Days[6]
	assert.True(t, sunday.IsDayOff)
	assert.Empty(t, sunday.Markers)
}

func TestValidateRequest(t *testing.T) {
	withDay := func(index int, day DayInput) []DayInput {
		days := fullWeek()
		days[index] = day
		return days
	}

	cases := []struct {
		name string
		req  Request
	}{
		{"zero executor", Request{Days: fullWeek()}},
		{"missing day", Request{ExecutorID: 7, Days: fullWeek()[:6]}},
		{"unknown day of week", Request{ExecutorID: 7, Days: withDay(0, DayInput{DayOfWeek: "MONDAY", Markers: []string{"09:00"}})}},
		{"duplicate day of week", Request{ExecutorID: 7, Days: withDay(1, DayInput{DayOfWeek: "MON", Markers: []string{"09:00"}})}},
		{"working day without markers", Request{ExecutorID: 7, Days: withDay(0, DayInput{DayOfWeek: "MON"})}},
		{"invalid marker", Request{ExecutorID: 7, Days: withDay(0, DayInput{DayOfWeek: "MON", Markers: []string{"9am"}})}},
		{"duplicate marker", Request{ExecutorID: 7, Days: withDay(0, DayInput{DayOfWeek: "MON", Markers: []string{"09:00", "09:00"}})}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, validateRequest(&tc.req), ErrInvalidInput)
		})
	}

	assert.NoError(t, validateRequest(&Request{ExecutorID: 7, Days: fullWeek()}))
}
