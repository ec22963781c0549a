package get_available_dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// 2026-03-02 - понедельник
var testDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

var yesterday = testDay.Add(-time.Hour)

func testPolicy() Policy {
	return Policy{
		MarkerStepMinutes: 60,
		DayEndHour:        24,
		MinNoticeMinutes:  60,
		HorizonDays:       30,
	}
}

func markers(values ...string) []types.TimeString {
	result := make([]types.TimeString, 0, len(values))
	for _, v := range values {
		result = append(result, types.TimeString(v))
	}
	return result
}

func at(hour, minute int) time.Time {
	return testDay.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func week(executorID int64, days map[domain.DayOfWeek]*domain.ScheduleDay) *domain.ExecutorWeek {
	return &domain.ExecutorWeek{ExecutorID: executorID, Days: days}
}

func TestDayHasAvailableStart(t *testing.T) {
	weeks := []*domain.ExecutorWeek{
		week(1, map[domain.DayOfWeek]*domain.ScheduleDay{
			domain.Monday:  {DayOfWeek: domain.Monday, Markers: markers("09:00", "10:00")},
			domain.Tuesday: {DayOfWeek: domain.Tuesday, IsDayOff: true},
		}),
	}

	// Понедельник: есть маркеры, есть старт
	assert.True(t, dayHasAvailableStart(testDay, 60, weeks, nil, yesterday, testPolicy()))

	// Вторник: выходной день
	assert.False(t, dayHasAvailableStart(testDay.AddDate(0, 0, 1), 60, weeks, nil, yesterday, testPolicy()))

	// Среда: строки шаблона нет
	assert.False(t, dayHasAvailableStart(testDay.AddDate(0, 0, 2), 60, weeks, nil, yesterday, testPolicy()))
}

func TestDayHasAvailableStart_FullyBusy(t *testing.T) {
	weeks := []*domain.ExecutorWeek{
		week(1, map[domain.DayOfWeek]*domain.ScheduleDay{
			domain.Monday: {DayOfWeek: domain.Monday, Markers: markers("09:00", "10:00")},
		}),
	}
	busyAll := []domain.Interval{{Start: at(9, 0), End: at(11, 0)}}

	assert.False(t, dayHasAvailableStart(testDay, 60, weeks, busyAll, yesterday, testPolicy()))
}

func TestDayHasAvailableStart_SecondExecutor(t *testing.T) {
	// Первому исполнителю не хватает покрытия на двухчасовой заказ,
	// у второго старт находится
	weeks := []*domain.ExecutorWeek{
		week(1, map[domain.DayOfWeek]*domain.ScheduleDay{
			domain.Monday: {DayOfWeek: domain.Monday, Markers: markers("09:00")},
		}),
		week(2, map[domain.DayOfWeek]*domain.ScheduleDay{
			domain.Monday: {DayOfWeek: domain.Monday, Markers: markers("09:00", "10:00")},
		}),
	}

	assert.True(t, dayHasAvailableStart(testDay, 120, weeks, nil, yesterday, testPolicy()))
	assert.False(t, dayHasAvailableStart(testDay, 180, weeks, nil, yesterday, testPolicy()))
}

func TestExecutorHasStart_MinNotice(t *testing.T) {
	// Сегодня в 09:30: единственный маркер 09:00 раньше минимального запаса
	now := at(9, 30)
	assert.False(t, executorHasStart(testDay, 60, markers("09:00"), nil, now, testPolicy()))
	assert.True(t, executorHasStart(testDay, 60, markers("11:00"), nil, now, testPolicy()))
}

func TestBusyIntervalsForDay(t *testing.T) {
	intervals := []domain.Interval{
		{Start: at(9, 0), End: at(10, 0)},
		{Start: at(9+24, 0), End: at(10+24, 0)},
	}

	dayBusy := busyIntervalsForDay(intervals, testDay)

	assert.Len(t, dayBusy, 1)
	assert.Equal(t, at(9, 0), dayBusy[0].Start)
}
