package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var testDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

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

func busy(startHour, endHour int) domain.Interval {
	return domain.Interval{Start: at(startHour, 0), End: at(endHour, 0)}
}

// Вчерашний вечер: ограничение min notice не действует на запрошенный день
var yesterday = testDay.Add(-time.Hour)

func TestResolveSlots_BusyIntervalShiftsStart(t *testing.T) {
	// Вариант 60 минут + опция 30 минут = 90 минут, нужно два маркера подряд.
	// Занято [09:00, 10:00): старты 08:00 и 09:00 пересекаются с занятым,
	// остается единственный старт 10:00 с покрытием маркерами 10:00 и 11:00
	executors := []domain.ExecutorDay{
		{ExecutorID: 1, Markers: markers("08:00", "09:00", "10:00", "11:00")},
	}

	slots := resolveSlots(testDay, 90, executors, []domain.Interval{busy(9, 10)}, yesterday, testPolicy())

	require.Len(t, slots, 1)
	assert.Equal(t, at(10, 0), slots[0])
}

func TestResolveSlots_HalfOpenBoundaries(t *testing.T) {
	executors := []domain.ExecutorDay{
		{ExecutorID: 1, Markers: markers("08:00", "09:00", "10:00", "11:00")},
	}

	// Занято [10:00, 11:00). Кандидат [09:00, 10:00) касается начала занятого,
	// кандидат [11:00, 12:00) касается конца - оба допустимы
	slots := resolveSlots(testDay, 60, executors, []domain.Interval{busy(10, 11)}, yesterday, testPolicy())

	assert.Equal(t, []time.Time{at(8, 0), at(9, 0), at(11, 0)}, slots)
}

func TestResolveSlots_MarkerGapBreaksCoverage(t *testing.T) {
	// Разрыв между 08:00 и 10:00 не интерполируется: двухчасовой заказ
	// не может стартовать в 08:00
	executors := []domain.ExecutorDay{
		{ExecutorID: 1, Markers: markers("08:00", "10:00", "11:00")},
	}

	slots := resolveSlots(testDay, 120, executors, nil, yesterday, testPolicy())

	assert.Equal(t, []time.Time{at(10, 0)}, slots)
}

func TestResolveSlots_DayEndBound(t *testing.T) {
	policy := testPolicy()
	policy.DayEndHour = 12

	executors := []domain.ExecutorDay{
		{ExecutorID: 1, Markers: markers("09:00", "10:00", "11:00")},
	}

	// Заказ, заканчивающийся ровно в конец дня, допустим;
	// заканчивающийся позже - нет
	slots := resolveSlots(testDay, 120, executors, nil, yesterday, policy)

	assert.Equal(t, []time.Time{at(9, 0), at(10, 0)}, slots)
}

func TestResolveSlots_MinNoticeAppliesOnlyToday(t *testing.T) {
	executors := []domain.ExecutorDay{
		{ExecutorID: 1, Markers: markers("08:00", "09:00", "10:00", "11:00")},
	}

	// Запрос на сегодня в 09:30: старты раньше 10:30 отфильтрованы
	now := at(9, 30)
	slots := resolveSlots(testDay, 60, executors, nil, now, testPolicy())
	assert.Equal(t, []time.Time{at(11, 0)}, slots)

	// Тот же день, но запрошенный накануне - все старты доступны
	slots = resolveSlots(testDay, 60, executors, nil, yesterday, testPolicy())
	assert.Len(t, slots, 4)
}

func TestResolveSlots_UnionAcrossExecutors(t *testing.T) {
	executors := []domain.ExecutorDay{
		{ExecutorID: 1, Markers: markers("09:00", "10:00")},
		{ExecutorID: 2, Markers: markers("10:00", "11:00")},
	}

	// Объединение без дубликатов, по возрастанию
	slots := resolveSlots(testDay, 60, executors, nil, yesterday, testPolicy())

	assert.Equal(t, []time.Time{at(9, 0), at(10, 0), at(11, 0)}, slots)
}

func TestResolveSlots_BusyIntervalBlocksAllExecutors(t *testing.T) {
	// Занятые интервалы глобальные: заказ в 09:00 блокирует этот старт
	// у обоих исполнителей, независимо от того, чей это заказ
	executors := []domain.ExecutorDay{
		{ExecutorID: 1, Markers: markers("09:00")},
		{ExecutorID: 2, Markers: markers("09:00", "10:00")},
	}

	slots := resolveSlots(testDay, 60, executors, []domain.Interval{busy(9, 10)}, yesterday, testPolicy())

	assert.Equal(t, []time.Time{at(10, 0)}, slots)
}

func TestResolveSlots_NoExecutors(t *testing.T) {
	slots := resolveSlots(testDay, 60, nil, nil, yesterday, testPolicy())
	assert.Empty(t, slots)
}

func TestResolveExecutorSlots_NoMarkers(t *testing.T) {
	slots := resolveExecutorSlots(testDay, at(24, 0), 60, nil, nil, yesterday, testPolicy())
	assert.Nil(t, slots)
}

func TestHasContiguousCoverage(t *testing.T) {
	minutes := []int{480, 540, 600, 720} // 08:00, 09:00, 10:00, 12:00

	assert.True(t, hasContiguousCoverage(minutes, 0, 3, 60))
	assert.True(t, hasContiguousCoverage(minutes, 0, 1, 60))
	// Между 10:00 и 12:00 разрыв
	assert.False(t, hasContiguousCoverage(minutes, 2, 2, 60))
}

func TestExtractBusyIntervals(t *testing.T) {
	orders := []*domain.Order{
		{StartsAt: at(9, 0), DurationMinutes: 60, Status: domain.StatusTodo},
		{StartsAt: at(10, 0), DurationMinutes: 60, Status: domain.StatusProcessed},
		{StartsAt: at(11, 0), DurationMinutes: 60, Status: domain.StatusCompleted},
		{StartsAt: at(12, 0), DurationMinutes: 60, Status: domain.StatusCanceled},
	}

	intervals := extractBusyIntervals(orders)

	// Завершенные и отмененные время не занимают
	require.Len(t, intervals, 2)
	assert.Equal(t, at(9, 0), intervals[0].Start)
	assert.Equal(t, at(11, 0), intervals[1].End)
}

func TestSortedMarkerMinutes(t *testing.T) {
	minutes, ok := sortedMarkerMinutes(markers("10:00", "08:30", "09:00"))
	require.True(t, ok)
	assert.Equal(t, []int{510, 540, 600}, minutes)

	_, ok = sortedMarkerMinutes(markers("bad"))
	assert.False(t, ok)
}
