package create_order

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

func executors(values ...string) []domain.ExecutorDay {
	return []domain.ExecutorDay{{ExecutorID: 1, Markers: markers(values...)}}
}

func TestSlotIsAvailable(t *testing.T) {
	assert.True(t, slotIsAvailable(at(9, 0), 120, executors("09:00", "10:00"), nil, testPolicy()))
}

func TestSlotIsAvailable_StartNotOnMarker(t *testing.T) {
	assert.False(t, slotIsAvailable(at(9, 30), 60, executors("09:00", "10:00"), nil, testPolicy()))
}

func TestSlotIsAvailable_BusyOverlap(t *testing.T) {
	busy := []domain.Interval{{Start: at(9, 30), End: at(10, 30)}}

	assert.False(t, slotIsAvailable(at(9, 0), 60, executors("09:00", "10:00", "11:00"), busy, testPolicy()))
	assert.False(t, slotIsAvailable(at(10, 0), 60, executors("09:00", "10:00", "11:00"), busy, testPolicy()))
	// Старт ровно в конец занятого полуинтервала допустим
	busy = []domain.Interval{{Start: at(9, 0), End: at(10, 0)}}
	assert.True(t, slotIsAvailable(at(10, 0), 60, executors("09:00", "10:00", "11:00"), busy, testPolicy()))
}

func TestSlotIsAvailable_MarkerGap(t *testing.T) {
	// Разрыв между 09:00 и 11:00: двухчасовой заказ с 09:00 невозможен
	assert.False(t, slotIsAvailable(at(9, 0), 120, executors("09:00", "11:00"), nil, testPolicy()))
}

func TestSlotIsAvailable_DayEndBound(t *testing.T) {
	policy := testPolicy()
	policy.DayEndHour = 12

	assert.True(t, slotIsAvailable(at(10, 0), 120, executors("10:00", "11:00"), nil, policy))
	assert.False(t, slotIsAvailable(at(11, 0), 120, executors("11:00", "12:00"), nil, policy))
}

func TestSlotIsAvailable_SecondExecutorCovers(t *testing.T) {
	execs := []domain.ExecutorDay{
		{ExecutorID: 1, Markers: markers("09:00")},
		{ExecutorID: 2, Markers: markers("09:00", "10:00")},
	}

	assert.True(t, slotIsAvailable(at(9, 0), 120, execs, nil, testPolicy()))
}

func TestSlotIsAvailable_NoExecutors(t *testing.T) {
	assert.False(t, slotIsAvailable(at(9, 0), 60, nil, nil, testPolicy()))
}
