package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func interval(startHour, endHour int) Interval {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return Interval{
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestInterval_Overlaps(t *testing.T) {
	busy := interval(10, 11)

	// Настоящее пересечение
	assert.True(t, busy.Overlaps(interval(10, 12)))
	assert.True(t, busy.Overlaps(interval(9, 11)))
	assert.True(t, interval(9, 12).Overlaps(busy))

	// Касание границ полуинтервалов - не пересечение
	assert.False(t, busy.Overlaps(interval(11, 12)))
	assert.False(t, busy.Overlaps(interval(9, 10)))

	// Непересекающиеся
	assert.False(t, busy.Overlaps(interval(12, 13)))
}

func TestInterval_Contains(t *testing.T) {
	i := interval(10, 11)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, i.Contains(day.Add(10*time.Hour)))
	assert.True(t, i.Contains(day.Add(10*time.Hour+30*time.Minute)))
	// Конец полуинтервала не входит
	assert.False(t, i.Contains(day.Add(11*time.Hour)))
	assert.False(t, i.Contains(day.Add(9*time.Hour)))
}

func TestInterval_SameDay(t *testing.T) {
	i := interval(23, 25)

	assert.True(t, i.SameDay(time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)))
	assert.False(t, i.SameDay(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)))
}
