package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrder_OccupiesTime(t *testing.T) {
	assert.True(t, (&Order{Status: StatusTodo}).OccupiesTime())
	assert.True(t, (&Order{Status: StatusProcessed}).OccupiesTime())
	assert.False(t, (&Order{Status: StatusCompleted}).OccupiesTime())
	assert.False(t, (&Order{Status: StatusCanceled}).OccupiesTime())
}

func TestOrder_CanBeAccepted(t *testing.T) {
	executorID := int64(7)

	assert.True(t, (&Order{Status: StatusTodo}).CanBeAccepted())
	assert.False(t, (&Order{Status: StatusTodo, ExecutorID: &executorID}).CanBeAccepted())
	assert.False(t, (&Order{Status: StatusProcessed}).CanBeAccepted())
}

func TestOrder_BusyInterval(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	order := &Order{StartsAt: start, DurationMinutes: 90}

	busy := order.BusyInterval()
	assert.Equal(t, start, busy.Start)
	assert.Equal(t, start.Add(90*time.Minute), busy.End)
}

func TestOrder_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Order{Status: StatusTodo}).CanBeCancelled())
	assert.True(t, (&Order{Status: StatusProcessed}).CanBeCancelled())
	assert.False(t, (&Order{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Order{Status: StatusCanceled}).CanBeCancelled())
}
