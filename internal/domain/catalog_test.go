package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalDurationMinutes(t *testing.T) {
	variant := &ServiceVariant{DurationMinutes: 60, Price: 100}

	// Без опций длительность равна базовой
	assert.Equal(t, 60, TotalDurationMinutes(variant, nil))

	options := []*ServiceOption{
		{DurationMinutes: 30, Price: 20},
		{DurationMinutes: 15, Price: 10},
	}
	assert.Equal(t, 105, TotalDurationMinutes(variant, options))
}

func TestTotalPrice(t *testing.T) {
	variant := &ServiceVariant{DurationMinutes: 60, Price: 100}
	options := []*ServiceOption{
		{DurationMinutes: 30, Price: 20.5},
		{DurationMinutes: 15, Price: 10},
	}

	assert.InDelta(t, 130.5, TotalPrice(variant, options), 0.001)
}
