package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingHelpers(t *testing.T) {
	start := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	b := &Booking{
		StartTime: start,
		EndTime:   start.Add(90 * time.Minute),
		Status:    StatusCancelled,
	}

	assert.True(t, b.IsCancelled())
	assert.False(t, b.IsConfirmed())
	assert.Equal(t, 90, b.DurationMinutes())
	assert.Equal(t, "2025-10-15", b.Day())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusConfirmed))
	assert.True(t, IsValidStatus(StatusCancelled))
	assert.False(t, IsValidStatus("shipped"))
	assert.False(t, IsValidStatus(""))
}

func TestRoundPrice(t *testing.T) {
	assert.InDelta(t, 10.57, RoundPrice(10.567), 0.0001)
	assert.InDelta(t, 10.55, RoundPrice(10.554), 0.0001)
	assert.InDelta(t, 0.0, RoundPrice(0), 0.0001)
	assert.InDelta(t, -2.35, RoundPrice(-2.349), 0.0001)
}
