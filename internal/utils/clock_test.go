package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClock(t *testing.T) {
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
	clock := NewMockClock(now)

	clock.Advance(90 * time.Minute)
	assert.Equal(t, now.Add(90*time.Minute), clock.Now())

	clock.SetNow(now)
	assert.Equal(t, now, clock.Now())
}

func TestStartOfDay(t *testing.T) {
	warsaw, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)

	// 23:30 UTC is already the next day in Warsaw
	got := StartOfDay(time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC), warsaw)

	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, warsaw), got)
}
