package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUKDateStringFollowsLondonClock(t *testing.T) {
	// 23:30 UTC on a BST day is already the next day in London
	summer := time.Date(2025, 7, 1, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-07-02", UKDateString(summer))

	// In winter London matches UTC
	winter := time.Date(2025, 1, 15, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-15", UKDateString(winter))
}

func TestUKDayDiff(t *testing.T) {
	diff, ok := UKDayDiff("2025-06-01", "2025-06-02")
	assert.True(t, ok)
	assert.Equal(t, 1, diff)

	// Across the March clock change a day is still a day
	diff, ok = UKDayDiff("2025-03-29", "2025-03-31")
	assert.True(t, ok)
	assert.Equal(t, 2, diff)

	_, ok = UKDayDiff("junk", "2025-06-02")
	assert.False(t, ok)
}

func TestNextUKMidnight(t *testing.T) {
	now := time.Date(2025, 7, 1, 23, 30, 0, 0, time.UTC)
	next := NextUKMidnight(now)

	assert.Equal(t, "2025-07-03", UKDateString(next))
	assert.Equal(t, 0, next.In(UKLocation()).Hour())
	assert.True(t, next.After(now))
}

func TestWithinHourPostWindow(t *testing.T) {
	onTheHour := time.Date(2025, 7, 1, 14, 0, 10, 0, time.UTC)
	assert.True(t, WithinHourPostWindow(onTheHour, 60))

	midHour := time.Date(2025, 7, 1, 14, 30, 0, 0, time.UTC)
	assert.False(t, WithinHourPostWindow(midHour, 60))

	assert.Equal(t, HourIndex(onTheHour), HourIndex(midHour))
}
