package progress

import (
	"lms/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return parsed
}

func TestComputeStreakConsecutiveDays(t *testing.T) {
	today := day(t, "2026-08-28T15:00:00Z")

	// Activity on T, T-1, T-2 with a gap at T-3
	dates := []time.Time{
		day(t, "2026-08-28T09:30:00Z"),
		day(t, "2026-08-27T22:10:00Z"),
		day(t, "2026-08-26T01:00:00Z"),
		day(t, "2026-08-24T12:00:00Z"), // gap at T-3, this one doesn't count
	}

	assert.Equal(t, 3, ComputeStreak(dates, today))
}

func TestComputeStreakResetAfterGap(t *testing.T) {
	today := day(t, "2026-08-28T15:00:00Z")

	// Only activity five days ago: streak is 0
	dates := []time.Time{day(t, "2026-08-23T10:00:00Z")}
	assert.Equal(t, 0, ComputeStreak(dates, today))
}

func TestComputeStreakSurvivesUntilMidnight(t *testing.T) {
	today := day(t, "2026-08-28T08:00:00Z")

	// Active yesterday and the day before, nothing yet today
	dates := []time.Time{
		day(t, "2026-08-27T20:00:00Z"),
		day(t, "2026-08-26T20:00:00Z"),
	}
	assert.Equal(t, 2, ComputeStreak(dates, today))
}

func TestComputeStreakNoActivity(t *testing.T) {
	assert.Equal(t, 0, ComputeStreak(nil, time.Now()))
}

func TestComputeStreakMultipleRecordsSameDay(t *testing.T) {
	today := day(t, "2026-08-28T15:00:00Z")

	// Several records on the same day count as one day
	dates := []time.Time{
		day(t, "2026-08-28T09:00:00Z"),
		day(t, "2026-08-28T18:00:00Z"),
		day(t, "2026-08-27T12:00:00Z"),
	}
	assert.Equal(t, 2, ComputeStreak(dates, today))
}

func TestComputeStreakUTCDayBoundary(t *testing.T) {
	today := day(t, "2026-08-28T01:00:00Z")

	// 2026-08-27 23:30 UTC is yesterday even though it is less than two
	// hours before "now"
	dates := []time.Time{
		day(t, "2026-08-28T00:30:00Z"),
		day(t, "2026-08-27T23:30:00Z"),
	}
	assert.Equal(t, 2, ComputeStreak(dates, today))
}

func TestComputeStreakCappedAtOneYear(t *testing.T) {
	today := day(t, "2026-08-28T12:00:00Z")

	var dates []time.Time
	for i := 0; i < 400; i++ {
		dates = append(dates, today.AddDate(0, 0, -i))
	}

	assert.Equal(t, maxStreakDays, ComputeStreak(dates, today))
}

func TestApplyStreak(t *testing.T) {
	user := &models.User{CurrentStreak: 5, LongestStreak: 10}

	ApplyStreak(user, 3)
	assert.Equal(t, 3, user.CurrentStreak)
	assert.Equal(t, 10, user.LongestStreak)

	ApplyStreak(user, 12)
	assert.Equal(t, 12, user.CurrentStreak)
	assert.Equal(t, 12, user.LongestStreak)
}
