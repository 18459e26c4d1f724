package progress

import (
	"lms/models"
	"time"
)

// maxStreakDays bounds the backward day walk. Streaks past a year are
// undercounted; callers relying on longer streaks must widen this.
const maxStreakDays = 365

// ComputeStreak counts consecutive UTC calendar days with recorded learning
// activity, ending at today. A day counts if any of the supplied access
// timestamps falls on it; the walk stops at the first gap. A user with no
// activity today and none yesterday has a streak of 0.
func ComputeStreak(lastAccessDates []time.Time, today time.Time) int {
	if len(lastAccessDates) == 0 {
		return 0
	}

	active := make(map[string]bool, len(lastAccessDates))
	for _, t := range lastAccessDates {
		active[t.UTC().Format("2006-01-02")] = true
	}

	day := today.UTC()
	// No activity yet today keeps yesterday's streak alive until midnight.
	if !active[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for i := 0; i < maxStreakDays; i++ {
		if !active[day.Format("2006-01-02")] {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// ApplyStreak writes a computed streak onto the user, keeping the longest
// streak monotonic. Persisting the user is the caller's job.
func ApplyStreak(user *models.User, streak int) {
	user.CurrentStreak = streak
	if streak > user.LongestStreak {
		user.LongestStreak = streak
	}
}
