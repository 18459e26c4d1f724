package progress

import (
	courseModels "lms/models/course"
	"time"
)

// recentActivityWindow is how far back the analytics summary counts activity.
const recentActivityWindow = 7 * 24 * time.Hour

// Summary aggregates a user's enrollment records for the analytics endpoint.
type Summary struct {
	TotalCourses        int     `json:"total_courses"`
	CompletedCourses    int     `json:"completed_courses"`
	InProgressCourses   int     `json:"in_progress_courses"`
	TotalTimeHours      float64 `json:"total_time_hours"`
	AchievementCount    int     `json:"achievement_count"`
	RecentActivityCount int     `json:"recent_activity_count"`
}

// Summarize folds a set of enrollment records into summary counts.
func Summarize(records []courseModels.Enrollment, now time.Time) Summary {
	s := Summary{TotalCourses: len(records)}
	totalMinutes := 0
	cutoff := now.Add(-recentActivityWindow)

	for i := range records {
		rec := &records[i]
		if rec.IsCompleted {
			s.CompletedCourses++
		} else if rec.Status == courseModels.StatusInProgress {
			s.InProgressCourses++
		}
		totalMinutes += rec.TotalTimeSpent
		s.AchievementCount += len(rec.Achievements)
		if rec.LastAccessDate != nil && rec.LastAccessDate.After(cutoff) {
			s.RecentActivityCount++
		}
	}

	s.TotalTimeHours = float64(totalMinutes) / 60
	return s
}
