package progress

import (
	courseModels "lms/models/course"
	"time"
)

// Achievement types
const (
	AchievementCourseCompleted = "course_completed"
	AchievementStudyWarrior    = "study_warrior"
	AchievementFirstModule     = "first_module"
)

// StudyWarriorMinutes is the total study time that earns the study_warrior badge.
const StudyWarriorMinutes = 600

// Rule is a pure predicate over an enrollment record. The engine guarantees
// each type is awarded at most once per record, however often the predicate
// is evaluated.
type Rule struct {
	Type        string
	Description string
	Predicate   func(*courseModels.Enrollment) bool
}

// DefaultRules returns the achievement rules in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Type:        AchievementCourseCompleted,
			Description: "Completed the course",
			Predicate: func(e *courseModels.Enrollment) bool {
				return e.IsCompleted
			},
		},
		{
			Type:        AchievementStudyWarrior,
			Description: "Studied for 10 hours in a single course",
			Predicate: func(e *courseModels.Enrollment) bool {
				return e.TotalTimeSpent >= StudyWarriorMinutes
			},
		},
		{
			Type:        AchievementFirstModule,
			Description: "Completed the first module",
			Predicate: func(e *courseModels.Enrollment) bool {
				return len(e.ModulesCompleted) > 0
			},
		},
	}
}

// EvaluateAchievements runs the default rules against the record, appends any
// newly earned achievements and returns them. Safe to call on every mutation.
func EvaluateAchievements(enr *courseModels.Enrollment, now time.Time) []courseModels.Achievement {
	return EvaluateRules(enr, DefaultRules(), now)
}

// EvaluateRules is EvaluateAchievements with an explicit rule set.
func EvaluateRules(enr *courseModels.Enrollment, rules []Rule, now time.Time) []courseModels.Achievement {
	var earned []courseModels.Achievement
	for _, rule := range rules {
		if enr.HasAchievement(rule.Type) {
			continue
		}
		if !rule.Predicate(enr) {
			continue
		}
		achievement := courseModels.Achievement{
			Type:        rule.Type,
			Description: rule.Description,
			EarnedAt:    now,
		}
		enr.Achievements = append(enr.Achievements, achievement)
		earned = append(earned, achievement)
	}
	return earned
}
