// Package progress holds the derived-state logic for learning progress:
// completion aggregation, achievement rules, streaks and module access
// gating. Everything here is pure; callers load records, apply these
// functions and persist the result.
package progress

import (
	"fmt"
	courseModels "lms/models/course"
	"math"
	"time"
)

// PolicySimpleRatio is the active completion policy: the percentage is the
// rounded ratio of completed modules to total modules, and reaching 100%
// immediately marks the record completed.
const PolicySimpleRatio = "simple-ratio"

// CompletionPolicy reports which completion policy the aggregator applies.
func CompletionPolicy() string { return PolicySimpleRatio }

// RecordModuleCompletion applies a module completion event to an enrollment
// record. moduleIndex is the 0-based position in the course's module
// sequence; totalModules is the number of modules in the course.
//
// The percentage and total time never decrease, and a completed record is
// never un-completed. Replaying an already-recorded module only accrues time.
func RecordModuleCompletion(enr *courseModels.Enrollment, totalModules, moduleIndex, timeSpentDelta int, now time.Time) error {
	if timeSpentDelta < 0 {
		return &ValidationError{Field: "time_spent", Reason: "must not be negative"}
	}
	if totalModules <= 0 {
		return &ValidationError{Field: "course", Reason: "has no modules"}
	}
	if moduleIndex < 0 || moduleIndex >= totalModules {
		return &NotFoundError{Resource: fmt.Sprintf("module index %d", moduleIndex)}
	}

	accessed := now
	enr.LastAccessDate = &accessed
	enr.TotalTimeSpent += timeSpentDelta

	if enr.HasModule(moduleIndex) {
		for i := range enr.ModulesCompleted {
			if enr.ModulesCompleted[i].ModuleIndex == moduleIndex {
				enr.ModulesCompleted[i].TimeSpent += timeSpentDelta
				break
			}
		}
	} else {
		enr.ModulesCompleted = append(enr.ModulesCompleted, courseModels.ModuleCompletion{
			ModuleIndex: moduleIndex,
			CompletedAt: now,
			TimeSpent:   timeSpentDelta,
		})
	}

	if moduleIndex+1 > enr.CurrentModule {
		enr.CurrentModule = moduleIndex + 1
	}

	pct := int(math.Round(float64(len(enr.ModulesCompleted)) * 100 / float64(totalModules)))
	if pct > enr.CompletionPercentage {
		enr.CompletionPercentage = pct
	}

	if enr.CompletionPercentage >= 100 && !enr.IsCompleted {
		completed := now
		enr.IsCompleted = true
		enr.CompletionDate = &completed
		enr.Status = courseModels.StatusCompleted
	} else if !enr.IsCompleted && enr.CompletionPercentage > 0 {
		enr.Status = courseModels.StatusInProgress
	}

	return nil
}

// RecordContentProgress applies a content item status update to a module
// progress record. items is the module's content list; only published,
// required items count toward the module percentage (all items count when
// none are required).
func RecordContentProgress(mp *courseModels.ModuleProgress, items []courseModels.ContentItem, contentID uint, status string, timeSpentDelta, score int) error {
	switch status {
	case courseModels.ContentNotStarted, courseModels.ContentInProgress, courseModels.ContentCompleted:
	default:
		return &ValidationError{Field: "status", Reason: "invalid status value"}
	}
	if timeSpentDelta < 0 {
		return &ValidationError{Field: "time_spent", Reason: "must not be negative"}
	}

	var item *courseModels.ContentItem
	for i := range items {
		if items[i].ID == contentID {
			item = &items[i]
			break
		}
	}
	if item == nil {
		return &NotFoundError{Resource: fmt.Sprintf("content item %d", contentID)}
	}

	state := mp.ContentState(contentID)
	if state == nil {
		mp.ContentStatus = append(mp.ContentStatus, courseModels.ContentItemStatus{
			ContentID: contentID,
			Status:    status,
			TimeSpent: timeSpentDelta,
			Score:     score,
		})
	} else {
		state.TimeSpent += timeSpentDelta
		if score > state.Score {
			state.Score = score
		}
		// A completed item never regresses to an earlier status.
		if state.Status != courseModels.ContentCompleted {
			state.Status = status
		}
	}

	mp.CompletionPercentage = moduleCompletionPercentage(mp, items)
	return nil
}

func moduleCompletionPercentage(mp *courseModels.ModuleProgress, items []courseModels.ContentItem) int {
	completed := make(map[uint]bool, len(mp.ContentStatus))
	for i := range mp.ContentStatus {
		if mp.ContentStatus[i].Status == courseModels.ContentCompleted {
			completed[mp.ContentStatus[i].ContentID] = true
		}
	}

	total := 0
	done := 0
	anyRequired := false
	for i := range items {
		if items[i].IsRequired {
			anyRequired = true
			break
		}
	}
	for i := range items {
		if anyRequired && !items[i].IsRequired {
			continue
		}
		total++
		if completed[items[i].ID] {
			done++
		}
	}
	if total == 0 {
		return 0
	}

	pct := int(math.Round(float64(done) * 100 / float64(total)))
	if pct > 100 {
		pct = 100
	}
	return pct
}

// ModuleEstimatedDuration derives a module's duration from its content list.
func ModuleEstimatedDuration(items []courseModels.ContentItem) int {
	total := 0
	for i := range items {
		total += items[i].Duration
	}
	return total
}
