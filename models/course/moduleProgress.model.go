package course

import "gorm.io/gorm"

// Content item progress status values
const (
	ContentNotStarted = "not-started"
	ContentInProgress = "in-progress"
	ContentCompleted  = "completed"
)

// ContentItemStatus tracks one content item inside a module progress record
type ContentItemStatus struct {
	ContentID uint   `json:"content_id"`
	Status    string `json:"status"`
	TimeSpent int    `json:"time_spent"` // minutes
	Score     int    `json:"score"`
}

// ModuleProgress is the per-user, per-module progress record. At most one
// active row exists per (user, module) pair.
type ModuleProgress struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"index;not null"`
	CourseID uint `json:"course_id" gorm:"index;not null"`
	ModuleID uint `json:"module_id" gorm:"index;not null"`

	ContentStatus        []ContentItemStatus `json:"content_status" gorm:"serializer:json"`
	CompletionPercentage int                 `json:"completion_percentage" gorm:"default:0"`

	IsDeleted bool `gorm:"default:false"`
}

// ContentState returns the tracked status entry for a content item, if any
func (mp *ModuleProgress) ContentState(contentID uint) *ContentItemStatus {
	for i := range mp.ContentStatus {
		if mp.ContentStatus[i].ContentID == contentID {
			return &mp.ContentStatus[i]
		}
	}
	return nil
}
