package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment status values
const (
	StatusEnrolled   = "ENROLLED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

// ModuleCompletion is one completed module inside an enrollment record
type ModuleCompletion struct {
	ModuleIndex int       `json:"module_index"`
	CompletedAt time.Time `json:"completed_at"`
	TimeSpent   int       `json:"time_spent"` // minutes
}

// Achievement is a one-time badge earned on an enrollment record
type Achievement struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	EarnedAt    time.Time `json:"earned_at"`
}

// Enrollment is the per-user, per-course progress record. At most one active
// row exists per (user, course) pair.
type Enrollment struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"index;not null"`
	CourseID uint `json:"course_id" gorm:"index;not null"`

	Status               string             `json:"status" gorm:"default:'ENROLLED'"`
	CompletionPercentage int                `json:"completion_percentage" gorm:"default:0"` // 0-100, derived
	ModulesCompleted     []ModuleCompletion `json:"modules_completed" gorm:"serializer:json"`
	TotalTimeSpent       int                `json:"total_time_spent" gorm:"default:0"` // minutes, non-decreasing
	CurrentModule        int                `json:"current_module" gorm:"default:0"`   // highest unlocked module index
	IsCompleted          bool               `json:"is_completed" gorm:"default:false"`
	CompletionDate       *time.Time         `json:"completion_date"`
	Achievements         []Achievement      `json:"achievements" gorm:"serializer:json"` // unique by type
	LastAccessDate       *time.Time         `json:"last_access_date"`

	IsDeleted bool `gorm:"default:false"`
}

// HasModule reports whether the given module index is already recorded as completed
func (e *Enrollment) HasModule(moduleIndex int) bool {
	for i := range e.ModulesCompleted {
		if e.ModulesCompleted[i].ModuleIndex == moduleIndex {
			return true
		}
	}
	return false
}

// HasAchievement reports whether an achievement of the given type is already earned
func (e *Enrollment) HasAchievement(achievementType string) bool {
	for i := range e.Achievements {
		if e.Achievements[i].Type == achievementType {
			return true
		}
	}
	return false
}
