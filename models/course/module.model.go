package course

import (
	"time"

	"gorm.io/gorm"
)

// Module represents a section within a course
type Module struct {
	gorm.Model
	CourseID     uint   `json:"course_id" gorm:"index;not null"`
	ModuleNumber int    `json:"module_number" gorm:"default:0"` // position in the course sequence, unique per course
	Title        string `json:"title"`
	Description  string `json:"description"`

	// Sum of content item durations, recomputed whenever content is saved.
	EstimatedDuration int `json:"estimated_duration" gorm:"default:0"` // minutes

	SequentialAccess bool `json:"sequential_access" gorm:"default:false"`
	AllowSkip        bool `json:"allow_skip"`
	MaxAttempts      int  `json:"max_attempts" gorm:"default:0"` // 0 = unlimited quiz attempts

	// Module numbers that must be completed before this module unlocks.
	PrerequisiteModules []int `json:"prerequisite_modules" gorm:"serializer:json"`

	// Empty list means no role restriction.
	AllowedRoles []string `json:"allowed_roles" gorm:"serializer:json"`

	IsPremiumOnly  bool       `json:"is_premium_only" gorm:"default:false"`
	AvailableFrom  *time.Time `json:"available_from"`
	AvailableUntil *time.Time `json:"available_until"`

	IsDeleted bool `gorm:"default:false"`
}
