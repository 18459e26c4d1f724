package course

import "gorm.io/gorm"

// Course represents a learning course
type Course struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Difficulty   string `json:"difficulty" gorm:"default:'BEGINNER'"` // BEGINNER, INTERMEDIATE, ADVANCED
	InstructorID uint   `json:"instructor_id" gorm:"index"`
	Status       string `json:"status" gorm:"default:'DRAFT'"` // DRAFT, ACTIVE, INACTIVE
	ThumbnailURL string `json:"thumbnail_url"`
	IsPublished  bool   `json:"is_published" gorm:"default:false"`

	// Maintained with atomic SQL increments on enroll/unenroll; under sequential
	// calls it equals the number of active enrollments for the course.
	EnrollmentCount int `json:"enrollment_count" gorm:"default:0"`

	IsDeleted bool `gorm:"default:false"`
}
