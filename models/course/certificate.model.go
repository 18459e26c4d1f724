package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is issued once a user completes a course
type Certificate struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"index;not null"`
	CourseID     uint      `json:"course_id" gorm:"index;not null"`
	EnrollmentID uint      `json:"enrollment_id" gorm:"index"`
	SerialNumber string    `json:"serial_number" gorm:"unique;not null"`
	IssuedAt     time.Time `json:"issued_at"`
	IsDeleted    bool      `gorm:"default:false"`
}
