package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string `json:"name" gorm:"default:''"`
	Email     string `json:"email" gorm:"unique;not null"`
	Password  string `json:"-" gorm:"not null"`
	Role      string `json:"role" gorm:"default:'STUDENT'"` // STUDENT, INSTRUCTOR, ADMIN
	IsPremium bool   `json:"is_premium" gorm:"default:false"`

	// Streak fields are mutated only by the progress package (via ApplyStreak).
	CurrentStreak    int        `json:"current_streak" gorm:"default:0"`
	LongestStreak    int        `json:"longest_streak" gorm:"default:0"`
	LastLearningDate *time.Time `json:"last_learning_date"`

	TotalLearningMinutes int `json:"total_learning_minutes" gorm:"default:0"`
	WeeklyGoalMinutes    int `json:"weekly_goal_minutes" gorm:"default:0"`

	LastLogin *time.Time `json:"last_login"`
	IsDeleted bool       `gorm:"default:false"`
}
