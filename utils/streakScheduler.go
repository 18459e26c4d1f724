package utils

import (
	"lms/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitializeStreakScheduler sets up the daily streak maintenance job
func InitializeStreakScheduler(db *gorm.DB) *cron.Cron {
	log.Println("[STREAK-SCHEDULER] Initializing streak scheduler...")

	c := cron.New(cron.WithLocation(time.UTC))

	// Shortly after UTC midnight, reset streaks for users with no activity
	// on the previous day.
	c.AddFunc("10 0 * * *", func() {
		log.Println("[STREAK-SCHEDULER] Running daily streak maintenance...")
		ExpireLapsedStreaks(db, time.Now())
	})

	c.Start()
	log.Println("[STREAK-SCHEDULER] Streak scheduler started - runs daily at 00:10 UTC")
	return c
}

// ExpireLapsedStreaks zeroes the current streak of every user whose last
// learning day is before yesterday (UTC). Longest streaks are untouched.
func ExpireLapsedStreaks(db *gorm.DB, now time.Time) {
	today := now.UTC().Truncate(24 * time.Hour)
	yesterday := today.AddDate(0, 0, -1)

	var users []models.User
	if err := db.
		Where("current_streak > 0 AND is_deleted = ?", false).
		Where("last_learning_date IS NULL OR last_learning_date < ?", yesterday).
		Find(&users).Error; err != nil {
		log.Printf("[STREAK-SCHEDULER] Error fetching users with lapsed streaks: %v", err)
		return
	}

	for _, user := range users {
		if err := db.Model(&models.User{}).Where("id = ?", user.ID).
			Update("current_streak", 0).Error; err != nil {
			log.Printf("[STREAK-SCHEDULER] Error resetting streak for user %d: %v", user.ID, err)
			continue
		}
	}

	if len(users) > 0 {
		log.Printf("[STREAK-SCHEDULER] Reset %d lapsed streaks", len(users))
	}
}
