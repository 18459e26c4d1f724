package progressController

import (
	"lms/config"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/progress"
	"lms/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Notifier *utils.EventNotifier
}

func New(db *gorm.DB, cfg *config.Config, notifier *utils.EventNotifier) *Controller {
	return &Controller{DB: db, Cfg: cfg, Notifier: notifier}
}

// UpdateModuleProgress applies a module completion event to the user's
// enrollment record: completion percentage, achievements and streak are all
// recomputed and saved, and completion side effects fire asynchronously.
//
// The read-modify-write cycle is deliberately not locked; two racing updates
// for the same record resolve last-write-wins.
func (ctrl *Controller) UpdateModuleProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := ctrl.DB.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*struct {
		CourseID  uint `json:"course_id"`
		ModuleID  uint `json:"module_id"`
		TimeSpent int  `json:"time_spent"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course courseModels.Course
	if err := ctrl.DB.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := ctrl.DB.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, reqData.CourseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	// The course's module sequence, ordered; the target module's position in
	// it is the module index the aggregator works with.
	var modules []courseModels.Module
	if err := ctrl.DB.Where("course_id = ? AND is_deleted = ?", reqData.CourseID, false).
		Order("module_number asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	moduleIndex := -1
	for i := range modules {
		if modules[i].ID == reqData.ModuleID {
			moduleIndex = i
			break
		}
	}
	if moduleIndex == -1 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found in this course!", nil)
	}

	now := time.Now()
	wasCompleted := enrollment.IsCompleted

	if err := progress.RecordModuleCompletion(&enrollment, len(modules), moduleIndex, reqData.TimeSpent, now); err != nil {
		return middleware.CoreErrorResponse(c, err)
	}

	earned := progress.EvaluateAchievements(&enrollment, now)

	if err := ctrl.DB.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	// Streak and learning totals live on the user record
	user.TotalLearningMinutes += reqData.TimeSpent
	user.LastLearningDate = &now
	progress.ApplyStreak(&user, ctrl.computeUserStreak(userID, now))

	if err := ctrl.DB.Save(&user).Error; err != nil {
		log.Printf("[PROGRESS] Error saving user streak for user %d: %v", userID, err)
	}

	completedNow := !wasCompleted && enrollment.IsCompleted
	if completedNow || len(earned) > 0 {
		go ctrl.notifyProgressEvents(user, course, enrollment, completedNow, earned, now)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", fiber.Map{
		"progress":          enrollment,
		"new_achievements":  earned,
		"completion_policy": progress.CompletionPolicy(),
	})
}

// GetStreaks recomputes the user's streak from their enrollment records and
// returns the streak summary
func (ctrl *Controller) GetStreaks(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := ctrl.DB.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	progress.ApplyStreak(&user, ctrl.computeUserStreak(userID, time.Now()))

	if err := ctrl.DB.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"current_streak": user.CurrentStreak,
		"longest_streak": user.LongestStreak,
	}).Error; err != nil {
		log.Printf("[PROGRESS] Error persisting streak for user %d: %v", userID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Streaks fetched successfully!", fiber.Map{
		"current_streak":      user.CurrentStreak,
		"longest_streak":      user.LongestStreak,
		"last_active_date":    user.LastLearningDate,
		"weekly_goal_minutes": user.WeeklyGoalMinutes,
	})
}

// GetAnalytics aggregates the user's enrollment records into summary counts
func (ctrl *Controller) GetAnalytics(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := ctrl.DB.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress records!", nil)
	}

	summary := progress.Summarize(enrollments, time.Now())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched successfully!", summary)
}

// GetCourseProgress returns the enrollment record plus module-wise detail
func (ctrl *Controller) GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := ctrl.DB.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var moduleProgress []courseModels.ModuleProgress
	ctrl.DB.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).Find(&moduleProgress)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress":          enrollment,
		"module_progress":   moduleProgress,
		"completion_policy": progress.CompletionPolicy(),
	})
}

// computeUserStreak gathers the access dates across all of the user's
// enrollment records and runs the pure day-walk
func (ctrl *Controller) computeUserStreak(userID uint, now time.Time) int {
	var enrollments []courseModels.Enrollment
	if err := ctrl.DB.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&enrollments).Error; err != nil {
		log.Printf("[PROGRESS] Error fetching enrollments for streak: %v", err)
		return 0
	}

	var accessDates []time.Time
	for i := range enrollments {
		if enrollments[i].LastAccessDate != nil {
			accessDates = append(accessDates, *enrollments[i].LastAccessDate)
		}
	}

	return progress.ComputeStreak(accessDates, now)
}

// notifyProgressEvents fires completion/achievement side effects; runs in a
// goroutine, failures are logged only
func (ctrl *Controller) notifyProgressEvents(user models.User, course courseModels.Course, enrollment courseModels.Enrollment, completedNow bool, earned []courseModels.Achievement, now time.Time) {
	if completedNow {
		if err := utils.SendCourseCompletionEmail(ctrl.Cfg, user.Email, user.Name, course.Title); err != nil {
			log.Printf("[PROGRESS] Error sending completion email: %v", err)
		}
		ctrl.Notifier.Publish(utils.ProgressEvent{
			Event:      "course_completed",
			UserID:     user.ID,
			CourseID:   course.ID,
			OccurredAt: now,
		})
	}

	for _, achievement := range earned {
		if err := utils.SendAchievementEmail(ctrl.Cfg, user.Email, user.Name, achievement.Type, achievement.Description); err != nil {
			log.Printf("[PROGRESS] Error sending achievement email: %v", err)
		}
		ctrl.Notifier.Publish(utils.ProgressEvent{
			Event:       "achievement_earned",
			UserID:      user.ID,
			CourseID:    course.ID,
			Achievement: achievement.Type,
			OccurredAt:  now,
		})
	}
}
