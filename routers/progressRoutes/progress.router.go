package progressRoutes

import (
	"lms/config"
	progressController "lms/controllers/progress"
	"lms/middleware"
	"lms/utils"
	courseValidators "lms/validators/course"
	validators "lms/validators/progress"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupProgressRoutes sets up progress tracking routes
func SetupProgressRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, notifier *utils.EventNotifier) {
	ctrl := progressController.New(db, cfg, notifier)
	auth := middleware.JWTMiddleware(cfg)

	progressGroup := app.Group("/progress")

	progressGroup.Put("/module", auth, validators.UpdateModuleProgress(), ctrl.UpdateModuleProgress)
	progressGroup.Get("/streaks", auth, ctrl.GetStreaks)
	progressGroup.Get("/analytics", auth, ctrl.GetAnalytics)

	// Per-course progress detail
	app.Get("/course/:id/progress", auth, courseValidators.CourseIDParam(), ctrl.GetCourseProgress)
}
