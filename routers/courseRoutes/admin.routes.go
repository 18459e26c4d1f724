package courseRoutes

import (
	"lms/config"
	courseController "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupAdminCourseRoutes sets up instructor/admin course management routes
func SetupAdminCourseRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	ctrl := courseController.New(db)
	auth := middleware.JWTMiddleware(cfg)
	instructorOrAdmin := middleware.RequireRole(db, "INSTRUCTOR", "ADMIN")
	adminOnly := middleware.RequireRole(db, "ADMIN")

	adminGroup := app.Group("/admin/course")

	adminGroup.Post("/", auth, instructorOrAdmin, validators.CreateCourse(), ctrl.CreateCourse)
	adminGroup.Put("/:id", auth, instructorOrAdmin, validators.CourseIDParam(), ctrl.UpdateCourse)
	adminGroup.Delete("/:id", auth, adminOnly, validators.CourseIDParam(), ctrl.DeleteCourse)

	adminGroup.Post("/:id/module", auth, instructorOrAdmin, validators.CourseIDParam(), validators.CreateModule(), ctrl.CreateModule)
	adminGroup.Post("/:id/content", auth, instructorOrAdmin, validators.CourseIDParam(), validators.CreateContent(), ctrl.CreateContent)
}
