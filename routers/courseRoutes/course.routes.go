package courseRoutes

import (
	"lms/config"
	courseController "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	ctrl := courseController.New(db)
	auth := middleware.JWTMiddleware(cfg)

	courseGroup := app.Group("/course")

	// Course listing and details (published courses)
	courseGroup.Get("/list", auth, validators.CourseList(), ctrl.GetAllCourses)
	courseGroup.Get("/:id", auth, validators.CourseIDParam(), ctrl.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", auth, validators.CourseIDParam(), ctrl.EnrollInCourse)
	courseGroup.Delete("/:id/enroll", auth, validators.CourseIDParam(), ctrl.UnenrollFromCourse)

	// Module content, gated by the access check
	courseGroup.Get("/:course_id/module/:module_id/content", auth, validators.ModuleContentParams(), ctrl.GetModuleContent)

	// Content completion and quiz submission
	courseGroup.Post("/:course_id/content/:content_id/complete", auth, validators.ContentParams(), validators.MarkContentComplete(), ctrl.MarkContentComplete)
	courseGroup.Post("/:course_id/content/:content_id/quiz/submit", auth, validators.ContentParams(), validators.SubmitQuiz(), ctrl.SubmitQuiz)

	// Certificates
	courseGroup.Post("/:id/certificate/request", auth, validators.CourseIDParam(), ctrl.RequestCertificate)

	// User enrollments and certificates
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", auth, validators.GetUserEnrollments(), ctrl.GetEnrollments)
	userGroup.Get("/certificates", auth, ctrl.GetUserCertificates)
}
