package authRoutes

import (
	"lms/config"
	authController "lms/controllers/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupAuthRoutes sets up signup and login routes
func SetupAuthRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	ctrl := authController.New(db, cfg)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", ctrl.Signup)
	authGroup.Post("/login", ctrl.Login)
}
