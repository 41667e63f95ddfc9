package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "spis_backend/internals/features/users/auth/controller"
	"spis_backend/internals/middlewares"
	authMiddleware "spis_backend/internals/middlewares/auth"
)

func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/google", middlewares.LoginRateLimiter(), ctl.LoginGoogle) // POST /api/auth/google
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)       // POST /api/auth/login
	auth.Post("/register", middlewares.LoginRateLimiter(), ctl.Register) // POST /api/auth/register
	auth.Post("/refresh", ctl.Refresh)                                   // POST /api/auth/refresh
	auth.Post("/logout", ctl.Logout)                                     // POST /api/auth/logout
	auth.Get("/me", authMiddleware.AuthMiddleware(), ctl.Me)             // GET  /api/auth/me
}
