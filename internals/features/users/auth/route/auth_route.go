package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "simitra_backend/internals/features/users/auth/service"
	"simitra_backend/internals/middlewares"
	authMiddleware "simitra_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	auth := app.Group("/api/auth")

	auth.Post("/register", middlewares.RegisterRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Register(db, c)
	})
	auth.Post("/login", middlewares.LoginRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Login(db, c)
	})

	auth.Post("/logout", authMiddleware.AuthMiddleware(db), func(c *fiber.Ctx) error {
		return authService.Logout(db, c)
	})
	auth.Get("/me", authMiddleware.AuthMiddleware(db), func(c *fiber.Ctx) error {
		return authService.Me(db, c)
	})
}
