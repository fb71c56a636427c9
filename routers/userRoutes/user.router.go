package userRoutes

import (
	"github.com/gofiber/fiber/v2"

	"ewallet/config"
	authController "ewallet/controllers/auth"
	userController "ewallet/controllers/user"
	"ewallet/middleware"
	authValidator "ewallet/validators/auth"
	userValidator "ewallet/validators/user"
)

func SetupUserRoutes(app *fiber.App, auth *authController.Controller, users *userController.Controller, cfg *config.Config) {
	userGroup := app.Group("/users")

	// Public routes
	userGroup.Post("/", authValidator.Register(), auth.Register)
	userGroup.Post("/login", authValidator.Login(), auth.Login)

	// Authenticated user routes
	userGroup.Get("/me", middleware.Protected(cfg.JWTKey), users.Me)

	// Admin routes
	adminGroup := userGroup.Group("/admin", middleware.Protected(cfg.JWTKey), middleware.RequireRole("ADMIN"))
	adminGroup.Get("/all", users.AdminList)
	adminGroup.Get("/:id", users.AdminGet)
	adminGroup.Delete("/:id", users.AdminDelete)
	userGroup.Post("/admin-create", middleware.Protected(cfg.JWTKey), middleware.RequireRole("ADMIN"), userValidator.AdminCreate(), users.AdminCreate)

	// Service-to-service lookup
	app.Get("/internal/users/:id", users.Internal)
}
