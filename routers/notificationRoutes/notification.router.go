package notificationRoutes

import (
	"github.com/gofiber/fiber/v2"

	"ewallet/config"
	notificationController "ewallet/controllers/notification"
	"ewallet/middleware"
	notificationValidator "ewallet/validators/notification"
)

func SetupNotificationRoutes(app *fiber.App, notifications *notificationController.Controller, cfg *config.Config) {
	notifGroup := app.Group("/notifications")

	notifGroup.Get("/", middleware.Protected(cfg.JWTKey), notifications.List)
	notifGroup.Post("/", middleware.Protected(cfg.JWTKey), notificationValidator.Create(), notifications.Create)
	notifGroup.Patch("/:id/read", middleware.Protected(cfg.JWTKey), notifications.MarkRead)

	// Service-to-service create, used by the transaction service
	app.Post("/internal/notifications", notificationValidator.Create(), notifications.InternalCreate)
}
