package notificationValidator

import (
	"github.com/gofiber/fiber/v2"

	"ewallet/middleware"
	"ewallet/models"
)

// CreateRequest is the validated notification-creation payload.
type CreateRequest struct {
	UserID  uint   `json:"userId"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Create validates a notification creation request
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["userId"] = "User ID is required!"
		}
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Message == "" {
			errors["message"] = "Message is required!"
		}

		if reqData.Type == "" {
			reqData.Type = string(models.NotificationTypeInfo)
		}
		switch models.NotificationType(reqData.Type) {
		case models.NotificationTypeInfo, models.NotificationTypeTransaction, models.NotificationTypeWarning:
		default:
			errors["type"] = "Type must be INFO, TRANSACTION or WARNING!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNotification", reqData)
		return c.Next()
	}
}
