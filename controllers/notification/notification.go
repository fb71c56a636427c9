package notificationController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ewallet/middleware"
	"ewallet/models"
	notificationValidator "ewallet/validators/notification"
)

// Controller handles notification storage and delivery state.
type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

// List returns the authenticated user's notifications, newest first.
func (ct *Controller) List(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var notifications []models.Notification
	if err := ct.db.
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		log.Printf("Error fetching notifications: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched!", notifications)
}

// Create stores a new notification.
func (ct *Controller) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNotification").(*notificationValidator.CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	notification := models.Notification{
		UserID:  reqData.UserID,
		Title:   reqData.Title,
		Message: reqData.Message,
		Type:    models.NotificationType(reqData.Type),
	}

	if err := ct.db.Create(&notification).Error; err != nil {
		log.Printf("Error creating notification: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create notification!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Notification sent!", notification)
}

// MarkRead flags one of the user's notifications as read.
func (ct *Controller) MarkRead(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notification ID!", nil)
	}

	var notification models.Notification
	if err := ct.db.Where("id = ? AND user_id = ?", id, userId).First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
		}
		log.Printf("Error fetching notification: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notification!", nil)
	}

	if err := ct.db.Model(&notification).Update("is_read", true).Error; err != nil {
		log.Printf("Error updating notification: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notification!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read!", notification)
}

// InternalCreate stores a notification on behalf of another service.
func (ct *Controller) InternalCreate(c *fiber.Ctx) error {
	return ct.Create(c)
}
