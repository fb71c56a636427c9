package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"ewallet/config"
	notificationController "ewallet/controllers/notification"
	"ewallet/database"
	"ewallet/models"
	notificationRoutes "ewallet/routers/notificationRoutes"
)

func main() {
	cfg := config.Load("notification-service", "5004")

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.Migrate(db, &models.Notification{}); err != nil {
		log.Fatalf("%v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": cfg.ServiceName, "status": "running"})
	})

	notifications := notificationController.New(db)
	notificationRoutes.SetupNotificationRoutes(app, notifications, cfg)

	log.Printf("%s is running on port %s", cfg.ServiceName, cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
