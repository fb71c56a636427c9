package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"ewallet/config"
	authController "ewallet/controllers/auth"
	userController "ewallet/controllers/user"
	"ewallet/database"
	"ewallet/models"
	userRoutes "ewallet/routers/userRoutes"
)

func main() {
	cfg := config.Load("user-service", "5001")

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.Migrate(db, &models.User{}); err != nil {
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

	auth := authController.New(db, cfg)
	users := userController.New(db, cfg)
	userRoutes.SetupUserRoutes(app, auth, users, cfg)

	log.Printf("%s is running on port %s", cfg.ServiceName, cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
