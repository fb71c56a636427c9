package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"ewallet/config"
	transactionController "ewallet/controllers/transaction"
	"ewallet/database"
	"ewallet/ledger"
	"ewallet/models"
	"ewallet/notifier"
	transactionRoutes "ewallet/routers/transactionRoutes"
)

func main() {
	cfg := config.Load("transaction-service", "5003")

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	// The wallet and transaction services share this database.
	if err := database.Migrate(db, &models.Wallet{}, &models.Transaction{}); err != nil {
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

	transactions := transactionController.New(db, ledger.New(db), notifier.New(cfg.NotificationServiceURL))
	transactionRoutes.SetupTransactionRoutes(app, transactions, cfg)

	log.Printf("%s is running on port %s", cfg.ServiceName, cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
