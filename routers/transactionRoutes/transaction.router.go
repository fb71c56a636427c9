package transactionRoutes

import (
	"github.com/gofiber/fiber/v2"

	"ewallet/config"
	transactionController "ewallet/controllers/transaction"
	"ewallet/middleware"
	transactionValidator "ewallet/validators/transaction"
)

func SetupTransactionRoutes(app *fiber.App, transactions *transactionController.Controller, cfg *config.Config) {
	trxGroup := app.Group("/transactions")

	// User routes
	trxGroup.Post("/topup", middleware.Protected(cfg.JWTKey), transactionValidator.Topup(), transactions.Topup)
	trxGroup.Post("/payment", middleware.Protected(cfg.JWTKey), transactionValidator.Payment(), transactions.Payment)
	trxGroup.Post("/transfer", middleware.Protected(cfg.JWTKey), transactionValidator.Transfer(), transactions.Transfer)
	trxGroup.Get("/user/:userId", middleware.Protected(cfg.JWTKey), transactions.ListByUser)

	// Admin routes
	trxGroup.Get("/", middleware.Protected(cfg.JWTKey), middleware.RequireRole("ADMIN"), transactions.List)

	// Service-to-service lookup
	app.Get("/internal/transactions/:userId", transactions.Internal)
}
