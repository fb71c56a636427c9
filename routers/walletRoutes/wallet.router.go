package walletRoutes

import (
	"github.com/gofiber/fiber/v2"

	"ewallet/config"
	walletController "ewallet/controllers/wallet"
	"ewallet/middleware"
	walletValidator "ewallet/validators/wallet"
)

func SetupWalletRoutes(app *fiber.App, wallets *walletController.Controller, cfg *config.Config) {
	walletGroup := app.Group("/wallets")

	// User routes
	walletGroup.Post("/", middleware.Protected(cfg.JWTKey), walletValidator.Open(), wallets.Open)
	walletGroup.Get("/:userId", middleware.Protected(cfg.JWTKey), wallets.GetByUser)
	walletGroup.Post("/topup", middleware.Protected(cfg.JWTKey), walletValidator.Topup(), wallets.Topup)
	walletGroup.Post("/deduct", middleware.Protected(cfg.JWTKey), walletValidator.Deduct(), wallets.Deduct)

	// Admin routes
	walletGroup.Get("/", middleware.Protected(cfg.JWTKey), middleware.RequireRole("ADMIN"), wallets.List)

	// Service-to-service lookup
	app.Get("/internal/wallets/:userId", wallets.Internal)
}
