package walletController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ewallet/ledger"
	"ewallet/middleware"
	"ewallet/models"
	"ewallet/money"
	walletValidator "ewallet/validators/wallet"
)

// Controller handles wallet CRUD and balance mutations by user id.
type Controller struct {
	db     *gorm.DB
	ledger *ledger.Ledger
}

func New(db *gorm.DB, l *ledger.Ledger) *Controller {
	return &Controller{db: db, ledger: l}
}

// ledgerStatus maps ledger errors to HTTP status codes.
func ledgerStatus(err error) int {
	switch {
	case errors.Is(err, ledger.ErrWalletNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrSameWallet):
		return fiber.StatusBadRequest
	case errors.Is(err, ledger.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// List returns all wallets.
func (ct *Controller) List(c *fiber.Ctx) error {
	var wallets []models.Wallet
	if err := ct.db.Order("created_at desc").Find(&wallets).Error; err != nil {
		log.Printf("Error fetching wallets: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch wallets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallets fetched!", wallets)
}

// Open creates a wallet for a user, optionally seeded with a balance.
// At most one wallet may exist per user.
func (ct *Controller) Open(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedOpen").(*walletValidator.OpenRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ct.db.Where("user_id = ?", reqData.UserID).First(&models.Wallet{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already has a wallet!", nil)
	}

	wallet := models.Wallet{
		UserID:  reqData.UserID,
		Balance: reqData.BalanceCents,
		Status:  models.WalletStatusActive,
	}

	if err := ct.db.Create(&wallet).Error; err != nil {
		log.Printf("Error creating wallet: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create wallet!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Wallet created!", wallet)
}

// GetByUser returns the wallet owned by the given user.
func (ct *Controller) GetByUser(c *fiber.Ctx) error {
	userId, err := c.ParamsInt("userId")
	if err != nil || userId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	var wallet models.Wallet
	if err := ct.db.Where("user_id = ?", userId).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Wallet not found!", nil)
		}
		log.Printf("Error fetching wallet: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch wallet!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet fetched!", wallet)
}

// Topup credits a wallet addressed by user id.
func (ct *Controller) Topup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTopup").(*walletValidator.TopupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	receipt, err := ct.ledger.Credit(ledger.WalletRef{UserID: reqData.UserID}, reqData.AmountCents, "")
	if err != nil {
		return middleware.JsonResponse(c, ledgerStatus(err), false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Top-up successful", fiber.Map{
		"userId":        receipt.Wallet.UserID,
		"transactionId": receipt.Transaction.ID,
		"new_balance":   money.Format(receipt.Wallet.Balance),
	})
}

// Deduct debits a wallet addressed by user id.
func (ct *Controller) Deduct(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDeduct").(*walletValidator.DeductRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	receipt, err := ct.ledger.Debit(ledger.WalletRef{UserID: reqData.UserID}, reqData.AmountCents, reqData.Description)
	if err != nil {
		return middleware.JsonResponse(c, ledgerStatus(err), false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Balance deduction successful", fiber.Map{
		"userId":        receipt.Wallet.UserID,
		"transactionId": receipt.Transaction.ID,
		"new_balance":   money.Format(receipt.Wallet.Balance),
	})
}

// Internal returns the wallet for service-to-service lookups.
func (ct *Controller) Internal(c *fiber.Ctx) error {
	userId, err := c.ParamsInt("userId")
	if err != nil || userId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	var wallet models.Wallet
	if err := ct.db.Where("user_id = ?", userId).First(&wallet).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Wallet not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet fetched!", wallet)
}
