package transactionController

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ewallet/ledger"
	"ewallet/middleware"
	"ewallet/models"
	"ewallet/money"
	"ewallet/notifier"
	transactionValidator "ewallet/validators/transaction"
)

// Controller handles balance mutations by wallet id and transaction
// listing. Successful mutations fan a notification out to the
// notification service.
type Controller struct {
	db       *gorm.DB
	ledger   *ledger.Ledger
	notifier *notifier.Client
}

func New(db *gorm.DB, l *ledger.Ledger, n *notifier.Client) *Controller {
	return &Controller{db: db, ledger: l, notifier: n}
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

// List returns all transactions with pagination.
func (ct *Controller) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	trxType := c.Query("type") // TOPUP, PAYMENT, TRANSFER

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := ct.db.Model(&models.Transaction{})
	if trxType != "" {
		query = query.Where("type = ?", trxType)
	}

	var total int64
	query.Count(&total)

	var transactions []models.Transaction
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		log.Printf("Error fetching transactions: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transactions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transactions fetched!", fiber.Map{
		"transactions": transactions,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ListByUser returns a user's transactions.
func (ct *Controller) ListByUser(c *fiber.Ctx) error {
	userId, err := c.ParamsInt("userId")
	if err != nil || userId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	var transactions []models.Transaction
	if err := ct.db.
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		log.Printf("Error fetching transactions: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transactions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transactions fetched!", transactions)
}

// Topup credits a wallet addressed by wallet id.
func (ct *Controller) Topup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTopup").(*transactionValidator.TopupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	receipt, err := ct.ledger.Credit(ledger.WalletRef{WalletID: reqData.WalletID}, reqData.AmountCents, "")
	if err != nil {
		return middleware.JsonResponse(c, ledgerStatus(err), false, err.Error(), nil)
	}

	go ct.notifier.TransactionAlert(receipt.Wallet.UserID, "Topup successful",
		fmt.Sprintf("Your wallet was topped up with %s.", money.Format(receipt.Transaction.Amount)))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topup successful", fiber.Map{
		"transactionId": receipt.Transaction.ID,
		"referenceId":   receipt.Transaction.ReferenceID,
		"new_balance":   money.Format(receipt.Wallet.Balance),
	})
}

// Payment debits a wallet addressed by wallet id.
func (ct *Controller) Payment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPayment").(*transactionValidator.PaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	receipt, err := ct.ledger.Debit(ledger.WalletRef{WalletID: reqData.WalletID}, reqData.AmountCents, reqData.Description)
	if err != nil {
		return middleware.JsonResponse(c, ledgerStatus(err), false, err.Error(), nil)
	}

	go ct.notifier.TransactionAlert(receipt.Wallet.UserID, "Payment successful",
		fmt.Sprintf("A payment of %s was made from your wallet.", money.Format(receipt.Transaction.Amount)))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment successful", fiber.Map{
		"transactionId": receipt.Transaction.ID,
		"referenceId":   receipt.Transaction.ReferenceID,
		"new_balance":   money.Format(receipt.Wallet.Balance),
	})
}

// Transfer moves money between two wallets.
func (ct *Controller) Transfer(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTransfer").(*transactionValidator.TransferRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	receipt, err := ct.ledger.Transfer(reqData.FromWalletID, reqData.ToWalletID, reqData.AmountCents)
	if err != nil {
		return middleware.JsonResponse(c, ledgerStatus(err), false, err.Error(), nil)
	}

	go ct.notifier.TransactionAlert(receipt.From.UserID, "Transfer sent",
		fmt.Sprintf("You sent %s to wallet %d.", money.Format(receipt.Transaction.Amount), receipt.To.ID))
	go ct.notifier.TransactionAlert(receipt.To.UserID, "Transfer received",
		fmt.Sprintf("You received %s from wallet %d.", money.Format(receipt.Transaction.Amount), receipt.From.ID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transfer successful", fiber.Map{
		"transactionId":       receipt.Transaction.ID,
		"referenceId":         receipt.Transaction.ReferenceID,
		"from_wallet_balance": money.Format(receipt.From.Balance),
		"to_wallet_balance":   money.Format(receipt.To.Balance),
	})
}

// Internal returns a user's transactions for service-to-service use.
func (ct *Controller) Internal(c *fiber.Ctx) error {
	return ct.ListByUser(c)
}
