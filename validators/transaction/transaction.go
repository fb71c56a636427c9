package transactionValidator

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"ewallet/middleware"
	"ewallet/money"
)

// TopupRequest is the validated topup payload, addressed by wallet id.
type TopupRequest struct {
	WalletID    uint            `json:"wallet_id"`
	Amount      decimal.Decimal `json:"amount"`
	AmountCents int64           `json:"-"`
}

// Topup validates a topup request
func Topup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TopupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.WalletID == 0 {
			errors["wallet_id"] = "Wallet ID is required!"
		}
		cents, err := money.FromDecimal(reqData.Amount)
		if err != nil {
			errors["amount"] = err.Error()
		} else {
			reqData.AmountCents = cents
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTopup", reqData)
		return c.Next()
	}
}

// PaymentRequest is the validated payment payload.
type PaymentRequest struct {
	WalletID    uint            `json:"wallet_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	AmountCents int64           `json:"-"`
}

// Payment validates a payment request
func Payment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PaymentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.WalletID == 0 {
			errors["wallet_id"] = "Wallet ID is required!"
		}
		cents, err := money.FromDecimal(reqData.Amount)
		if err != nil {
			errors["amount"] = err.Error()
		} else {
			reqData.AmountCents = cents
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}

// TransferRequest is the validated transfer payload.
type TransferRequest struct {
	FromWalletID uint            `json:"from_wallet_id"`
	ToWalletID   uint            `json:"to_wallet_id"`
	Amount       decimal.Decimal `json:"amount"`
	AmountCents  int64           `json:"-"`
}

// Transfer validates a transfer request
func Transfer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TransferRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.FromWalletID == 0 {
			errors["from_wallet_id"] = "Source wallet ID is required!"
		}
		if reqData.ToWalletID == 0 {
			errors["to_wallet_id"] = "Destination wallet ID is required!"
		}
		if reqData.FromWalletID != 0 && reqData.FromWalletID == reqData.ToWalletID {
			errors["to_wallet_id"] = "Cannot transfer to the same wallet!"
		}
		cents, err := money.FromDecimal(reqData.Amount)
		if err != nil {
			errors["amount"] = err.Error()
		} else {
			reqData.AmountCents = cents
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTransfer", reqData)
		return c.Next()
	}
}
