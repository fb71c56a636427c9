package walletValidator

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"ewallet/middleware"
	"ewallet/money"
)

// OpenRequest is the validated wallet-opening payload. Balance seeds
// the wallet and may be zero or absent.
type OpenRequest struct {
	UserID       uint            `json:"user_id"`
	Balance      decimal.Decimal `json:"balance"`
	BalanceCents int64           `json:"-"`
}

// Open validates a wallet-opening request
func Open() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(OpenRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["user_id"] = "User ID is required!"
		}
		if reqData.Balance.IsNegative() {
			errors["balance"] = "Balance cannot be negative!"
		} else if !reqData.Balance.IsZero() {
			cents, err := money.FromDecimal(reqData.Balance)
			if err != nil {
				errors["balance"] = err.Error()
			} else {
				reqData.BalanceCents = cents
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOpen", reqData)
		return c.Next()
	}
}

// TopupRequest is the validated topup payload, addressed by user id.
type TopupRequest struct {
	UserID      uint            `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	AmountCents int64           `json:"-"`
}

// Topup validates a wallet topup request
func Topup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TopupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["user_id"] = "User ID is required!"
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

// DeductRequest is the validated deduction payload, addressed by user id.
type DeductRequest struct {
	UserID      uint            `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	AmountCents int64           `json:"-"`
}

// Deduct validates a wallet deduction request
func Deduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DeductRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["user_id"] = "User ID is required!"
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

		c.Locals("validatedDeduct", reqData)
		return c.Next()
	}
}
