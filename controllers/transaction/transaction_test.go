package transactionController_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ewallet/config"
	transactionController "ewallet/controllers/transaction"
	"ewallet/ledger"
	"ewallet/middleware"
	"ewallet/models"
	"ewallet/notifier"
	transactionRoutes "ewallet/routers/transactionRoutes"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "trx.db") + "?_busy_timeout=5000&_txlock=immediate"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Wallet{}, &models.Transaction{}))

	cfg := &config.Config{ServiceName: "transaction-service", JWTKey: "test-secret"}
	app := fiber.New()
	ctrl := transactionController.New(db, ledger.New(db), notifier.New(""))
	transactionRoutes.SetupTransactionRoutes(app, ctrl, cfg)
	return app, db, cfg
}

func token(t *testing.T, cfg *config.Config, userID uint, role string) string {
	t.Helper()

	tok, err := middleware.GenerateJWT(cfg.JWTKey, userID, "Test", "test@example.com", role)
	require.NoError(t, err)
	return tok
}

func doJSON(t *testing.T, app *fiber.App, method, path, bearer string, body interface{}) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func seedWallet(t *testing.T, db *gorm.DB, userID uint, balance int64) models.Wallet {
	t.Helper()

	wallet := models.Wallet{UserID: userID, Balance: balance, Status: models.WalletStatusActive}
	require.NoError(t, db.Create(&wallet).Error)
	return wallet
}

func TestTopupEndpoint(t *testing.T) {
	app, db, cfg := newTestApp(t)
	wallet := seedWallet(t, db, 1, 10000)

	code, env := doJSON(t, app, "POST", "/transactions/topup", token(t, cfg, 1, "USER"), fiber.Map{
		"wallet_id": wallet.ID,
		"amount":    50.00,
	})
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, env.Status)
	assert.Contains(t, string(env.Data), `"new_balance":"150.00"`)

	var trx models.Transaction
	require.NoError(t, db.Where("wallet_id = ?", wallet.ID).First(&trx).Error)
	assert.Equal(t, models.TransactionTypeTopup, trx.Type)
	assert.Equal(t, int64(5000), trx.Amount)
}

func TestTopupWalletNotFound(t *testing.T) {
	app, _, cfg := newTestApp(t)

	code, env := doJSON(t, app, "POST", "/transactions/topup", token(t, cfg, 1, "USER"), fiber.Map{
		"wallet_id": 999,
		"amount":    10.00,
	})
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.False(t, env.Status)
}

func TestTopupRejectsBadAmounts(t *testing.T) {
	app, db, cfg := newTestApp(t)
	wallet := seedWallet(t, db, 1, 0)

	for _, amount := range []interface{}{0, -5, 1.001} {
		code, env := doJSON(t, app, "POST", "/transactions/topup", token(t, cfg, 1, "USER"), fiber.Map{
			"wallet_id": wallet.ID,
			"amount":    amount,
		})
		assert.Equal(t, fiber.StatusBadRequest, code)
		assert.False(t, env.Status)
	}

	assert.Equal(t, int64(0), seededBalance(t, db, wallet.ID))
}

func seededBalance(t *testing.T, db *gorm.DB, walletID uint) int64 {
	t.Helper()

	var wallet models.Wallet
	require.NoError(t, db.First(&wallet, walletID).Error)
	return wallet.Balance
}

func TestPaymentEndpoint(t *testing.T) {
	app, db, cfg := newTestApp(t)
	wallet := seedWallet(t, db, 1, 10000)

	code, env := doJSON(t, app, "POST", "/transactions/payment", token(t, cfg, 1, "USER"), fiber.Map{
		"wallet_id":   wallet.ID,
		"amount":      30.00,
		"description": "Groceries",
	})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, string(env.Data), `"new_balance":"70.00"`)

	var trx models.Transaction
	require.NoError(t, db.Where("wallet_id = ?", wallet.ID).First(&trx).Error)
	assert.Equal(t, models.TransactionTypePayment, trx.Type)
	assert.Equal(t, "Groceries", trx.Description)
}

func TestPaymentInsufficientFunds(t *testing.T) {
	app, db, cfg := newTestApp(t)
	wallet := seedWallet(t, db, 1, 1000)

	code, env := doJSON(t, app, "POST", "/transactions/payment", token(t, cfg, 1, "USER"), fiber.Map{
		"wallet_id": wallet.ID,
		"amount":    15.00,
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.False(t, env.Status)
	assert.Equal(t, int64(1000), seededBalance(t, db, wallet.ID))

	var n int64
	db.Model(&models.Transaction{}).Count(&n)
	assert.EqualValues(t, 0, n)
}

func TestTransferEndpoint(t *testing.T) {
	app, db, cfg := newTestApp(t)
	source := seedWallet(t, db, 1, 10000)
	dest := seedWallet(t, db, 2, 2000)

	code, env := doJSON(t, app, "POST", "/transactions/transfer", token(t, cfg, 1, "USER"), fiber.Map{
		"from_wallet_id": source.ID,
		"to_wallet_id":   dest.ID,
		"amount":         30.00,
	})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, string(env.Data), `"from_wallet_balance":"70.00"`)
	assert.Contains(t, string(env.Data), `"to_wallet_balance":"50.00"`)

	var n int64
	db.Model(&models.Transaction{}).Where("wallet_id = ?", source.ID).Count(&n)
	assert.EqualValues(t, 1, n)
}

func TestTransferSelfRejected(t *testing.T) {
	app, db, cfg := newTestApp(t)
	wallet := seedWallet(t, db, 1, 10000)

	code, env := doJSON(t, app, "POST", "/transactions/transfer", token(t, cfg, 1, "USER"), fiber.Map{
		"from_wallet_id": wallet.ID,
		"to_wallet_id":   wallet.ID,
		"amount":         10.00,
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.False(t, env.Status)
	assert.Equal(t, int64(10000), seededBalance(t, db, wallet.ID))
}

func TestEndpointsRequireToken(t *testing.T) {
	app, _, _ := newTestApp(t)

	code, _ := doJSON(t, app, "POST", "/transactions/topup", "", fiber.Map{
		"wallet_id": 1,
		"amount":    10.00,
	})
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestListRequiresAdmin(t *testing.T) {
	app, db, cfg := newTestApp(t)
	seedWallet(t, db, 1, 1000)

	code, _ := doJSON(t, app, "GET", "/transactions/", token(t, cfg, 1, "USER"), nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	code, env := doJSON(t, app, "GET", "/transactions/", token(t, cfg, 2, "ADMIN"), nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, env.Status)
}

func TestListByUser(t *testing.T) {
	app, db, cfg := newTestApp(t)
	wallet := seedWallet(t, db, 5, 10000)

	l := ledger.New(db)
	_, err := l.Credit(ledger.WalletRef{WalletID: wallet.ID}, 1000, "")
	require.NoError(t, err)
	_, err = l.Debit(ledger.WalletRef{WalletID: wallet.ID}, 500, "")
	require.NoError(t, err)

	code, env := doJSON(t, app, "GET", "/transactions/user/5", token(t, cfg, 5, "USER"), nil)
	assert.Equal(t, fiber.StatusOK, code)

	var transactions []models.Transaction
	require.NoError(t, json.Unmarshal(env.Data, &transactions))
	assert.Len(t, transactions, 2)
}
