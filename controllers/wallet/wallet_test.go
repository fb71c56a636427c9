package walletController_test

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
	walletController "ewallet/controllers/wallet"
	"ewallet/ledger"
	"ewallet/middleware"
	"ewallet/models"
	walletRoutes "ewallet/routers/walletRoutes"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "wallet.db") + "?_busy_timeout=5000&_txlock=immediate"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Wallet{}, &models.Transaction{}))

	cfg := &config.Config{ServiceName: "wallet-service", JWTKey: "test-secret"}
	app := fiber.New()
	ctrl := walletController.New(db, ledger.New(db))
	walletRoutes.SetupWalletRoutes(app, ctrl, cfg)
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

func TestOpenWallet(t *testing.T) {
	app, db, cfg := newTestApp(t)

	code, env := doJSON(t, app, "POST", "/wallets/", token(t, cfg, 1, "USER"), fiber.Map{
		"user_id": 1,
		"balance": 25.00,
	})
	assert.Equal(t, fiber.StatusCreated, code)
	assert.True(t, env.Status)

	var wallet models.Wallet
	require.NoError(t, db.Where("user_id = ?", 1).First(&wallet).Error)
	assert.Equal(t, int64(2500), wallet.Balance)
	assert.Equal(t, models.WalletStatusActive, wallet.Status)
}

func TestOpenWalletDefaultsToZero(t *testing.T) {
	app, db, cfg := newTestApp(t)

	code, _ := doJSON(t, app, "POST", "/wallets/", token(t, cfg, 2, "USER"), fiber.Map{
		"user_id": 2,
	})
	assert.Equal(t, fiber.StatusCreated, code)

	var wallet models.Wallet
	require.NoError(t, db.Where("user_id = ?", 2).First(&wallet).Error)
	assert.Equal(t, int64(0), wallet.Balance)
}

func TestOpenWalletOnePerUser(t *testing.T) {
	app, _, cfg := newTestApp(t)

	code, _ := doJSON(t, app, "POST", "/wallets/", token(t, cfg, 1, "USER"), fiber.Map{"user_id": 1})
	assert.Equal(t, fiber.StatusCreated, code)

	code, env := doJSON(t, app, "POST", "/wallets/", token(t, cfg, 1, "USER"), fiber.Map{"user_id": 1})
	assert.Equal(t, fiber.StatusConflict, code)
	assert.False(t, env.Status)
}

func TestGetWalletByUser(t *testing.T) {
	app, db, cfg := newTestApp(t)
	require.NoError(t, db.Create(&models.Wallet{UserID: 3, Balance: 500}).Error)

	code, env := doJSON(t, app, "GET", "/wallets/3", token(t, cfg, 3, "USER"), nil)
	assert.Equal(t, fiber.StatusOK, code)

	var wallet models.Wallet
	require.NoError(t, json.Unmarshal(env.Data, &wallet))
	assert.EqualValues(t, 3, wallet.UserID)
	assert.Equal(t, int64(500), wallet.Balance)

	code, _ = doJSON(t, app, "GET", "/wallets/99", token(t, cfg, 3, "USER"), nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestTopupByUserID(t *testing.T) {
	app, db, cfg := newTestApp(t)
	require.NoError(t, db.Create(&models.Wallet{UserID: 4, Balance: 10000}).Error)

	code, env := doJSON(t, app, "POST", "/wallets/topup", token(t, cfg, 4, "USER"), fiber.Map{
		"user_id": 4,
		"amount":  50.00,
	})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, string(env.Data), `"new_balance":"150.00"`)

	// topup through the wallet service still leaves an audit record
	var trx models.Transaction
	require.NoError(t, db.Where("user_id = ?", 4).First(&trx).Error)
	assert.Equal(t, models.TransactionTypeTopup, trx.Type)
}

func TestDeductByUserID(t *testing.T) {
	app, db, cfg := newTestApp(t)
	require.NoError(t, db.Create(&models.Wallet{UserID: 5, Balance: 10000}).Error)

	code, env := doJSON(t, app, "POST", "/wallets/deduct", token(t, cfg, 5, "USER"), fiber.Map{
		"user_id": 5,
		"amount":  40.00,
	})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, string(env.Data), `"new_balance":"60.00"`)
}

func TestDeductInsufficient(t *testing.T) {
	app, db, cfg := newTestApp(t)
	require.NoError(t, db.Create(&models.Wallet{UserID: 6, Balance: 1000}).Error)

	code, env := doJSON(t, app, "POST", "/wallets/deduct", token(t, cfg, 6, "USER"), fiber.Map{
		"user_id": 6,
		"amount":  15.00,
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.False(t, env.Status)

	var wallet models.Wallet
	require.NoError(t, db.Where("user_id = ?", 6).First(&wallet).Error)
	assert.Equal(t, int64(1000), wallet.Balance)
}

func TestTopupUnknownUser(t *testing.T) {
	app, _, cfg := newTestApp(t)

	code, _ := doJSON(t, app, "POST", "/wallets/topup", token(t, cfg, 9, "USER"), fiber.Map{
		"user_id": 9,
		"amount":  10.00,
	})
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestListRequiresAdmin(t *testing.T) {
	app, _, cfg := newTestApp(t)

	code, _ := doJSON(t, app, "GET", "/wallets/", token(t, cfg, 1, "USER"), nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	code, _ = doJSON(t, app, "GET", "/wallets/", token(t, cfg, 1, "ADMIN"), nil)
	assert.Equal(t, fiber.StatusOK, code)
}

func TestInternalLookupSkipsAuth(t *testing.T) {
	app, db, _ := newTestApp(t)
	require.NoError(t, db.Create(&models.Wallet{UserID: 7, Balance: 100}).Error)

	code, _ := doJSON(t, app, "GET", "/internal/wallets/7", "", nil)
	assert.Equal(t, fiber.StatusOK, code)
}
