// Package ledger applies balance-affecting operations (credit, debit,
// transfer) to wallet records and appends an immutable transaction
// record for every successful mutation. Balance writes are guarded by
// a version counter so concurrent mutations on the same wallet never
// lose an update, and each operation commits its balance write(s) and
// audit record as a single database transaction.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ewallet/models"
)

// maxRetries bounds how often a mutation is retried after losing the
// versioned-update race before ErrConflict is surfaced.
const maxRetries = 3

// Ledger performs wallet balance mutations against an injected record
// store handle.
type Ledger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// WalletRef addresses a wallet either by its own id or by the owning
// user's id. WalletID wins when both are set.
type WalletRef struct {
	WalletID uint
	UserID   uint
}

// Receipt describes a completed credit or debit.
type Receipt struct {
	Wallet      models.Wallet
	Transaction models.Transaction
}

// TransferReceipt describes a completed transfer. The audit record is
// attached to the source wallet.
type TransferReceipt struct {
	From        models.Wallet
	To          models.Wallet
	Transaction models.Transaction
}

// Credit increases the wallet's balance by amount (minor units) and
// records a TOPUP transaction.
func (l *Ledger) Credit(ref WalletRef, amount int64, description string) (*Receipt, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if description == "" {
		description = "Topup balance"
	}

	var receipt Receipt
	err := l.withRetry(func(tx *gorm.DB) error {
		wallet, err := l.resolve(tx, ref)
		if err != nil {
			return err
		}
		if err := l.writeBalance(tx, wallet, wallet.Balance+amount); err != nil {
			return err
		}
		trx, err := l.record(tx, wallet, models.TransactionTypeTopup, amount, description)
		if err != nil {
			return err
		}
		receipt = Receipt{Wallet: *wallet, Transaction: trx}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// Debit decreases the wallet's balance by amount and records a PAYMENT
// transaction. The wallet is untouched and no record is written when
// the balance does not cover the amount.
func (l *Ledger) Debit(ref WalletRef, amount int64, description string) (*Receipt, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if description == "" {
		description = "Payment done"
	}

	var receipt Receipt
	err := l.withRetry(func(tx *gorm.DB) error {
		wallet, err := l.resolve(tx, ref)
		if err != nil {
			return err
		}
		if wallet.Balance < amount {
			return ErrInsufficientFunds
		}
		if err := l.writeBalance(tx, wallet, wallet.Balance-amount); err != nil {
			return err
		}
		trx, err := l.record(tx, wallet, models.TransactionTypePayment, amount, description)
		if err != nil {
			return err
		}
		receipt = Receipt{Wallet: *wallet, Transaction: trx}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// Transfer moves amount from one wallet to another. Both balance
// writes and the single TRANSFER record on the source wallet commit or
// roll back together.
func (l *Ledger) Transfer(fromID, toID uint, amount int64) (*TransferReceipt, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if fromID == toID {
		return nil, ErrSameWallet
	}

	var receipt TransferReceipt
	err := l.withRetry(func(tx *gorm.DB) error {
		source, err := l.resolve(tx, WalletRef{WalletID: fromID})
		if err != nil {
			return err
		}
		dest, err := l.resolve(tx, WalletRef{WalletID: toID})
		if err != nil {
			return err
		}
		if source.Balance < amount {
			return ErrInsufficientFunds
		}
		if err := l.writeBalance(tx, source, source.Balance-amount); err != nil {
			return err
		}
		if err := l.writeBalance(tx, dest, dest.Balance+amount); err != nil {
			return err
		}
		description := fmt.Sprintf("Transfer to wallet %d", dest.ID)
		trx, err := l.record(tx, source, models.TransactionTypeTransfer, amount, description)
		if err != nil {
			return err
		}
		receipt = TransferReceipt{From: *source, To: *dest, Transaction: trx}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// withRetry runs op inside a database transaction, retrying the whole
// operation with a fresh read when it lost the versioned-update race.
func (l *Ledger) withRetry(op func(tx *gorm.DB) error) error {
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err = l.db.Transaction(op)
		if !errors.Is(err, ErrConflict) {
			return err
		}
	}
	return err
}

// resolve loads the referenced wallet inside the current transaction.
func (l *Ledger) resolve(tx *gorm.DB, ref WalletRef) (*models.Wallet, error) {
	var wallet models.Wallet
	query := tx
	switch {
	case ref.WalletID != 0:
		query = query.Where("id = ?", ref.WalletID)
	case ref.UserID != 0:
		query = query.Where("user_id = ?", ref.UserID)
	default:
		return nil, ErrWalletNotFound
	}
	if err := query.First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

// writeBalance persists the new balance with a compare-and-swap on the
// wallet's version. Zero rows affected means a concurrent writer got
// there first.
func (l *Ledger) writeBalance(tx *gorm.DB, wallet *models.Wallet, newBalance int64) error {
	result := tx.Model(&models.Wallet{}).
		Where("id = ? AND version = ?", wallet.ID, wallet.Version).
		Updates(map[string]interface{}{
			"balance":    newBalance,
			"version":    wallet.Version + 1,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConflict
	}
	wallet.Balance = newBalance
	wallet.Version++
	return nil
}

// record appends the audit record for a successful mutation.
func (l *Ledger) record(tx *gorm.DB, wallet *models.Wallet, trxType models.TransactionType, amount int64, description string) (models.Transaction, error) {
	trx := models.Transaction{
		WalletID:    wallet.ID,
		UserID:      wallet.UserID,
		Type:        trxType,
		Amount:      amount,
		Status:      models.TransactionStatusSuccess,
		ReferenceID: uuid.NewString(),
		Description: description,
	}
	if err := tx.Create(&trx).Error; err != nil {
		return models.Transaction{}, err
	}
	return trx, nil
}
