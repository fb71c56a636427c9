package ledger

import "errors"

var (
	// ErrWalletNotFound is returned when a wallet reference does not
	// resolve to an existing wallet.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrInsufficientFunds is returned when a debit or transfer would
	// push a balance below zero. The wallet is left unmodified.
	ErrInsufficientFunds = errors.New("insufficient balance")

	// ErrInvalidAmount is returned for zero or negative amounts.
	ErrInvalidAmount = errors.New("amount must be greater than 0")

	// ErrSameWallet rejects transfers where source and destination are
	// the same wallet.
	ErrSameWallet = errors.New("cannot transfer to the same wallet")

	// ErrConflict is returned after a mutation lost the versioned
	// update race too many times in a row.
	ErrConflict = errors.New("wallet was modified concurrently, try again")
)
