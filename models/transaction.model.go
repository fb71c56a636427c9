package models

import (
	"gorm.io/gorm"
)

// TransactionType defines the type of wallet transaction
type TransactionType string

const (
	TransactionTypeTopup    TransactionType = "TOPUP"
	TransactionTypePayment  TransactionType = "PAYMENT"
	TransactionTypeTransfer TransactionType = "TRANSFER"
	// Reserved; no operation produces it yet.
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
)

// TransactionStatus defines the status of a transaction
type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "PENDING"
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusFailed  TransactionStatus = "FAILED"
)

// Transaction is the immutable audit record of one balance mutation.
// For transfers it is attached to the source wallet only. Amount is in
// minor units and always positive.
type Transaction struct {
	gorm.Model
	WalletID    uint              `gorm:"not null;index" json:"walletId"`
	UserID      uint              `gorm:"not null;index" json:"userId"`
	Type        TransactionType   `gorm:"type:varchar(50);not null" json:"type"`
	Amount      int64             `gorm:"not null" json:"amount"`
	Status      TransactionStatus `gorm:"type:varchar(50);default:'PENDING'" json:"status"`
	ReferenceID string            `gorm:"type:varchar(100);unique" json:"referenceId"`
	Description string            `gorm:"type:varchar(255)" json:"description"`
}

func (Transaction) TableName() string {
	return "transactions"
}
