package models

import (
	"gorm.io/gorm"
)

// WalletStatus defines whether a wallet can be mutated
type WalletStatus string

const (
	WalletStatusActive    WalletStatus = "ACTIVE"
	WalletStatusSuspended WalletStatus = "SUSPENDED"
)

// Wallet is the per-user balance record. Balance is stored in minor
// units (cents) so the non-negativity check is exact.
type Wallet struct {
	gorm.Model
	UserID  uint         `gorm:"not null;uniqueIndex" json:"userId"`
	Balance int64        `gorm:"not null;default:0" json:"balance"`
	Status  WalletStatus `gorm:"type:varchar(20);default:'ACTIVE'" json:"status"`

	// Version guards the read-modify-write cycle on Balance. Every
	// balance write must match the version it read and bump it.
	Version uint `gorm:"not null;default:0" json:"-"`
}

func (Wallet) TableName() string {
	return "wallets"
}
