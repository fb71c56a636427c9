package models

import (
	"gorm.io/gorm"
)

// NotificationType classifies a notification for the client UI
type NotificationType string

const (
	NotificationTypeInfo        NotificationType = "INFO"
	NotificationTypeTransaction NotificationType = "TRANSACTION"
	NotificationTypeWarning     NotificationType = "WARNING"
)

type Notification struct {
	gorm.Model
	UserID  uint             `gorm:"not null;index" json:"userId"`
	Title   string           `gorm:"type:varchar(150);not null" json:"title"`
	Message string           `gorm:"type:varchar(500);not null" json:"message"`
	Type    NotificationType `gorm:"type:varchar(50);default:'INFO'" json:"type"`
	IsRead  bool             `gorm:"default:false" json:"isRead"`
}

func (Notification) TableName() string {
	return "notifications"
}
