package models

import (
	"gorm.io/gorm"
)

// UserRole separates normal users from admins
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// UserStatus marks whether an account may act
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

type User struct {
	gorm.Model
	Name     string     `gorm:"not null" json:"name"`
	Email    string     `gorm:"unique;not null;index" json:"email"`
	Password string     `gorm:"not null" json:"-"`
	Role     UserRole   `gorm:"type:varchar(20);default:'USER'" json:"role"`
	Status   UserStatus `gorm:"type:varchar(20);default:'ACTIVE'" json:"status"`
}

func (User) TableName() string {
	return "users"
}
