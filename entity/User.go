package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	IsAdmin      bool   `gorm:"not null;default:false" json:"isAdmin"`
	IsActive     bool   `gorm:"not null;default:true" json:"isActive"`

	// Relations — preload เฉพาะตอนจำเป็น
	Orders []Order `json:"-"`
}
