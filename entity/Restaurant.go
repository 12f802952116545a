package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
	Address     string `json:"address"`

	// CatalogKey links the row to its menu/review documents in the
	// document store. Assigned once at creation, never re-derived.
	CatalogKey string `gorm:"uniqueIndex;not null" json:"catalogKey"`

	Orders []Order `json:"-"`
}
