package entity

import (
	"gorm.io/gorm"
)

// OrderItem snapshots the catalog line at checkout time. MenuItemName and
// UnitPrice are copies, not references — the catalog item may change or
// disappear later.
type OrderItem struct {
	gorm.Model
	MenuItemName string  `gorm:"not null" json:"menuItemName"`
	Quantity     int     `gorm:"not null" json:"quantity"`
	UnitPrice    float64 `gorm:"not null" json:"unitPrice"`

	OrderID uint  `gorm:"not null" json:"orderId"`
	Order   Order `json:"-"`

	RestaurantID uint `gorm:"not null" json:"restaurantId"`
}
