package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Status OrderStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`

	// Snapshot of the cart subtotal at creation. Not recomputed from items.
	TotalPrice float64 `gorm:"not null" json:"totalPrice"`

	DeliveryAddress     string `gorm:"not null" json:"deliveryAddress"`
	SpecialInstructions string `json:"specialInstructions"`
	Notes               string `json:"notes"`

	UserID uint `gorm:"not null" json:"userId"`
	User   User `json:"-"` // preload เฉพาะตอนต้องการ user detail

	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// preload แค่ตอน detail
	Items   []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Payment *Payment    `json:"-"`
}
