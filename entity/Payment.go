package entity

import (
	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model
	Amount        float64       `gorm:"not null" json:"amount"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	PaymentMethod string        `json:"paymentMethod"`
	TransactionID string        `json:"transactionId"`

	OrderID uint  `gorm:"uniqueIndex;not null" json:"orderId"` // 1:1 กับ Order
	Order   Order `json:"-"`
}
