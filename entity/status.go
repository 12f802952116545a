package entity

import "strings"

// Stored as their lower-case string value in the status columns.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus accepts the enum name case-insensitively.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(strings.ToLower(strings.TrimSpace(s))) {
	case OrderPending:
		return OrderPending, true
	case OrderConfirmed:
		return OrderConfirmed, true
	case OrderPreparing:
		return OrderPreparing, true
	case OrderReady:
		return OrderReady, true
	case OrderDelivered:
		return OrderDelivered, true
	case OrderCancelled:
		return OrderCancelled, true
	}
	return "", false
}

func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderPending, OrderConfirmed, OrderPreparing,
		OrderReady, OrderDelivered, OrderCancelled,
	}
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)
