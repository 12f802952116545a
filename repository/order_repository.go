package repository

import (
	"time"

	"gorm.io/gorm"

	"quickbite/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID           uint               `json:"id"`
	RestaurantID uint               `json:"restaurantId"`
	Status       entity.OrderStatus `json:"status"`
	TotalPrice   float64            `json:"totalPrice"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, restaurant_id, status, total_price, created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// ListAll คืนออเดอร์ทุกคน (admin) — filter ตาม status ได้
func (r *OrderRepository) ListAll(status *entity.OrderStatus, limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	q := r.DB.Model(&entity.Order{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var out []entity.Order
	err := q.Order("created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}

// UpdateStatusGuard is a compare-and-swap: the row is only touched when its
// status still equals from. A stale writer affects 0 rows.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// ---------------- Payments ----------------

func (r *OrderRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *OrderRepository) GetPayment(orderID uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.Where("order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *OrderRepository) UpdatePaymentStatus(tx *gorm.DB, orderID uint, status entity.PaymentStatus) error {
	return tx.Model(&entity.Payment{}).
		Where("order_id = ?", orderID).
		Update("status", status).Error
}

// ---------------- Stats (admin dashboard) ----------------

func (r *OrderRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Count(&count).Error
	return count, err
}

func (r *OrderRepository) CountByStatus(status entity.OrderStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *OrderRepository) SumRevenue() (float64, error) {
	var row struct{ Total *float64 }
	err := r.DB.Model(&entity.Order{}).
		Select("SUM(total_price) AS total").
		Scan(&row).Error
	if err != nil || row.Total == nil {
		return 0, err
	}
	return *row.Total, nil
}
