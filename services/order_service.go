package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quickbite/entity"
	"quickbite/repository"
)

// Actor is the authenticated principal a workflow operation runs as. The
// capability check happens here, not in HTTP middleware, so the engine
// returns typed errors instead of redirects.
type Actor struct {
	UserID  uint
	IsAdmin bool
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	RestRepo *repository.RestaurantRepository
	UserRepo *repository.UserRepository
	Cart     *CartStore
	Notify   *Notifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	restRepo *repository.RestaurantRepository,
	userRepo *repository.UserRepository,
	cart *CartStore,
	notify *Notifier,
) *OrderService {
	return &OrderService{
		DB:       db,
		Repo:     repo,
		RestRepo: restRepo,
		UserRepo: userRepo,
		Cart:     cart,
		Notify:   notify,
	}
}

// ----- Checkout -----

type CreateOrderIn struct {
	DeliveryAddress     string `json:"delivery_address" form:"delivery_address"`
	SpecialInstructions string `json:"special_instructions" form:"special_instructions"`
	Notes               string `json:"notes" form:"notes"`
}

// CheckoutReview is what GET /orders/create shows: the single-restaurant
// cart about to become an order.
type CheckoutReview struct {
	Restaurant *entity.Restaurant `json:"restaurant"`
	Items      []CartLine         `json:"items"`
	Total      float64            `json:"total"`
}

// ReviewCheckout validates the cart preconditions without writing anything.
func (s *OrderService) ReviewCheckout(actor Actor) (*CheckoutReview, error) {
	restaurantID, rc, err := s.singleRestaurantCart(actor)
	if err != nil {
		return nil, err
	}
	rest, err := s.RestRepo.Find(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return &CheckoutReview{Restaurant: rest, Items: rc.Items, Total: rc.Total}, nil
}

// CreateOrder turns the actor's cart into Order + OrderItems + Payment in a
// single transaction. Cart clear and the notification happen after commit,
// best-effort.
func (s *OrderService) CreateOrder(actor Actor, in *CreateOrderIn) (*entity.Order, error) {
	restaurantID, rc, err := s.singleRestaurantCart(actor)
	if err != nil {
		return nil, err
	}

	exists, err := s.RestRepo.Exists(restaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRestaurantNotFound
	}

	if errs := validateOrderForm(in); len(errs) > 0 {
		return nil, errs
	}

	order := entity.Order{
		UserID:              actor.UserID,
		RestaurantID:        restaurantID,
		Status:              entity.OrderPending,
		TotalPrice:          rc.Total,
		DeliveryAddress:     strings.TrimSpace(in.DeliveryAddress),
		SpecialInstructions: strings.TrimSpace(in.SpecialInstructions),
		Notes:               strings.TrimSpace(in.Notes),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, line := range rc.Items {
			oi := entity.OrderItem{
				OrderID:      order.ID,
				RestaurantID: restaurantID,
				MenuItemName: line.Name,
				Quantity:     line.Quantity,
				UnitPrice:    line.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		payment := entity.Payment{
			OrderID:       order.ID,
			Amount:        rc.Total,
			Status:        entity.PaymentPending,
			TransactionID: uuid.NewString(),
		}
		return s.Repo.CreatePayment(tx, &payment)
	})
	if err != nil {
		return nil, err
	}

	// Post-commit side effects. ผิดพลาดก็ไม่ rollback ออเดอร์
	s.Cart.Clear(actor.UserID)
	s.Notify.OrderCreated(&order, s.userEmail(actor.UserID))

	return &order, nil
}

// singleRestaurantCart enforces the checkout preconditions: non-empty cart
// referencing exactly one restaurant.
func (s *OrderService) singleRestaurantCart(actor Actor) (uint, *RestaurantCart, error) {
	cart := s.Cart.Get(actor.UserID)
	if len(cart) == 0 {
		return 0, nil, ErrEmptyCart
	}
	if len(cart) > 1 {
		return 0, nil, ErrMultiRestaurantCart
	}

	for key, rc := range cart {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			return 0, nil, ErrRestaurantNotFound
		}
		return uint(id), rc, nil
	}
	return 0, nil, ErrEmptyCart
}

func validateOrderForm(in *CreateOrderIn) ValidationErrors {
	errs := ValidationErrors{}

	addr := strings.TrimSpace(in.DeliveryAddress)
	if addr == "" {
		errs["delivery_address"] = "delivery address is required"
	} else if len(addr) < 10 || len(addr) > 255 {
		errs["delivery_address"] = "delivery address must be between 10 and 255 characters"
	}
	if len(in.Notes) > 500 {
		errs["notes"] = "notes must be at most 500 characters"
	}
	if len(in.SpecialInstructions) > 500 {
		errs["special_instructions"] = "special instructions must be at most 500 characters"
	}
	return errs
}

// ----- List & Detail -----

func (s *OrderService) ListForUser(actor Actor, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(actor.UserID, limit)
}

type OrderDetail struct {
	Order      *entity.Order      `json:"order"`
	Items      []entity.OrderItem `json:"items"`
	Restaurant *entity.Restaurant `json:"restaurant"`
	Payment    *entity.Payment    `json:"payment"`
	User       *entity.User       `json:"user,omitempty"`
}

// DetailForUser returns ErrNotFound for orders the actor doesn't own —
// existence of other users' orders is not revealed.
func (s *OrderService) DetailForUser(actor Actor, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(actor.UserID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.loadDetail(o)
}

// DetailForAdmin is the unscoped view: any order, purchaser included.
func (s *OrderService) DetailForAdmin(actor Actor, orderID uint) (*OrderDetail, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	detail, err := s.loadDetail(o)
	if err != nil {
		return nil, err
	}
	if u, err := s.UserRepo.FindByID(o.UserID); err == nil {
		detail.User = u
	}
	return detail, nil
}

func (s *OrderService) loadDetail(o *entity.Order) (*OrderDetail, error) {
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	rest, err := s.RestRepo.Find(o.RestaurantID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	payment, err := s.Repo.GetPayment(o.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &OrderDetail{Order: o, Items: items, Restaurant: rest, Payment: payment}, nil
}

// ----- Admin views -----

func (s *OrderService) ListAll(actor Actor, statusFilter string) ([]entity.Order, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}

	var status *entity.OrderStatus
	if statusFilter != "" {
		if parsed, ok := entity.ParseOrderStatus(statusFilter); ok {
			status = &parsed
		}
		// unknown filter values are ignored, not an error
	}
	return s.Repo.ListAll(status, 0)
}

type OrderStats struct {
	TotalOrders  int64                        `json:"total_orders"`
	TotalRevenue float64                      `json:"total_revenue"`
	ByStatus     map[entity.OrderStatus]int64 `json:"by_status"`
}

func (s *OrderService) Stats(actor Actor) (*OrderStats, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}

	total, err := s.Repo.CountAll()
	if err != nil {
		return nil, err
	}
	revenue, err := s.Repo.SumRevenue()
	if err != nil {
		return nil, err
	}

	byStatus := make(map[entity.OrderStatus]int64, 6)
	for _, st := range entity.AllOrderStatuses() {
		count, err := s.Repo.CountByStatus(st)
		if err != nil {
			return nil, err
		}
		byStatus[st] = count
	}

	return &OrderStats{
		TotalOrders:  total,
		TotalRevenue: Round2(revenue),
		ByStatus:     byStatus,
	}, nil
}

func (s *OrderService) userEmail(userID uint) string {
	if u, err := s.UserRepo.FindByID(userID); err == nil {
		return u.Email
	}
	return ""
}
