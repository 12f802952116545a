package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"quickbite/entity"
)

func seedOrder(t *testing.T, db *gorm.DB, userID, restID uint, status entity.OrderStatus) *entity.Order {
	t.Helper()

	o := entity.Order{
		UserID:          userID,
		RestaurantID:    restID,
		Status:          status,
		TotalPrice:      42.97,
		DeliveryAddress: "221B Baker Street, London",
	}
	require.NoError(t, db.Create(&o).Error)

	p := entity.Payment{OrderID: o.ID, Amount: o.TotalPrice, Status: entity.PaymentPending}
	require.NoError(t, db.Create(&p).Error)
	return &o
}

func TestTransitionTableExhaustive(t *testing.T) {
	allowed := map[entity.OrderStatus]map[entity.OrderStatus]bool{
		entity.OrderPending:   {entity.OrderConfirmed: true, entity.OrderCancelled: true},
		entity.OrderConfirmed: {entity.OrderPreparing: true, entity.OrderCancelled: true},
		entity.OrderPreparing: {entity.OrderReady: true, entity.OrderCancelled: true},
		entity.OrderReady:     {entity.OrderDelivered: true},
		entity.OrderDelivered: {},
		entity.OrderCancelled: {},
	}

	for _, from := range entity.AllOrderStatuses() {
		for _, to := range entity.AllOrderStatuses() {
			if from == to {
				continue // แยกเคส same-status ไว้เทสต่างหาก
			}
			t.Run(string(from)+"_to_"+string(to), func(t *testing.T) {
				svc, db := newOrderService(t)
				user := seedUser(t, db, false)
				admin := seedUser(t, db, true)
				rest := seedRestaurant(t, db)
				order := seedOrder(t, db, user.ID, rest.ID, from)

				updated, err := svc.RequestTransition(order.ID, to, Actor{UserID: admin.ID, IsAdmin: true})

				var stored entity.Order
				require.NoError(t, db.First(&stored, order.ID).Error)

				if allowed[from][to] {
					require.NoError(t, err)
					assert.Equal(t, to, updated.Status)
					assert.Equal(t, to, stored.Status)
				} else {
					assert.ErrorIs(t, err, ErrInvalidTransition)
					assert.Equal(t, from, stored.Status, "status unchanged on rejected transition")
				}
			})
		}
	}
}

func TestTransitionSameStatusDistinctError(t *testing.T) {
	svc, db := newOrderService(t)
	user := seedUser(t, db, false)
	admin := seedUser(t, db, true)
	rest := seedRestaurant(t, db)
	order := seedOrder(t, db, user.ID, rest.ID, entity.OrderPending)

	_, err := svc.RequestTransition(order.ID, entity.OrderPending, Actor{UserID: admin.ID, IsAdmin: true})
	assert.ErrorIs(t, err, ErrSameStatus)
	assert.NotErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionRequiresAdmin(t *testing.T) {
	svc, db := newOrderService(t)
	user := seedUser(t, db, false)
	rest := seedRestaurant(t, db)
	order := seedOrder(t, db, user.ID, rest.ID, entity.OrderPending)

	_, err := svc.RequestTransition(order.ID, entity.OrderConfirmed, Actor{UserID: user.ID, IsAdmin: false})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTransitionMissingOrder(t *testing.T) {
	svc, db := newOrderService(t)
	admin := seedUser(t, db, true)

	_, err := svc.RequestTransition(9999, entity.OrderConfirmed, Actor{UserID: admin.ID, IsAdmin: true})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOwnerCancellationFromPending(t *testing.T) {
	svc, db := newOrderService(t)
	user := seedUser(t, db, false)
	rest := seedRestaurant(t, db)
	order := seedOrder(t, db, user.ID, rest.ID, entity.OrderPending)

	cancelled, err := svc.RequestCancellation(order.ID, Actor{UserID: user.ID})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, cancelled.Status)

	// refund ต้องเกิดใน transaction เดียวกัน
	var payment entity.Payment
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&payment).Error)
	assert.Equal(t, entity.PaymentRefunded, payment.Status)
}

func TestOwnerCancellationOnlyFromPending(t *testing.T) {
	for _, status := range []entity.OrderStatus{
		entity.OrderConfirmed, entity.OrderPreparing, entity.OrderReady,
		entity.OrderDelivered, entity.OrderCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			svc, db := newOrderService(t)
			user := seedUser(t, db, false)
			rest := seedRestaurant(t, db)
			order := seedOrder(t, db, user.ID, rest.ID, status)

			_, err := svc.RequestCancellation(order.ID, Actor{UserID: user.ID})
			assert.ErrorIs(t, err, ErrInvalidTransition)

			var payment entity.Payment
			require.NoError(t, db.Where("order_id = ?", order.ID).First(&payment).Error)
			assert.Equal(t, entity.PaymentPending, payment.Status, "no refund on rejected cancellation")
		})
	}
}

func TestOwnerCancellationNonOwnerSeesNotFound(t *testing.T) {
	svc, db := newOrderService(t)
	owner := seedUser(t, db, false)
	rest := seedRestaurant(t, db)
	order := seedOrder(t, db, owner.ID, rest.ID, entity.OrderPending)

	other := entity.User{Email: "other@example.com", Username: "other", PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(&other).Error)

	_, err := svc.RequestCancellation(order.ID, Actor{UserID: other.ID})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrForbidden)
}

func TestWorkflowEndToEnd(t *testing.T) {
	svc, db := newOrderService(t)
	user := seedUser(t, db, false)
	admin := seedUser(t, db, true)
	rest := seedRestaurant(t, db)
	fillCart(svc, user.ID, rest.ID)

	order, err := svc.CreateOrder(Actor{UserID: user.ID}, validForm())
	require.NoError(t, err)
	assert.Equal(t, 42.97, order.TotalPrice)

	adminActor := Actor{UserID: admin.ID, IsAdmin: true}

	// PENDING → CONFIRMED ผ่าน
	_, err = svc.RequestTransition(order.ID, entity.OrderConfirmed, adminActor)
	require.NoError(t, err)

	// CONFIRMED → PENDING ถอยหลังไม่ได้
	_, err = svc.RequestTransition(order.ID, entity.OrderPending, adminActor)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	for _, next := range []entity.OrderStatus{entity.OrderPreparing, entity.OrderReady, entity.OrderDelivered} {
		_, err = svc.RequestTransition(order.ID, next, adminActor)
		require.NoError(t, err)
	}

	// DELIVERED is terminal
	for _, next := range []entity.OrderStatus{entity.OrderPending, entity.OrderCancelled, entity.OrderReady} {
		_, err = svc.RequestTransition(order.ID, next, adminActor)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}
}
