package services

import (
	"errors"

	"gorm.io/gorm"

	"quickbite/entity"
)

// The order status state machine. Terminal states map to an empty set.
var orderTransitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderPending:   {entity.OrderConfirmed, entity.OrderCancelled},
	entity.OrderConfirmed: {entity.OrderPreparing, entity.OrderCancelled},
	entity.OrderPreparing: {entity.OrderReady, entity.OrderCancelled},
	entity.OrderReady:     {entity.OrderDelivered},
	entity.OrderDelivered: {},
	entity.OrderCancelled: {},
}

func canTransition(from, to entity.OrderStatus) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// RequestTransition moves an order along the workflow. Admin capability is
// required; the owner-initiated path is RequestCancellation.
//
// Error order matters for diagnostics: NotFound before Forbidden, and a
// same-status request reports ErrSameStatus, not ErrInvalidTransition.
func (s *OrderService) RequestTransition(orderID uint, requested entity.OrderStatus, actor Actor) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !actor.IsAdmin {
		return nil, ErrForbidden
	}
	if requested == o.Status {
		return nil, ErrSameStatus
	}
	if !canTransition(o.Status, requested) {
		return nil, ErrInvalidTransition
	}

	oldStatus := o.Status
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// CAS: a concurrent admin who won the race leaves us with 0 rows.
		swapped, err := s.Repo.UpdateStatusGuard(tx, o.ID, oldStatus, requested)
		if err != nil {
			return err
		}
		if !swapped {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.Status = requested
	s.Notify.StatusChanged(o, oldStatus, requested)
	if requested == entity.OrderDelivered {
		s.Notify.Delivered(o, s.userEmail(o.UserID))
	}
	return o, nil
}

// RequestCancellation is the narrower owner-initiated path: PENDING orders
// only, and the payment is refunded in the same transaction.
func (s *OrderService) RequestCancellation(orderID uint, actor Actor) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Not-found รั่วข้อมูลน้อยกว่า forbidden สำหรับออเดอร์คนอื่น
	if o.UserID != actor.UserID {
		return nil, ErrNotFound
	}
	if o.Status != entity.OrderPending {
		return nil, ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		swapped, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.OrderPending, entity.OrderCancelled)
		if err != nil {
			return err
		}
		if !swapped {
			return ErrInvalidTransition
		}
		return s.Repo.UpdatePaymentStatus(tx, o.ID, entity.PaymentRefunded)
	})
	if err != nil {
		return nil, err
	}

	oldStatus := o.Status
	o.Status = entity.OrderCancelled
	s.Notify.StatusChanged(o, oldStatus, entity.OrderCancelled)
	return o, nil
}
