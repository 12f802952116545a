package services

import (
	"math"
	"sync"
)

// CartLine คือรายการเดียวในตะกร้า — snapshot ราคา/ชื่อจาก catalog ตอนหยิบ
type CartLine struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// RestaurantCart groups the lines of a single restaurant with their subtotal.
type RestaurantCart struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

// Cart maps a restaurant id (string key) to its lines. More than one key may
// coexist while browsing; checkout rejects multi-restaurant carts.
type Cart map[string]*RestaurantCart

// CartStore holds in-progress carts per session. Carts are ephemeral server
// state, never written to the database; last write wins within a session.
type CartStore struct {
	mu    sync.RWMutex
	carts map[uint]Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[uint]Cart)}
}

// Get returns a deep copy so callers can't mutate the stored cart without
// going back through the store.
func (s *CartStore) Get(sessionID uint) Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(Cart, len(s.carts[sessionID]))
	for key, rc := range s.carts[sessionID] {
		items := make([]CartLine, len(rc.Items))
		copy(items, rc.Items)
		out[key] = &RestaurantCart{Items: items, Total: rc.Total}
	}
	return out
}

// AddItem merges by item id within the restaurant: an existing line gets its
// quantity incremented, a new line is appended.
func (s *CartStore) AddItem(sessionID uint, restaurantID string, line CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(sessionID)
	rc, ok := cart[restaurantID]
	if !ok {
		rc = &RestaurantCart{}
		cart[restaurantID] = rc
	}

	merged := false
	for i := range rc.Items {
		if rc.Items[i].ItemID == line.ItemID {
			rc.Items[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		rc.Items = append(rc.Items, line)
	}

	s.recalc(cart, restaurantID)
}

func (s *CartStore) RemoveItem(sessionID uint, restaurantID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(sessionID)
	rc, ok := cart[restaurantID]
	if !ok {
		return
	}

	kept := rc.Items[:0]
	for _, it := range rc.Items {
		if it.ItemID != itemID {
			kept = append(kept, it)
		}
	}
	rc.Items = kept

	s.recalc(cart, restaurantID)
}

// SetQuantity with quantity == 0 behaves as RemoveItem.
func (s *CartStore) SetQuantity(sessionID uint, restaurantID, itemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(sessionID)
	rc, ok := cart[restaurantID]
	if !ok {
		return
	}

	if quantity == 0 {
		kept := rc.Items[:0]
		for _, it := range rc.Items {
			if it.ItemID != itemID {
				kept = append(kept, it)
			}
		}
		rc.Items = kept
	} else {
		for i := range rc.Items {
			if rc.Items[i].ItemID == itemID {
				rc.Items[i].Quantity = quantity
				break
			}
		}
	}

	s.recalc(cart, restaurantID)
}

func (s *CartStore) Clear(sessionID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

func (s *CartStore) cart(sessionID uint) Cart {
	cart, ok := s.carts[sessionID]
	if !ok {
		cart = make(Cart)
		s.carts[sessionID] = cart
	}
	return cart
}

// recalc rebuilds the restaurant subtotal after a mutation. An emptied
// restaurant entry is dropped entirely, not left as an empty record.
func (s *CartStore) recalc(cart Cart, restaurantID string) {
	rc, ok := cart[restaurantID]
	if !ok {
		return
	}
	if len(rc.Items) == 0 {
		delete(cart, restaurantID)
		return
	}

	var total float64
	for _, it := range rc.Items {
		total += it.Price * float64(it.Quantity)
	}
	rc.Total = Round2(total)
}

// Round2 rounds to 2 decimal places (money display precision).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
