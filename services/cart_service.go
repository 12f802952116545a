package services

type CartService struct {
	Store *CartStore
}

func NewCartService(store *CartStore) *CartService {
	return &CartService{Store: store}
}

type AddToCartIn struct {
	RestaurantID string  `json:"restaurant_id"`
	ItemID       string  `json:"item_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	// nil = omitted (defaults to 1). An explicit 0 is rejected.
	Quantity *int `json:"quantity"`
}

// CartSummary is returned after every mutation so the client can refresh
// its badge without refetching the whole cart.
type CartSummary struct {
	ItemCount int     `json:"item_count"`
	CartTotal float64 `json:"cart_total"`
}

func (s *CartService) Get(userID uint) (Cart, CartSummary) {
	cart := s.Store.Get(userID)
	return cart, summarize(cart)
}

func (s *CartService) Add(userID uint, in *AddToCartIn) (CartSummary, error) {
	qty := 1
	if in.Quantity != nil {
		qty = *in.Quantity
	}

	errs := ValidationErrors{}
	if in.RestaurantID == "" {
		errs["restaurant_id"] = "restaurant id is required"
	}
	if in.ItemID == "" {
		errs["item_id"] = "item id is required"
	}
	if in.Name == "" {
		errs["name"] = "item name is required"
	}
	if in.Price <= 0 {
		errs["price"] = "price must be positive"
	}
	if qty <= 0 {
		errs["quantity"] = "quantity must be positive"
	}
	if len(errs) > 0 {
		return s.summary(userID), errs
	}

	s.Store.AddItem(userID, in.RestaurantID, CartLine{
		ItemID:   in.ItemID,
		Name:     in.Name,
		Price:    in.Price,
		Quantity: qty,
	})
	return s.summary(userID), nil
}

func (s *CartService) Remove(userID uint, restaurantID, itemID string) CartSummary {
	s.Store.RemoveItem(userID, restaurantID, itemID)
	return s.summary(userID)
}

func (s *CartService) UpdateQuantity(userID uint, restaurantID, itemID string, quantity int) (CartSummary, error) {
	if quantity < 0 {
		return s.summary(userID), ValidationErrors{"quantity": "quantity cannot be negative"}
	}
	s.Store.SetQuantity(userID, restaurantID, itemID, quantity)
	return s.summary(userID), nil
}

func (s *CartService) Clear(userID uint) CartSummary {
	s.Store.Clear(userID)
	return CartSummary{}
}

func (s *CartService) summary(userID uint) CartSummary {
	return summarize(s.Store.Get(userID))
}

func summarize(cart Cart) CartSummary {
	var out CartSummary
	for _, rc := range cart {
		out.ItemCount += len(rc.Items)
		out.CartTotal += rc.Total
	}
	out.CartTotal = Round2(out.CartTotal)
	return out
}
