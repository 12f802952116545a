package repository

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"quickbite/entity"
)

// MemoryCatalog is the development-mode stand-in for the document store,
// pre-seeded with a small menu set. Also used by tests.
type MemoryCatalog struct {
	mu      sync.RWMutex
	items   map[string][]entity.MenuItem
	reviews map[string][]entity.Review
}

func NewMemoryCatalog() *MemoryCatalog {
	c := &MemoryCatalog{
		items:   make(map[string][]entity.MenuItem),
		reviews: make(map[string][]entity.Review),
	}
	c.seed()
	return c
}

func (c *MemoryCatalog) MenuItems(_ context.Context, restaurantKey string) ([]entity.MenuItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]entity.MenuItem, len(c.items[restaurantKey]))
	copy(out, c.items[restaurantKey])
	return out, nil
}

func (c *MemoryCatalog) Reviews(_ context.Context, restaurantKey string) ([]entity.Review, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]entity.Review, len(c.reviews[restaurantKey]))
	copy(out, c.reviews[restaurantKey])
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (c *MemoryCatalog) AddReview(_ context.Context, review entity.Review) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	c.reviews[review.RestaurantKey] = append(c.reviews[review.RestaurantKey], review)
	return nil
}

// AddMenuItem is not part of CatalogStore — menus are managed out of band.
// Exposed for tests and seeding only.
func (c *MemoryCatalog) AddMenuItem(item entity.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	c.items[item.RestaurantKey] = append(c.items[item.RestaurantKey], item)
}

func (c *MemoryCatalog) seed() {
	for _, it := range []entity.MenuItem{
		{RestaurantKey: "pizza_palace", Name: "Margherita Pizza", Description: "Fresh mozzarella and basil", Price: 12.99, Category: "Pizza"},
		{RestaurantKey: "pizza_palace", Name: "Pepperoni Pizza", Description: "Classic pepperoni and cheese", Price: 14.99, Category: "Pizza"},
		{RestaurantKey: "burger_haven", Name: "Classic Cheeseburger", Description: "Juicy burger with cheddar", Price: 9.99, Category: "Burgers"},
		{RestaurantKey: "burger_haven", Name: "Loaded Fries", Description: "Fries with cheese and bacon", Price: 5.49, Category: "Sides"},
		{RestaurantKey: "sushi_spot", Name: "Salmon Roll", Description: "Eight pieces, fresh salmon", Price: 11.50, Category: "Rolls"},
	} {
		c.AddMenuItem(it)
	}
}
