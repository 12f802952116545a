package repository

import (
	"context"

	"quickbite/entity"
)

// CatalogStore is the read/write surface of the external document store
// holding menus and reviews, keyed by the restaurant's catalog key.
type CatalogStore interface {
	MenuItems(ctx context.Context, restaurantKey string) ([]entity.MenuItem, error)
	Reviews(ctx context.Context, restaurantKey string) ([]entity.Review, error)
	AddReview(ctx context.Context, review entity.Review) error
}
