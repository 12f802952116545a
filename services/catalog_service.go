package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	"quickbite/entity"
	"quickbite/repository"
)

// DeriveCatalogKey turns a restaurant display name into its document-store
// key: lower-cased, spaces replaced with underscores. This derivation is the
// join between the relational row and the catalog — change it and existing
// menus/reviews are orphaned. It runs once, at restaurant creation; reads
// use the stored key.
func DeriveCatalogKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// CatalogService is the read-mostly gateway over restaurants (relational)
// and menus/reviews (document store).
type CatalogService struct {
	RestRepo *repository.RestaurantRepository
	Catalog  repository.CatalogStore
}

func NewCatalogService(restRepo *repository.RestaurantRepository, catalog repository.CatalogStore) *CatalogService {
	return &CatalogService{RestRepo: restRepo, Catalog: catalog}
}

func (s *CatalogService) ListRestaurants(city, nameContains string) ([]entity.Restaurant, []string, error) {
	list, err := s.RestRepo.List(repository.RestaurantFilters{City: city, NameContains: nameContains})
	if err != nil {
		return nil, nil, err
	}
	cities, err := s.RestRepo.Cities()
	if err != nil {
		return nil, nil, err
	}
	return list, cities, nil
}

func (s *CatalogService) FindRestaurant(id uint) (*entity.Restaurant, error) {
	rest, err := s.RestRepo.Find(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return rest, err
}

// MenuItems returns the restaurant's menu grouped flat; callers group by
// category client-side.
func (s *CatalogService) MenuItems(ctx context.Context, restaurantID uint) (*entity.Restaurant, []entity.MenuItem, error) {
	rest, err := s.FindRestaurant(restaurantID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.Catalog.MenuItems(ctx, rest.CatalogKey)
	if err != nil {
		return nil, nil, err
	}
	return rest, items, nil
}

func (s *CatalogService) Reviews(ctx context.Context, restaurantID uint) ([]entity.Review, float64, error) {
	rest, err := s.FindRestaurant(restaurantID)
	if err != nil {
		return nil, 0, err
	}
	reviews, err := s.Catalog.Reviews(ctx, rest.CatalogKey)
	if err != nil {
		return nil, 0, err
	}
	return reviews, AverageRating(reviews), nil
}

type AddReviewIn struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

func (s *CatalogService) AddReview(ctx context.Context, restaurantID uint, user *entity.User, in *AddReviewIn) error {
	rest, err := s.FindRestaurant(restaurantID)
	if err != nil {
		return err
	}

	errs := ValidationErrors{}
	if in.Rating < 1 || in.Rating > 5 {
		errs["rating"] = "rating must be between 1 and 5 stars"
	}
	text := strings.TrimSpace(in.Text)
	if len(text) < 10 || len(text) > 500 {
		errs["text"] = "review must be between 10 and 500 characters"
	}
	if len(errs) > 0 {
		return errs
	}

	return s.Catalog.AddReview(ctx, entity.Review{
		RestaurantKey: rest.CatalogKey,
		UserID:        user.ID,
		Username:      user.Username,
		Rating:        in.Rating,
		Text:          text,
		CreatedAt:     time.Now().UTC(),
	})
}

// AverageRating rounds to 1 decimal; 0 when there are no reviews.
func AverageRating(reviews []entity.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var total int
	for _, r := range reviews {
		total += r.Rating
	}
	avg := float64(total) / float64(len(reviews))
	return math.Round(avg*10) / 10
}
