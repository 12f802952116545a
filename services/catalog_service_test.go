package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"quickbite/entity"
	"quickbite/repository"
)

func newCatalogService(t *testing.T) (*CatalogService, *repository.MemoryCatalog) {
	t.Helper()

	db := newTestDB(t)
	catalog := repository.NewMemoryCatalog()
	svc := NewCatalogService(repository.NewRestaurantRepository(db), catalog)

	require.NoError(t, db.Create(&entity.Restaurant{
		Name: "Pizza Palace", City: "Astana", CatalogKey: "pizza_palace",
	}).Error)
	return svc, catalog
}

func TestDeriveCatalogKey(t *testing.T) {
	cases := map[string]string{
		"Pizza Palace":    "pizza_palace",
		"Burger Haven":    "burger_haven",
		"Sushi Spot":      "sushi_spot",
		"KFC":             "kfc",
		"Bob's Big Boy 2": "bob's_big_boy_2",
	}
	for name, want := range cases {
		assert.Equal(t, want, DeriveCatalogKey(name))
	}
}

func TestFindRestaurantMissing(t *testing.T) {
	svc, _ := newCatalogService(t)

	_, err := svc.FindRestaurant(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMenuItemsJoinedByCatalogKey(t *testing.T) {
	svc, _ := newCatalogService(t)

	rest, items, err := svc.MenuItems(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "pizza_palace", rest.CatalogKey)
	require.Len(t, items, 2)
	assert.Equal(t, "Margherita Pizza", items[0].Name)
	assert.Equal(t, 12.99, items[0].Price)
}

func TestAddReviewValidation(t *testing.T) {
	svc, catalog := newCatalogService(t)
	user := &entity.User{Model: gorm.Model{ID: 7}, Username: "reviewer"}

	cases := []struct {
		name  string
		in    AddReviewIn
		field string
	}{
		{"rating too low", AddReviewIn{Rating: 0, Text: "Great pizza, would order again"}, "rating"},
		{"rating too high", AddReviewIn{Rating: 6, Text: "Great pizza, would order again"}, "rating"},
		{"text too short", AddReviewIn{Rating: 4, Text: "meh"}, "text"},
		{"text all whitespace", AddReviewIn{Rating: 4, Text: "             "}, "text"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.AddReview(context.Background(), 1, user, &tc.in)
			var verr ValidationErrors
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr, tc.field)
		})
	}

	reviews, err := catalog.Reviews(context.Background(), "pizza_palace")
	require.NoError(t, err)
	assert.Empty(t, reviews, "rejected reviews are not stored")
}

func TestAddReviewTrimsAndStores(t *testing.T) {
	svc, catalog := newCatalogService(t)
	user := &entity.User{Model: gorm.Model{ID: 7}, Username: "reviewer"}

	err := svc.AddReview(context.Background(), 1, user, &AddReviewIn{
		Rating: 5,
		Text:   "  Best margherita in town, thin crust done right.  ",
	})
	require.NoError(t, err)

	reviews, err := catalog.Reviews(context.Background(), "pizza_palace")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Best margherita in town, thin crust done right.", reviews[0].Text)
	assert.Equal(t, "reviewer", reviews[0].Username)
	assert.Equal(t, uint(7), reviews[0].UserID)
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))

	reviews := []entity.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}
	assert.Equal(t, 4.3, AverageRating(reviews)) // 13/3 = 4.333… → 4.3

	reviews = append(reviews, entity.Review{Rating: 2})
	assert.Equal(t, 3.8, AverageRating(reviews)) // 15/4 = 3.75 → 3.8
}
