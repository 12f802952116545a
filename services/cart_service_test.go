package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qty(n int) *int { return &n }

func TestCartServiceAddRejectsInvalidInput(t *testing.T) {
	svc := NewCartService(NewCartStore())

	cases := []struct {
		name  string
		in    AddToCartIn
		field string
	}{
		{"missing restaurant", AddToCartIn{ItemID: "a", Name: "Fries", Price: 5.49, Quantity: qty(1)}, "restaurant_id"},
		{"missing item id", AddToCartIn{RestaurantID: "10", Name: "Fries", Price: 5.49, Quantity: qty(1)}, "item_id"},
		{"missing name", AddToCartIn{RestaurantID: "10", ItemID: "a", Price: 5.49, Quantity: qty(1)}, "name"},
		{"zero price", AddToCartIn{RestaurantID: "10", ItemID: "a", Name: "Fries", Quantity: qty(1)}, "price"},
		{"negative price", AddToCartIn{RestaurantID: "10", ItemID: "a", Name: "Fries", Price: -1, Quantity: qty(1)}, "price"},
		{"zero quantity", AddToCartIn{RestaurantID: "10", ItemID: "a", Name: "Fries", Price: 5.49, Quantity: qty(0)}, "quantity"},
		{"negative quantity", AddToCartIn{RestaurantID: "10", ItemID: "a", Name: "Fries", Price: 5.49, Quantity: qty(-2)}, "quantity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := tc.in
			_, err := svc.Add(7, &in)

			var fieldErrs ValidationErrors
			require.True(t, errors.As(err, &fieldErrs))
			assert.Contains(t, fieldErrs, tc.field)
			assert.Empty(t, svc.Store.Get(7), "rejected add must be a no-op")
		})
	}
}

func TestCartServiceAddDefaultsQuantityToOne(t *testing.T) {
	svc := NewCartService(NewCartStore())

	sum, err := svc.Add(7, &AddToCartIn{RestaurantID: "10", ItemID: "a", Name: "Fries", Price: 5.49})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.ItemCount)
	assert.Equal(t, 5.49, sum.CartTotal)
}

func TestCartServiceSummaryAcrossRestaurants(t *testing.T) {
	svc := NewCartService(NewCartStore())

	_, err := svc.Add(7, &AddToCartIn{RestaurantID: "10", ItemID: "a", Name: "Margherita Pizza", Price: 12.99, Quantity: qty(1)})
	require.NoError(t, err)
	_, err = svc.Add(7, &AddToCartIn{RestaurantID: "20", ItemID: "b", Name: "Salmon Roll", Price: 11.50, Quantity: qty(2)})
	require.NoError(t, err)

	cart, sum := svc.Get(7)
	assert.Len(t, cart, 2)
	assert.Equal(t, 2, sum.ItemCount)
	assert.Equal(t, 35.99, sum.CartTotal)
}

func TestCartServiceUpdateQuantityNegativeRejected(t *testing.T) {
	svc := NewCartService(NewCartStore())
	_, err := svc.Add(7, &AddToCartIn{RestaurantID: "10", ItemID: "a", Name: "Fries", Price: 5.49, Quantity: qty(1)})
	require.NoError(t, err)

	_, err = svc.UpdateQuantity(7, "10", "a", -1)
	var fieldErrs ValidationErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Contains(t, fieldErrs, "quantity")
}

func TestCartServiceClear(t *testing.T) {
	svc := NewCartService(NewCartStore())
	_, err := svc.Add(7, &AddToCartIn{RestaurantID: "10", ItemID: "a", Name: "Fries", Price: 5.49, Quantity: qty(1)})
	require.NoError(t, err)

	sum := svc.Clear(7)
	assert.Zero(t, sum.ItemCount)
	assert.Zero(t, sum.CartTotal)

	cart, _ := svc.Get(7)
	assert.Empty(t, cart)
}
