package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartStoreAddMergesSameItem(t *testing.T) {
	store := NewCartStore()

	store.AddItem(1, "10", CartLine{ItemID: "a", Name: "Margherita Pizza", Price: 12.99, Quantity: 1})
	store.AddItem(1, "10", CartLine{ItemID: "a", Name: "Margherita Pizza", Price: 12.99, Quantity: 2})

	cart := store.Get(1)
	require.Len(t, cart, 1)
	require.Len(t, cart["10"].Items, 1)
	assert.Equal(t, 3, cart["10"].Items[0].Quantity)
	assert.Equal(t, 38.97, cart["10"].Total)
}

func TestCartStoreTotalRecomputedAfterEveryMutation(t *testing.T) {
	store := NewCartStore()

	store.AddItem(1, "10", CartLine{ItemID: "a", Name: "Margherita Pizza", Price: 12.99, Quantity: 1})
	store.AddItem(1, "10", CartLine{ItemID: "b", Name: "Pepperoni Pizza", Price: 14.99, Quantity: 2})
	assert.Equal(t, 42.97, store.Get(1)["10"].Total)

	store.SetQuantity(1, "10", "b", 1)
	assert.Equal(t, 27.98, store.Get(1)["10"].Total)

	store.RemoveItem(1, "10", "a")
	assert.Equal(t, 14.99, store.Get(1)["10"].Total)
}

func TestCartStoreSetQuantityZeroRemovesItem(t *testing.T) {
	store := NewCartStore()

	store.AddItem(1, "10", CartLine{ItemID: "a", Name: "Fries", Price: 5.49, Quantity: 2})
	store.AddItem(1, "10", CartLine{ItemID: "b", Name: "Burger", Price: 9.99, Quantity: 1})

	store.SetQuantity(1, "10", "a", 0)

	cart := store.Get(1)
	require.Len(t, cart["10"].Items, 1)
	assert.Equal(t, "b", cart["10"].Items[0].ItemID)
}

func TestCartStoreEmptyRestaurantEntryDropped(t *testing.T) {
	store := NewCartStore()

	store.AddItem(1, "10", CartLine{ItemID: "a", Name: "Fries", Price: 5.49, Quantity: 1})
	store.RemoveItem(1, "10", "a")

	assert.Empty(t, store.Get(1))

	store.AddItem(1, "10", CartLine{ItemID: "a", Name: "Fries", Price: 5.49, Quantity: 1})
	store.SetQuantity(1, "10", "a", 0)

	assert.Empty(t, store.Get(1))
}

func TestCartStoreGetReturnsCopy(t *testing.T) {
	store := NewCartStore()
	store.AddItem(1, "10", CartLine{ItemID: "a", Name: "Fries", Price: 5.49, Quantity: 1})

	cart := store.Get(1)
	cart["10"].Items[0].Quantity = 99
	delete(cart, "10")

	fresh := store.Get(1)
	require.Len(t, fresh, 1)
	assert.Equal(t, 1, fresh["10"].Items[0].Quantity)
}

func TestCartStoreSessionsAreIsolated(t *testing.T) {
	store := NewCartStore()

	store.AddItem(1, "10", CartLine{ItemID: "a", Name: "Fries", Price: 5.49, Quantity: 1})
	store.AddItem(2, "20", CartLine{ItemID: "b", Name: "Roll", Price: 11.50, Quantity: 1})

	assert.Len(t, store.Get(1), 1)
	assert.Len(t, store.Get(2), 1)
	assert.Nil(t, store.Get(1)["20"])

	store.Clear(1)
	assert.Empty(t, store.Get(1))
	assert.Len(t, store.Get(2), 1)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 42.97, Round2(12.99+2*14.99))
	assert.Equal(t, 0.1, Round2(0.1))
	assert.Equal(t, 10.57, Round2(10.566))
}
