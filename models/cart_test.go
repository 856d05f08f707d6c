package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecalculateTotals(t *testing.T) {
	cart := &Cart{
		UserID: "u1",
		Items: []CartItem{
			{ID: "i1", ProductID: "p1", ProductName: "Cream", Price: 150000, Quantity: 2},
		},
	}
	cart.RecalculateTotals()

	assert.Equal(t, float64(300000), cart.TotalPrice)
	assert.Equal(t, 2, cart.TotalQuantity)
}

func TestRecalculateTotals_MultipleItems(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{
			{ID: "i1", Price: 150000, Quantity: 2},
			{ID: "i2", Price: 120000, Quantity: 1},
			{ID: "i3", Price: 200000, Quantity: 3},
		},
	}
	cart.RecalculateTotals()

	assert.Equal(t, float64(1020000), cart.TotalPrice)
	assert.Equal(t, 6, cart.TotalQuantity)
}

func TestRecalculateTotals_EmptyCart(t *testing.T) {
	cart := &Cart{Items: []CartItem{}}
	cart.TotalPrice = 99
	cart.TotalQuantity = 99
	cart.RecalculateTotals()

	assert.Zero(t, cart.TotalPrice)
	assert.Zero(t, cart.TotalQuantity)
}

func TestRecalculateTotals_ExactDecimalArithmetic(t *testing.T) {
	// 0.1×3 drifts to 0.30000000000000004 under plain float64 addition.
	cart := &Cart{
		Items: []CartItem{
			{ID: "i1", Price: 0.1, Quantity: 3},
		},
	}
	cart.RecalculateTotals()

	assert.Equal(t, 0.3, cart.TotalPrice)
}

func TestRecalculateTotals_AlwaysFromScratch(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{{ID: "i1", Price: 100, Quantity: 1}},
	}
	cart.RecalculateTotals()
	require.Equal(t, float64(100), cart.TotalPrice)

	cart.Items[0].Quantity = 5
	cart.RecalculateTotals()

	assert.Equal(t, float64(500), cart.TotalPrice)
	assert.Equal(t, 5, cart.TotalQuantity)
}

func TestFindItem(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{
			{ID: "i1", ProductID: "p1"},
			{ID: "i2", ProductID: "p2"},
		},
	}

	item := cart.FindItem("i2")
	require.NotNil(t, item)
	assert.Equal(t, "p2", item.ProductID)

	assert.Nil(t, cart.FindItem("missing"))
}

func TestFindItemByProduct(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{
			{ID: "i1", ProductID: "p1"},
		},
	}

	require.NotNil(t, cart.FindItemByProduct("p1"))
	assert.Nil(t, cart.FindItemByProduct("p9"))
}

func TestRemoveItem(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{
			{ID: "i1"},
			{ID: "i2"},
			{ID: "i3"},
		},
	}

	require.True(t, cart.RemoveItem("i2"))
	assert.Len(t, cart.Items, 2)
	assert.Nil(t, cart.FindItem("i2"))

	assert.False(t, cart.RemoveItem("i2"))
	assert.Len(t, cart.Items, 2)
}
