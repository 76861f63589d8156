package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_Add_MergesSameItemAndVariant(t *testing.T) {
	cart := &Cart{}

	cart.Add(CartItem{MenuItemID: "burger", Variant: "Large", UnitPrice: decimal.NewFromInt(250), Quantity: 1})
	cart.Add(CartItem{MenuItemID: "burger", Variant: "Large", UnitPrice: decimal.NewFromInt(250), Quantity: 1})

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCart_Add_KeepsVariantsSeparate(t *testing.T) {
	cart := &Cart{}

	cart.Add(CartItem{MenuItemID: "burger", Variant: "Large", Quantity: 1})
	cart.Add(CartItem{MenuItemID: "burger", Variant: "Small", Quantity: 1})

	assert.Len(t, cart.Items, 2)
}

func TestCart_Add_DefaultsQuantityToOne(t *testing.T) {
	cart := &Cart{}

	cart.Add(CartItem{MenuItemID: "burger"})

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCart_Remove(t *testing.T) {
	cart := &Cart{}
	cart.Add(CartItem{MenuItemID: "burger", Variant: "Large", Quantity: 1})
	cart.Add(CartItem{MenuItemID: "pizza", Quantity: 1})

	cart.Remove("burger", "Large")

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "pizza", cart.Items[0].MenuItemID)

	// Removing an unknown line is a no-op.
	cart.Remove("missing", "")
	assert.Len(t, cart.Items, 1)
}

func TestCart_Subtotal(t *testing.T) {
	cart := &Cart{}
	cart.Add(CartItem{MenuItemID: "burger", UnitPrice: decimal.NewFromInt(200), Quantity: 2})
	cart.Add(CartItem{MenuItemID: "fries", UnitPrice: decimal.NewFromFloat(99.50), Quantity: 1})

	assert.True(t, cart.Subtotal().Equal(decimal.NewFromFloat(499.50)))
}

func TestCart_Clear(t *testing.T) {
	cart := &Cart{}
	cart.Add(CartItem{MenuItemID: "burger", Quantity: 1})

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Subtotal().IsZero())
}

func TestCart_Clone_IsIndependent(t *testing.T) {
	cart := &Cart{}
	cart.Add(CartItem{MenuItemID: "burger", Quantity: 1})

	clone := cart.Clone()
	clone.Add(CartItem{MenuItemID: "pizza", Quantity: 1})

	assert.Len(t, cart.Items, 1)
	assert.Len(t, clone.Items, 2)
}
