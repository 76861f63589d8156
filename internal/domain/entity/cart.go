package entity

import "github.com/shopspring/decimal"

// CartItem is one line of the device cart, keyed by (MenuItemID, Variant).
type CartItem struct {
	MenuItemID string
	Name       string
	Variant    string
	UnitPrice  decimal.Decimal
	Quantity   int
}

// Cart is the ordered sequence of line items the device is assembling.
// It lives in the state container and is synced to the snapshot store on
// every mutation, so a kiosk restart never loses an in-progress order.
type Cart struct {
	Items []CartItem
}

// Add merges the item into the cart. Adding an existing
// (MenuItemID, Variant) pair increments its quantity rather than
// appending a duplicate entry.
func (c *Cart) Add(item CartItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].MenuItemID == item.MenuItemID && c.Items[i].Variant == item.Variant {
			c.Items[i].Quantity += item.Quantity

			return
		}
	}
	c.Items = append(c.Items, item)
}

// Remove drops the line matching (menuItemID, variant). Removing an
// unknown line is a no-op.
func (c *Cart) Remove(menuItemID, variant string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.MenuItemID == menuItemID && item.Variant == variant {
			continue
		}
		kept = append(kept, item)
	}
	c.Items = kept
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Subtotal is the raw total over all lines: sum of unit price times quantity.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.Items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return subtotal
}

// Clone returns a deep copy of the cart.
func (c *Cart) Clone() *Cart {
	clone := &Cart{Items: make([]CartItem, len(c.Items))}
	copy(clone.Items, c.Items)

	return clone
}
