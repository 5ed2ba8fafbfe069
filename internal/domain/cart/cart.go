// internal/domain/cart/cart.go
package cart

import (
	"time"

	"github.com/allithy/storefront-backend/internal/domain/catalog"
)

// Item pairs a product snapshot with a quantity. The snapshot is taken at
// add time, so later catalog edits do not rewrite items already in a cart.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	AddedAt  time.Time       `json:"added_at"`
}

// Cart is a session's in-progress selection. Items keep insertion order
// and hold at most one entry per product id, quantity always >= 1.
type Cart struct {
	SessionID string    `json:"session_id"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary partitions the cart into a priced subtotal and a count of items
// whose price must be quoted. Both can be non-zero at once; there is no
// single grand total.
type Summary struct {
	Subtotal      float64 `json:"subtotal"`
	UnpricedCount int     `json:"unpriced_count"`
	TotalItems    int     `json:"total_items"`
}

// New returns an empty cart for the session.
func New(sessionID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		SessionID: sessionID,
		Items:     []Item{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Add merges the product into the cart: an existing item gains one unit,
// otherwise a new item with quantity 1 is appended.
func (c *Cart) Add(product catalog.Product) {
	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID {
			c.Items[i].Quantity++
			c.touch()
			return
		}
	}

	c.Items = append(c.Items, Item{
		Product:  product,
		Quantity: 1,
		AddedAt:  time.Now().UTC(),
	})
	c.touch()
}

// Remove drops the item for the product id. Removing an absent id is a
// no-op, not an error.
func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.touch()
			return
		}
	}
}

// SetQuantity sets the item's quantity to an absolute value. A value of
// zero or below removes the item; an absent id is a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}

	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity = quantity
			c.touch()
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Items = []Item{}
	c.touch()
}

// TotalItems returns the sum of all quantities, not the number of
// distinct products. Used for the badge count.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Summarize computes the canonical priced/unpriced partition.
func (c *Cart) Summarize() Summary {
	var s Summary
	for _, item := range c.Items {
		if item.Product.HasPrice() {
			s.Subtotal += item.Product.Price * float64(item.Quantity)
		} else {
			s.UnpricedCount += item.Quantity
		}
		s.TotalItems += item.Quantity
	}
	return s
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}
