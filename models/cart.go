package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SimpleProduct is the slice of a product a cart line needs for pricing.
type SimpleProduct struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type Cart struct {
	ID         uuid.UUID       `json:"id"`
	Items      []CartItem      `json:"items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

type CartItem struct {
	ID         int64           `json:"id"`
	CartID     uuid.UUID       `json:"-"`
	Product    SimpleProduct   `json:"product"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// LineTotal is quantity times the product's current unit price.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Product.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Priced recomputes every line total and the cart total from the current
// product prices carried by the items.
func (c *Cart) Priced() *Cart {
	total := decimal.Zero
	for i := range c.Items {
		c.Items[i].TotalPrice = c.Items[i].LineTotal()
		total = total.Add(c.Items[i].TotalPrice)
	}
	if c.Items == nil {
		c.Items = []CartItem{}
	}
	c.TotalPrice = total
	return c
}
