package models

import (
	"time"

	"github.com/shopspring/decimal"
)

var taxRate = decimal.RequireFromString("1.1")

type Collection struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	FeaturedProductID *int64    `json:"featured_product_id"`
	ProductsCount     int       `json:"products_count"`
	CreatedAt         time.Time `json:"-"`
}

type Promotion struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Discount    float64 `json:"discount"`
}

type Product struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	PriceWithTax decimal.Decimal `json:"price_with_tax"`
	Inventory    int             `json:"inventory"`
	CollectionID int64           `json:"collection_id"`
	Promotions   []Promotion     `json:"promotions"`
	LastUpdate   time.Time       `json:"last_update"`
}

// WithTax fills the derived PriceWithTax field.
func (p *Product) WithTax() *Product {
	p.PriceWithTax = p.UnitPrice.Mul(taxRate).Round(2)
	return p
}
