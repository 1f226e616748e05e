package models

import "github.com/shopspring/decimal"

type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required,min=1"`
	Quantity  int   `json:"quantity" binding:"required,min=1,max=32767"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=32767"`
}

type CheckoutRequest struct {
	CartID string `json:"cart_id" binding:"required"`
}

type UpdateOrderRequest struct {
	PaymentStatus PaymentStatus `json:"payment_status" binding:"required"`
}

type CreateProductRequest struct {
	Title        string          `json:"title" binding:"required,max=255"`
	Slug         string          `json:"slug" binding:"required,max=255"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Inventory    int             `json:"inventory" binding:"min=0"`
	CollectionID int64           `json:"collection_id" binding:"required,min=1"`
}

// UpdateProductRequest leaves nil fields untouched.
type UpdateProductRequest struct {
	Title        *string          `json:"title" binding:"omitempty,max=255"`
	Slug         *string          `json:"slug" binding:"omitempty,max=255"`
	Description  *string          `json:"description"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	Inventory    *int             `json:"inventory" binding:"omitempty,min=0"`
	CollectionID *int64           `json:"collection_id" binding:"omitempty,min=1"`
}

type CollectionRequest struct {
	Title             string `json:"title" binding:"required,max=255"`
	FeaturedProductID *int64 `json:"featured_product_id"`
}

type TagRequest struct {
	Label string `json:"label" binding:"required,max=255"`
}

type AttachTagRequest struct {
	TagID int64 `json:"tag_id" binding:"required,min=1"`
}

type ReviewRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
}

type CustomerRequest struct {
	FirstName  string     `json:"first_name" binding:"max=255"`
	LastName   string     `json:"last_name" binding:"max=255"`
	Phone      string     `json:"phone" binding:"max=255"`
	BirthDate  *string    `json:"birth_date"`
	Membership Membership `json:"membership" binding:"omitempty,oneof=B S G"`
}
