package controllers

import (
	"context"

	"storefront/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=services.go -destination=mock_services_test.go -package=controllers

type CartService interface {
	CreateCart(ctx context.Context) (*models.Cart, error)
	GetCart(ctx context.Context, id uuid.UUID) (*models.Cart, error)
	DeleteCart(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error)
	GetItem(ctx context.Context, cartID uuid.UUID, itemID int64) (*models.CartItem, error)
	AddItem(ctx context.Context, cartID uuid.UUID, req models.AddCartItemRequest) (*models.CartItem, error)
	UpdateItem(ctx context.Context, cartID uuid.UUID, itemID int64, req models.UpdateCartItemRequest) (*models.CartItem, error)
	DeleteItem(ctx context.Context, cartID uuid.UUID, itemID int64) error
}

type OrderService interface {
	Checkout(ctx context.Context, identity models.Identity, cartID uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, identity models.Identity) ([]models.Order, error)
	GetOrder(ctx context.Context, identity models.Identity, id int64) (*models.Order, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status models.PaymentStatus) (*models.Order, error)
}

type ProductService interface {
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	GetCollection(ctx context.Context, id int64) (*models.Collection, error)
	CreateCollection(ctx context.Context, req models.CollectionRequest) (*models.Collection, error)
	UpdateCollection(ctx context.Context, id int64, req models.CollectionRequest) (*models.Collection, error)
	DeleteCollection(ctx context.Context, id int64) error
}

type CustomerService interface {
	Me(ctx context.Context, identity models.Identity) (*models.Customer, error)
	UpdateMe(ctx context.Context, identity models.Identity, req models.CustomerRequest) (*models.Customer, error)
}

type TagService interface {
	CreateTag(ctx context.Context, req models.TagRequest) (*models.Tag, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	TagsFor(ctx context.Context, kind models.ObjectKind, objectID int64) ([]models.TaggedItem, error)
	Attach(ctx context.Context, kind models.ObjectKind, objectID int64, req models.AttachTagRequest) (*models.TaggedItem, error)
	Detach(ctx context.Context, kind models.ObjectKind, objectID, tagID int64) error
}

type ReviewService interface {
	ListReviews(ctx context.Context, productID int64) ([]models.Review, error)
	CreateReview(ctx context.Context, productID int64, req models.ReviewRequest) (*models.Review, error)
	DeleteReview(ctx context.Context, productID, reviewID int64) error
}
