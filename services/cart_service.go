package services

import (
	"context"

	"storefront/models"
	"storefront/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartService struct {
	carts    *repositories.CartRepository
	products *repositories.ProductRepository
	logger   *zap.Logger
	newID    func() uuid.UUID
}

func NewCartService(db repositories.DBTX, logger *zap.Logger) *CartService {
	return &CartService{
		carts:    repositories.NewCartRepository(db),
		products: repositories.NewProductRepository(db),
		logger:   logger,
		newID:    uuid.New,
	}
}

// CreateCart stores an empty cart under a fresh random UUID.
func (s *CartService) CreateCart(ctx context.Context) (*models.Cart, error) {
	cart, err := s.carts.Create(ctx, s.newID())
	if err != nil {
		return nil, models.NewInternal("failed to create cart", err)
	}
	return cart.Priced(), nil
}

// GetCart returns the cart with every line priced from the current catalog.
func (s *CartService) GetCart(ctx context.Context, id uuid.UUID) (*models.Cart, error) {
	cart, err := s.carts.GetByID(ctx, id)
	if repositories.IsNoRows(err) {
		return nil, models.NewNotFound(models.ErrMsgCartNotFound)
	}
	if err != nil {
		return nil, models.NewInternal("failed to load cart", err)
	}

	items, err := s.carts.ListItems(ctx, id)
	if err != nil {
		return nil, models.NewInternal("failed to load cart items", err)
	}
	cart.Items = items
	return cart.Priced(), nil
}

func (s *CartService) DeleteCart(ctx context.Context, id uuid.UUID) error {
	n, err := s.carts.Delete(ctx, id)
	if err != nil {
		return models.NewInternal("failed to delete cart", err)
	}
	if n == 0 {
		return models.NewNotFound(models.ErrMsgCartNotFound)
	}
	return nil
}

func (s *CartService) ListItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	if err := s.requireCart(ctx, cartID); err != nil {
		return nil, err
	}
	items, err := s.carts.ListItems(ctx, cartID)
	if err != nil {
		return nil, models.NewInternal("failed to load cart items", err)
	}
	for i := range items {
		items[i].TotalPrice = items[i].LineTotal()
	}
	return items, nil
}

func (s *CartService) GetItem(ctx context.Context, cartID uuid.UUID, itemID int64) (*models.CartItem, error) {
	item, err := s.carts.GetItem(ctx, cartID, itemID)
	if repositories.IsNoRows(err) {
		return nil, models.NewNotFound(models.ErrMsgCartItemMissing)
	}
	if err != nil {
		return nil, models.NewInternal("failed to load cart item", err)
	}
	item.TotalPrice = item.LineTotal()
	return item, nil
}

// AddItem adds quantity to the (cart, product) line, creating the line when
// it does not exist yet. An insert that loses the uniqueness race is retried
// once as an increment.
func (s *CartService) AddItem(ctx context.Context, cartID uuid.UUID, req models.AddCartItemRequest) (*models.CartItem, error) {
	if req.Quantity < 1 {
		return nil, models.NewValidationError(models.ErrMsgQuantity)
	}
	if err := s.requireCart(ctx, cartID); err != nil {
		return nil, err
	}

	exists, err := s.products.Exists(ctx, req.ProductID)
	if err != nil {
		return nil, models.NewInternal("failed to check product", err)
	}
	if !exists {
		return nil, models.NewValidationError(models.ErrMsgNoProduct)
	}

	itemID, err := s.upsertItem(ctx, cartID, req.ProductID, req.Quantity)
	if repositories.IsUniqueViolation(err) {
		s.logger.Info("cart item insert lost uniqueness race, retrying",
			zap.String("cart_id", cartID.String()), zap.Int64("product_id", req.ProductID))
		itemID, err = s.upsertItem(ctx, cartID, req.ProductID, req.Quantity)
		if repositories.IsUniqueViolation(err) {
			return nil, models.NewConflict(models.ErrMsgUpsertConflict, err)
		}
	}
	if repositories.IsForeignKeyViolation(err) {
		if repositories.ViolatesConstraint(err, repositories.ConstraintCartItemProduct) {
			return nil, models.NewValidationError(models.ErrMsgNoProduct)
		}
		return nil, models.NewNotFound(models.ErrMsgCartNotFound)
	}
	if repositories.IsOutOfRange(err) {
		return nil, models.NewValidationError(models.ErrMsgQuantityRange)
	}
	if err != nil {
		return nil, models.NewInternal("failed to add cart item", err)
	}

	return s.GetItem(ctx, cartID, itemID)
}

func (s *CartService) upsertItem(ctx context.Context, cartID uuid.UUID, productID int64, quantity int) (int64, error) {
	itemID, err := s.carts.FindItemID(ctx, cartID, productID)
	if err == nil {
		n, err := s.carts.IncrementItem(ctx, itemID, quantity)
		if err != nil {
			return 0, err
		}
		if n == 1 {
			return itemID, nil
		}
		// The line was removed between the read and the update.
	} else if !repositories.IsNoRows(err) {
		return 0, err
	}
	return s.carts.InsertItem(ctx, cartID, productID, quantity)
}

func (s *CartService) UpdateItem(ctx context.Context, cartID uuid.UUID, itemID int64, req models.UpdateCartItemRequest) (*models.CartItem, error) {
	if req.Quantity < 1 {
		return nil, models.NewValidationError(models.ErrMsgQuantity)
	}
	n, err := s.carts.SetItemQuantity(ctx, cartID, itemID, req.Quantity)
	if repositories.IsOutOfRange(err) {
		return nil, models.NewValidationError(models.ErrMsgQuantityRange)
	}
	if err != nil {
		return nil, models.NewInternal("failed to update cart item", err)
	}
	if n == 0 {
		return nil, models.NewNotFound(models.ErrMsgCartItemMissing)
	}
	return s.GetItem(ctx, cartID, itemID)
}

func (s *CartService) DeleteItem(ctx context.Context, cartID uuid.UUID, itemID int64) error {
	n, err := s.carts.DeleteItem(ctx, cartID, itemID)
	if err != nil {
		return models.NewInternal("failed to delete cart item", err)
	}
	if n == 0 {
		return models.NewNotFound(models.ErrMsgCartItemMissing)
	}
	return nil
}

func (s *CartService) requireCart(ctx context.Context, cartID uuid.UUID) error {
	exists, err := s.carts.Exists(ctx, cartID)
	if err != nil {
		return models.NewInternal("failed to check cart", err)
	}
	if !exists {
		return models.NewNotFound(models.ErrMsgCartNotFound)
	}
	return nil
}
