package services

import (
	"context"
	"fmt"

	"storefront/libs"
	"storefront/models"
	"storefront/repositories"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var minUnitPrice = decimal.NewFromInt(1)

func productCacheKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

type ProductService struct {
	products    *repositories.ProductRepository
	collections *repositories.CollectionRepository
	orders      *repositories.OrderRepository
	cache       *libs.Cache
	logger      *zap.Logger
}

func NewProductService(db repositories.DBTX, cache *libs.Cache, logger *zap.Logger) *ProductService {
	return &ProductService{
		products:    repositories.NewProductRepository(db),
		collections: repositories.NewCollectionRepository(db),
		orders:      repositories.NewOrderRepository(db),
		cache:       cache,
		logger:      logger,
	}
}

// GetProduct serves the product detail from cache when possible.
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	key := productCacheKey(id)

	var cached models.Product
	found, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		s.logger.Warn("product cache read failed", zap.String("key", key), zap.Error(err))
	}
	if found {
		return &cached, nil
	}

	product, err := s.products.GetProductByID(ctx, id)
	if repositories.IsNoRows(err) {
		return nil, models.NewNotFound(models.ErrMsgProductNotFound)
	}
	if err != nil {
		return nil, models.NewInternal("failed to load product", err)
	}

	product.Promotions, err = s.products.ListPromotions(ctx, id)
	if err != nil {
		return nil, models.NewInternal("failed to load promotions", err)
	}
	product.WithTax()

	if err := s.cache.SetJSON(ctx, key, product); err != nil {
		s.logger.Warn("product cache write failed", zap.String("key", key), zap.Error(err))
	}
	return product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	if req.UnitPrice.LessThan(minUnitPrice) {
		return nil, models.NewValidationError("unit_price must be at least 1")
	}
	if err := s.requireCollection(ctx, req.CollectionID); err != nil {
		return nil, err
	}

	product := &models.Product{
		Title:        req.Title,
		Slug:         req.Slug,
		Description:  req.Description,
		UnitPrice:    req.UnitPrice,
		Inventory:    req.Inventory,
		CollectionID: req.CollectionID,
		Promotions:   []models.Promotion{},
	}
	if err := s.products.CreateProduct(ctx, product); err != nil {
		return nil, s.writeError("failed to create product", err)
	}
	return product.WithTax(), nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.products.GetProductByID(ctx, id)
	if repositories.IsNoRows(err) {
		return nil, models.NewNotFound(models.ErrMsgProductNotFound)
	}
	if err != nil {
		return nil, models.NewInternal("failed to load product", err)
	}

	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Slug != nil {
		product.Slug = *req.Slug
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.LessThan(minUnitPrice) {
			return nil, models.NewValidationError("unit_price must be at least 1")
		}
		product.UnitPrice = *req.UnitPrice
	}
	if req.Inventory != nil {
		product.Inventory = *req.Inventory
	}
	if req.CollectionID != nil && *req.CollectionID != product.CollectionID {
		if err := s.requireCollection(ctx, *req.CollectionID); err != nil {
			return nil, err
		}
		product.CollectionID = *req.CollectionID
	}

	if err := s.products.UpdateProduct(ctx, product); err != nil {
		return nil, s.writeError("failed to update product", err)
	}
	s.invalidate(ctx, id)

	product.Promotions, err = s.products.ListPromotions(ctx, id)
	if err != nil {
		return nil, models.NewInternal("failed to load promotions", err)
	}
	return product.WithTax(), nil
}

// DeleteProduct refuses to remove a product that any order item references.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	count, err := s.orders.CountItemsForProduct(ctx, id)
	if err != nil {
		return models.NewInternal("failed to check order items", err)
	}
	if count > 0 {
		return models.NewNotAllowed(models.ErrMsgProductInOrder)
	}

	n, err := s.products.DeleteProduct(ctx, id)
	if repositories.IsForeignKeyViolation(err) {
		// An order item was written after the check above.
		return models.NewNotAllowed(models.ErrMsgProductInOrder)
	}
	if err != nil {
		return models.NewInternal("failed to delete product", err)
	}
	if n == 0 {
		return models.NewNotFound(models.ErrMsgProductNotFound)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ProductService) GetCollection(ctx context.Context, id int64) (*models.Collection, error) {
	collection, err := s.collections.GetByID(ctx, id)
	if repositories.IsNoRows(err) {
		return nil, models.NewNotFound(models.ErrMsgCollectionMiss)
	}
	if err != nil {
		return nil, models.NewInternal("failed to load collection", err)
	}
	return collection, nil
}

func (s *ProductService) CreateCollection(ctx context.Context, req models.CollectionRequest) (*models.Collection, error) {
	collection := &models.Collection{Title: req.Title, FeaturedProductID: req.FeaturedProductID}
	if err := s.collections.Create(ctx, collection); err != nil {
		return nil, s.writeError("failed to create collection", err)
	}
	return collection, nil
}

func (s *ProductService) UpdateCollection(ctx context.Context, id int64, req models.CollectionRequest) (*models.Collection, error) {
	collection := &models.Collection{ID: id, Title: req.Title, FeaturedProductID: req.FeaturedProductID}
	n, err := s.collections.Update(ctx, collection)
	if err != nil {
		return nil, s.writeError("failed to update collection", err)
	}
	if n == 0 {
		return nil, models.NewNotFound(models.ErrMsgCollectionMiss)
	}
	return s.GetCollection(ctx, id)
}

// DeleteCollection refuses to remove a collection that still has products.
func (s *ProductService) DeleteCollection(ctx context.Context, id int64) error {
	count, err := s.collections.CountProducts(ctx, id)
	if err != nil {
		return models.NewInternal("failed to count products", err)
	}
	if count > 0 {
		return models.NewNotAllowed(models.ErrMsgCollectionInUse)
	}

	n, err := s.collections.Delete(ctx, id)
	if repositories.IsForeignKeyViolation(err) {
		return models.NewNotAllowed(models.ErrMsgCollectionInUse)
	}
	if err != nil {
		return models.NewInternal("failed to delete collection", err)
	}
	if n == 0 {
		return models.NewNotFound(models.ErrMsgCollectionMiss)
	}
	return nil
}

func (s *ProductService) requireCollection(ctx context.Context, id int64) error {
	exists, err := s.collections.Exists(ctx, id)
	if err != nil {
		return models.NewInternal("failed to check collection", err)
	}
	if !exists {
		return models.NewValidationError(models.ErrMsgNoCollection)
	}
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, productCacheKey(id)); err != nil {
		s.logger.Warn("product cache invalidation failed", zap.Int64("product_id", id), zap.Error(err))
	}
}

// writeError classifies constraint failures raised by catalog writes.
func (s *ProductService) writeError(message string, err error) error {
	switch {
	case repositories.IsForeignKeyViolation(err):
		return models.NewValidationErrorf("%s: referenced record does not exist", message)
	case repositories.IsUniqueViolation(err):
		return models.NewValidationErrorf("%s: value already in use", message)
	case repositories.IsOutOfRange(err):
		return models.NewValidationErrorf("%s: value out of range", message)
	default:
		return models.NewInternal(message, err)
	}
}
