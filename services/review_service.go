package services

import (
	"context"

	"storefront/models"
	"storefront/repositories"
)

type ReviewService struct {
	reviews  *repositories.ReviewRepository
	products *repositories.ProductRepository
}

func NewReviewService(db repositories.DBTX) *ReviewService {
	return &ReviewService{
		reviews:  repositories.NewReviewRepository(db),
		products: repositories.NewProductRepository(db),
	}
}

func (s *ReviewService) ListReviews(ctx context.Context, productID int64) ([]models.Review, error) {
	if err := s.requireProduct(ctx, productID); err != nil {
		return nil, err
	}
	reviews, err := s.reviews.ListByProduct(ctx, productID)
	if err != nil {
		return nil, models.NewInternal("failed to list reviews", err)
	}
	return reviews, nil
}

func (s *ReviewService) CreateReview(ctx context.Context, productID int64, req models.ReviewRequest) (*models.Review, error) {
	if err := s.requireProduct(ctx, productID); err != nil {
		return nil, err
	}
	review := &models.Review{ProductID: productID, Name: req.Name, Description: req.Description}
	if err := s.reviews.Create(ctx, review); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return nil, models.NewNotFound(models.ErrMsgProductNotFound)
		}
		return nil, models.NewInternal("failed to create review", err)
	}
	return review, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, productID, reviewID int64) error {
	n, err := s.reviews.Delete(ctx, productID, reviewID)
	if err != nil {
		return models.NewInternal("failed to delete review", err)
	}
	if n == 0 {
		return models.NewNotFound("review not found")
	}
	return nil
}

func (s *ReviewService) requireProduct(ctx context.Context, productID int64) error {
	exists, err := s.products.Exists(ctx, productID)
	if err != nil {
		return models.NewInternal("failed to check product", err)
	}
	if !exists {
		return models.NewNotFound(models.ErrMsgProductNotFound)
	}
	return nil
}
