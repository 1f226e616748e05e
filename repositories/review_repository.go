package repositories

import (
	"context"

	"storefront/models"
)

type ReviewRepository struct {
	db DBTX
}

func NewReviewRepository(db DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productID int64) ([]models.Review, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, name, description, date FROM reviews WHERE product_id = $1 ORDER BY date DESC, id DESC`,
		productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.Name, &rv.Description, &rv.Date); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO reviews (product_id, name, description) VALUES ($1, $2, $3) RETURNING id, date`,
		review.ProductID, review.Name, review.Description,
	).Scan(&review.ID, &review.Date)
}

func (r *ReviewRepository) Delete(ctx context.Context, productID, reviewID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE product_id = $1 AND id = $2`, productID, reviewID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
