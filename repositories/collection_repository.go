package repositories

import (
	"context"

	"storefront/models"

	"github.com/jackc/pgx/v5"
)

type CollectionRepository struct {
	db DBTX
}

func NewCollectionRepository(db DBTX) *CollectionRepository {
	return &CollectionRepository{db: db}
}

func (r *CollectionRepository) WithTx(tx pgx.Tx) *CollectionRepository {
	return &CollectionRepository{db: tx}
}

func (r *CollectionRepository) Create(ctx context.Context, c *models.Collection) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO collections (title, featured_product_id) VALUES ($1, $2) RETURNING id, created_at`,
		c.Title, c.FeaturedProductID,
	).Scan(&c.ID, &c.CreatedAt)
}

// GetByID also counts the products in the collection.
func (r *CollectionRepository) GetByID(ctx context.Context, id int64) (*models.Collection, error) {
	var c models.Collection
	err := r.db.QueryRow(ctx, `
		SELECT c.id, c.title, c.featured_product_id, c.created_at,
		       (SELECT COUNT(*) FROM products p WHERE p.collection_id = c.id)
		FROM collections c
		WHERE c.id = $1`, id,
	).Scan(&c.ID, &c.Title, &c.FeaturedProductID, &c.CreatedAt, &c.ProductsCount)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CollectionRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM collections WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *CollectionRepository) Update(ctx context.Context, c *models.Collection) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE collections SET title = $2, featured_product_id = $3 WHERE id = $1`,
		c.ID, c.Title, c.FeaturedProductID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *CollectionRepository) CountProducts(ctx context.Context, id int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE collection_id = $1`, id).Scan(&count)
	return count, err
}

func (r *CollectionRepository) Delete(ctx context.Context, id int64) (int64, error) {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM tagged_items WHERE object_kind = $1 AND object_id = $2`, models.KindCollection, id,
	); err != nil {
		return 0, err
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
