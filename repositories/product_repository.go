package repositories

import (
	"context"

	"storefront/models"

	"github.com/jackc/pgx/v5"
)

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) WithTx(tx pgx.Tx) *ProductRepository {
	return &ProductRepository{db: tx}
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (title, slug, description, unit_price, inventory, collection_id, last_update)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING id, last_update
	`
	return r.db.QueryRow(ctx, query,
		product.Title, product.Slug, product.Description, product.UnitPrice, product.Inventory, product.CollectionID,
	).Scan(&product.ID, &product.LastUpdate)
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `SELECT id, title, slug, description, unit_price, inventory, collection_id, last_update
	          FROM products WHERE id = $1`

	var p models.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.UnitPrice, &p.Inventory, &p.CollectionID, &p.LastUpdate,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *ProductRepository) ListPromotions(ctx context.Context, productID int64) ([]models.Promotion, error) {
	rows, err := r.db.Query(ctx, `
		SELECT pr.id, pr.description, pr.discount
		FROM promotions pr
		JOIN product_promotions pp ON pp.promotion_id = pr.id
		WHERE pp.product_id = $1
		ORDER BY pr.id`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	promotions := []models.Promotion{}
	for rows.Next() {
		var p models.Promotion
		if err := rows.Scan(&p.ID, &p.Description, &p.Discount); err != nil {
			return nil, err
		}
		promotions = append(promotions, p)
	}
	return promotions, rows.Err()
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	query := `UPDATE products SET title = $1, slug = $2, description = $3, unit_price = $4,
	          inventory = $5, collection_id = $6, last_update = now() WHERE id = $7
	          RETURNING last_update`
	return r.db.QueryRow(ctx, query,
		product.Title, product.Slug, product.Description, product.UnitPrice,
		product.Inventory, product.CollectionID, product.ID,
	).Scan(&product.LastUpdate)
}

// DeleteProduct removes the product and the tags pointing at it.
func (r *ProductRepository) DeleteProduct(ctx context.Context, id int64) (int64, error) {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM tagged_items WHERE object_kind = $1 AND object_id = $2`, models.KindProduct, id,
	); err != nil {
		return 0, err
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
