package repositories

import (
	"context"

	"storefront/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CartRepository struct {
	db DBTX
}

func NewCartRepository(db DBTX) *CartRepository {
	return &CartRepository{db: db}
}

// WithTx returns a copy of the repository bound to tx.
func (r *CartRepository) WithTx(tx pgx.Tx) *CartRepository {
	return &CartRepository{db: tx}
}

func (r *CartRepository) Create(ctx context.Context, id uuid.UUID) (*models.Cart, error) {
	cart := &models.Cart{ID: id}
	err := r.db.QueryRow(ctx,
		`INSERT INTO carts (id) VALUES ($1) RETURNING created_at`, id,
	).Scan(&cart.CreatedAt)
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *CartRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Cart, error) {
	cart := &models.Cart{}
	err := r.db.QueryRow(ctx,
		`SELECT id, created_at FROM carts WHERE id = $1`, id,
	).Scan(&cart.ID, &cart.CreatedAt)
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *CartRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM carts WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// Lock takes a row lock on the cart for the rest of the transaction and
// reports whether the cart still exists.
func (r *CartRepository) Lock(ctx context.Context, id uuid.UUID) (bool, error) {
	var locked uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT id FROM carts WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if IsNoRows(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *CartRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *CartRepository) CountItems(ctx context.Context, cartID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cart_items WHERE cart_id = $1`, cartID).Scan(&count)
	return count, err
}

// Foreign keys on cart_items.
const (
	ConstraintCartItemCart    = "fk_cart_items_cart"
	ConstraintCartItemProduct = "fk_cart_items_product"
)

const cartItemsQuery = `
	SELECT ci.id, ci.product_id, p.title, p.unit_price, ci.quantity
	FROM cart_items ci
	JOIN products p ON p.id = ci.product_id
	WHERE ci.cart_id = $1
	ORDER BY ci.id`

// ListItems reads every line of the cart together with its product in one query.
func (r *CartRepository) ListItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	return r.listItems(ctx, cartItemsQuery, cartID)
}

// ListItemsForUpdate is ListItems with row locks on the cart lines, so
// concurrent quantity changes wait for the transaction to finish.
func (r *CartRepository) ListItemsForUpdate(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	return r.listItems(ctx, cartItemsQuery+` FOR UPDATE OF ci`, cartID)
}

func (r *CartRepository) listItems(ctx context.Context, query string, cartID uuid.UUID) ([]models.CartItem, error) {
	rows, err := r.db.Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		item := models.CartItem{CartID: cartID}
		if err := rows.Scan(&item.ID, &item.Product.ID, &item.Product.Title, &item.Product.UnitPrice, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *CartRepository) GetItem(ctx context.Context, cartID uuid.UUID, itemID int64) (*models.CartItem, error) {
	item := &models.CartItem{CartID: cartID}
	err := r.db.QueryRow(ctx, `
		SELECT ci.id, ci.product_id, p.title, p.unit_price, ci.quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1 AND ci.id = $2`, cartID, itemID,
	).Scan(&item.ID, &item.Product.ID, &item.Product.Title, &item.Product.UnitPrice, &item.Quantity)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// FindItemID returns the id of the (cart, product) line, or pgx.ErrNoRows.
func (r *CartRepository) FindItemID(ctx context.Context, cartID uuid.UUID, productID int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`SELECT id FROM cart_items WHERE cart_id = $1 AND product_id = $2`, cartID, productID,
	).Scan(&id)
	return id, err
}

func (r *CartRepository) InsertItem(ctx context.Context, cartID uuid.UUID, productID int64, quantity int) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO cart_items (cart_id, product_id, quantity) VALUES ($1, $2, $3) RETURNING id`,
		cartID, productID, quantity,
	).Scan(&id)
	return id, err
}

// IncrementItem adds quantity to the stored value in a single statement so
// concurrent increments never overwrite each other.
func (r *CartRepository) IncrementItem(ctx context.Context, itemID int64, quantity int) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE cart_items SET quantity = quantity + $2 WHERE id = $1`, itemID, quantity)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *CartRepository) SetItemQuantity(ctx context.Context, cartID uuid.UUID, itemID int64, quantity int) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE cart_items SET quantity = $3 WHERE cart_id = $1 AND id = $2`, cartID, itemID, quantity)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *CartRepository) DeleteItem(ctx context.Context, cartID uuid.UUID, itemID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1 AND id = $2`, cartID, itemID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
