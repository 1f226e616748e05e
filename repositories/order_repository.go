package repositories

import (
	"context"
	"fmt"
	"strings"

	"storefront/models"

	"github.com/jackc/pgx/v5"
)

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) WithTx(tx pgx.Tx) *OrderRepository {
	return &OrderRepository{db: tx}
}

func (r *OrderRepository) Create(ctx context.Context, customerID int64) (*models.Order, error) {
	order := &models.Order{CustomerID: customerID}
	err := r.db.QueryRow(ctx,
		`INSERT INTO orders (customer_id, payment_status) VALUES ($1, $2) RETURNING id, placed_at, payment_status`,
		customerID, models.PaymentPending,
	).Scan(&order.ID, &order.PlacedAt, &order.PaymentStatus)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// InsertItems writes all order lines in a single multi-row INSERT and fills
// in their ids. Lines must have distinct product ids.
func (r *OrderRepository) InsertItems(ctx context.Context, orderID int64, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO order_items (order_id, product_id, quantity, unit_price) VALUES `)
	args := make([]any, 0, len(items)*4)
	index := make(map[int64]int, len(items))
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := i * 4
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4)
		args = append(args, orderID, item.ProductID, item.Quantity, item.UnitPrice)
		index[item.ProductID] = i
	}
	sb.WriteString(` RETURNING id, product_id`)

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	inserted := 0
	for rows.Next() {
		var id, productID int64
		if err := rows.Scan(&id, &productID); err != nil {
			return err
		}
		if i, ok := index[productID]; ok {
			items[i].ID = id
			items[i].OrderID = orderID
		}
		inserted++
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if inserted != len(items) {
		return fmt.Errorf("inserted %d order items, expected %d", inserted, len(items))
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	order := &models.Order{}
	err := r.db.QueryRow(ctx,
		`SELECT id, customer_id, placed_at, payment_status FROM orders WHERE id = $1`, id,
	).Scan(&order.ID, &order.CustomerID, &order.PlacedAt, &order.PaymentStatus)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetForUpdate reads the order and locks its row for the transaction.
func (r *OrderRepository) GetForUpdate(ctx context.Context, id int64) (*models.Order, error) {
	order := &models.Order{}
	err := r.db.QueryRow(ctx,
		`SELECT id, customer_id, placed_at, payment_status FROM orders WHERE id = $1 FOR UPDATE`, id,
	).Scan(&order.ID, &order.CustomerID, &order.PlacedAt, &order.PaymentStatus)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// List returns orders newest first; a nil customerID lists every customer's orders.
func (r *OrderRepository) List(ctx context.Context, customerID *int64) ([]models.Order, error) {
	query := `SELECT id, customer_id, placed_at, payment_status FROM orders`
	args := []any{}
	if customerID != nil {
		query += ` WHERE customer_id = $1`
		args = append(args, *customerID)
	}
	query += ` ORDER BY placed_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.PlacedAt, &o.PaymentStatus); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// ListItems returns the lines of the given orders keyed by order id.
func (r *OrderRepository) ListItems(ctx context.Context, orderIDs []int64) (map[int64][]models.OrderItem, error) {
	byOrder := make(map[int64][]models.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return byOrder, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, p.title, oi.quantity, oi.unit_price
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.order_id, oi.id`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Title, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}
	return byOrder, rows.Err()
}

func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, id int64, status models.PaymentStatus) error {
	_, err := r.db.Exec(ctx, `UPDATE orders SET payment_status = $2 WHERE id = $1`, id, status)
	return err
}

func (r *OrderRepository) CountItemsForProduct(ctx context.Context, productID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM order_items WHERE product_id = $1`, productID).Scan(&count)
	return count, err
}
