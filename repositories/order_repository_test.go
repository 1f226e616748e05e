package repositories

import (
	"context"
	"regexp"
	"testing"

	"storefront/models"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertItemsSingleStatement(t *testing.T) {
	mock := newMock(t)
	repo := NewOrderRepository(mock)

	mugPrice := decimal.RequireFromString("12.50")
	teaPrice := decimal.RequireFromString("3.00")
	items := []models.OrderItem{
		{ProductID: 10, Quantity: 2, UnitPrice: mugPrice},
		{ProductID: 11, Quantity: 1, UnitPrice: teaPrice},
	}

	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO order_items (order_id, product_id, quantity, unit_price) VALUES ($1, $2, $3, $4), ($5, $6, $7, $8) RETURNING id, product_id`,
	)).
		WithArgs(int64(5), int64(10), 2, mugPrice, int64(5), int64(11), 1, teaPrice).
		WillReturnRows(pgxmock.NewRows([]string{"id", "product_id"}).
			AddRow(int64(101), int64(10)).
			AddRow(int64(102), int64(11)))

	require.NoError(t, repo.InsertItems(context.Background(), 5, items))

	assert.Equal(t, int64(101), items[0].ID)
	assert.Equal(t, int64(102), items[1].ID)
	assert.Equal(t, int64(5), items[1].OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertItemsShortInsert(t *testing.T) {
	mock := newMock(t)
	repo := NewOrderRepository(mock)

	price := decimal.RequireFromString("4.00")
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(int64(5), int64(10), 1, price).
		WillReturnRows(pgxmock.NewRows([]string{"id", "product_id"}))

	err := repo.InsertItems(context.Background(), 5, []models.OrderItem{{ProductID: 10, Quantity: 1, UnitPrice: price}})
	assert.ErrorContains(t, err, "inserted 0 order items, expected 1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertItemsEmpty(t *testing.T) {
	mock := newMock(t)
	require.NoError(t, NewOrderRepository(mock).InsertItems(context.Background(), 5, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOrdersFiltersByCustomer(t *testing.T) {
	mock := newMock(t)
	repo := NewOrderRepository(mock)
	customerID := int64(3)

	mock.ExpectQuery("FROM orders WHERE customer_id = ").
		WithArgs(customerID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "customer_id", "placed_at", "payment_status"}))

	orders, err := repo.List(context.Background(), &customerID)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}
