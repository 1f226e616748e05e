package repositories

import (
	"context"

	"storefront/models"

	"github.com/jackc/pgx/v5"
)

type CustomerRepository struct {
	db DBTX
}

func NewCustomerRepository(db DBTX) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) WithTx(tx pgx.Tx) *CustomerRepository {
	return &CustomerRepository{db: tx}
}

const customerColumns = `id, user_id, first_name, last_name, phone, birth_date, membership`

func (r *CustomerRepository) FindByUserID(ctx context.Context, userID int64) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE user_id = $1`

	customer := &models.Customer{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&customer.ID,
		&customer.UserID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Phone,
		&customer.BirthDate,
		&customer.Membership,
	)
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// Upsert creates the customer for customer.UserID or overwrites its profile.
func (r *CustomerRepository) Upsert(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (user_id, first_name, last_name, phone, birth_date, membership)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			phone = EXCLUDED.phone,
			birth_date = EXCLUDED.birth_date,
			membership = EXCLUDED.membership
		RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		customer.UserID,
		customer.FirstName,
		customer.LastName,
		customer.Phone,
		customer.BirthDate,
		customer.Membership,
	).Scan(&customer.ID)
}
