package services

import (
	"context"
	"errors"

	"storefront/libs"
	"storefront/models"
	"storefront/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// OrderNotifier is told about every committed order.
type OrderNotifier interface {
	OrderPlaced(ctx context.Context, identity models.Identity, order *models.Order) error
}

type OrderService struct {
	db        repositories.TxStarter
	carts     *repositories.CartRepository
	orders    *repositories.OrderRepository
	customers *repositories.CustomerRepository
	notifier  OrderNotifier
	metrics   *libs.Metrics
	logger    *zap.Logger
}

func NewOrderService(db repositories.TxStarter, notifier OrderNotifier, metrics *libs.Metrics, logger *zap.Logger) *OrderService {
	return &OrderService{
		db:        db,
		carts:     repositories.NewCartRepository(db),
		orders:    repositories.NewOrderRepository(db),
		customers: repositories.NewCustomerRepository(db),
		notifier:  notifier,
		metrics:   metrics,
		logger:    logger,
	}
}

// Checkout converts the cart into an order owned by the identity's customer
// and deletes the cart, all in one transaction.
func (s *OrderService) Checkout(ctx context.Context, identity models.Identity, cartID uuid.UUID) (*models.Order, error) {
	order, err := s.checkout(ctx, identity, cartID)
	if err != nil {
		s.metrics.ObserveCheckout(models.KindOf(err).String())
		return nil, err
	}
	s.metrics.ObserveCheckout("placed")

	s.logger.Info("order placed",
		zap.Int64("order_id", order.ID),
		zap.Int64("customer_id", order.CustomerID),
		zap.Int("items", len(order.Items)),
		zap.String("total", order.TotalPrice.StringFixed(2)))

	if s.notifier != nil {
		if err := s.notifier.OrderPlaced(ctx, identity, order); err != nil {
			s.logger.Warn("order confirmation not sent", zap.Int64("order_id", order.ID), zap.Error(err))
		}
	}
	return order, nil
}

func (s *OrderService) checkout(ctx context.Context, identity models.Identity, cartID uuid.UUID) (*models.Order, error) {
	exists, err := s.carts.Exists(ctx, cartID)
	if err != nil {
		return nil, models.NewInternal("failed to check cart", err)
	}
	if !exists {
		return nil, models.NewValidationError(models.ErrMsgNoCart)
	}

	count, err := s.carts.CountItems(ctx, cartID)
	if err != nil {
		return nil, models.NewInternal("failed to count cart items", err)
	}
	if count == 0 {
		return nil, models.NewValidationError(models.ErrMsgCartEmpty)
	}

	var order *models.Order
	err = repositories.WithTx(ctx, s.db, func(tx pgx.Tx) error {
		carts := s.carts.WithTx(tx)
		orders := s.orders.WithTx(tx)

		locked, err := carts.Lock(ctx, cartID)
		if err != nil {
			return err
		}
		if !locked {
			return models.NewConflict(models.ErrMsgCheckedOut, nil)
		}

		customer, err := s.customers.WithTx(tx).FindByUserID(ctx, identity.UserID)
		if repositories.IsNoRows(err) {
			return models.NewNotFound(models.ErrMsgNoCustomer)
		}
		if err != nil {
			return err
		}

		items, err := carts.ListItemsForUpdate(ctx, cartID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return models.NewValidationError(models.ErrMsgCartEmpty)
		}

		created, err := orders.Create(ctx, customer.ID)
		if err != nil {
			return err
		}

		lines := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			lines = append(lines, models.OrderItem{
				OrderID:   created.ID,
				ProductID: item.Product.ID,
				Title:     item.Product.Title,
				Quantity:  item.Quantity,
				UnitPrice: item.Product.UnitPrice,
			})
		}
		if err := orders.InsertItems(ctx, created.ID, lines); err != nil {
			return err
		}

		if _, err := carts.Delete(ctx, cartID); err != nil {
			return err
		}

		created.Items = lines
		order = created.Totalled()
		return nil
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, models.NewInternal("checkout failed", err)
	}
	return order, nil
}

// ListOrders returns every order for staff and the caller's own orders otherwise.
func (s *OrderService) ListOrders(ctx context.Context, identity models.Identity) ([]models.Order, error) {
	var customerID *int64
	if !identity.IsStaff {
		customer, err := s.customers.FindByUserID(ctx, identity.UserID)
		if repositories.IsNoRows(err) {
			return []models.Order{}, nil
		}
		if err != nil {
			return nil, models.NewInternal("failed to resolve customer", err)
		}
		customerID = &customer.ID
	}

	orders, err := s.orders.List(ctx, customerID)
	if err != nil {
		return nil, models.NewInternal("failed to list orders", err)
	}

	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	items, err := s.orders.ListItems(ctx, ids)
	if err != nil {
		return nil, models.NewInternal("failed to load order items", err)
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
		orders[i].Totalled()
	}
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, identity models.Identity, id int64) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if repositories.IsNoRows(err) {
		return nil, models.NewNotFound(models.ErrMsgOrderNotFound)
	}
	if err != nil {
		return nil, models.NewInternal("failed to load order", err)
	}

	if !identity.IsStaff {
		customer, err := s.customers.FindByUserID(ctx, identity.UserID)
		if repositories.IsNoRows(err) || (err == nil && customer.ID != order.CustomerID) {
			return nil, models.NewNotFound(models.ErrMsgOrderNotFound)
		}
		if err != nil {
			return nil, models.NewInternal("failed to resolve customer", err)
		}
	}

	return s.withItems(ctx, s.orders, order)
}

// UpdatePaymentStatus moves the order along the allowed payment transitions.
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, id int64, status models.PaymentStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, models.NewValidationErrorf("invalid payment status %q", status)
	}

	var order *models.Order
	err := repositories.WithTx(ctx, s.db, func(tx pgx.Tx) error {
		orders := s.orders.WithTx(tx)

		current, err := orders.GetForUpdate(ctx, id)
		if repositories.IsNoRows(err) {
			return models.NewNotFound(models.ErrMsgOrderNotFound)
		}
		if err != nil {
			return err
		}

		if current.PaymentStatus != status {
			if !current.PaymentStatus.CanTransitionTo(status) {
				return models.NewValidationErrorf("payment status cannot change from %s to %s", current.PaymentStatus, status)
			}
			if err := orders.UpdatePaymentStatus(ctx, id, status); err != nil {
				return err
			}
			current.PaymentStatus = status
		}

		order, err = s.withItems(ctx, orders, current)
		return err
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, models.NewInternal("failed to update order", err)
	}
	return order, nil
}

func (s *OrderService) withItems(ctx context.Context, orders *repositories.OrderRepository, order *models.Order) (*models.Order, error) {
	items, err := orders.ListItems(ctx, []int64{order.ID})
	if err != nil {
		return nil, models.NewInternal("failed to load order items", err)
	}
	order.Items = items[order.ID]
	return order.Totalled(), nil
}
