package services

import (
	"context"
	"time"

	"storefront/models"
	"storefront/repositories"

	"go.uber.org/zap"
)

const birthDateLayout = "2006-01-02"

type CustomerService struct {
	customers *repositories.CustomerRepository
	logger    *zap.Logger
}

func NewCustomerService(db repositories.DBTX, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customers: repositories.NewCustomerRepository(db),
		logger:    logger,
	}
}

// Me returns the customer profile owned by the caller.
func (s *CustomerService) Me(ctx context.Context, identity models.Identity) (*models.Customer, error) {
	customer, err := s.customers.FindByUserID(ctx, identity.UserID)
	if repositories.IsNoRows(err) {
		return nil, models.NewNotFound(models.ErrMsgNoCustomer)
	}
	if err != nil {
		return nil, models.NewInternal("failed to load customer", err)
	}
	return customer, nil
}

// UpdateMe creates the caller's customer profile on first use and replaces
// it afterwards. Membership defaults to bronze.
func (s *CustomerService) UpdateMe(ctx context.Context, identity models.Identity, req models.CustomerRequest) (*models.Customer, error) {
	customer := &models.Customer{
		UserID:     identity.UserID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Membership: models.MembershipBronze,
	}

	existing, err := s.customers.FindByUserID(ctx, identity.UserID)
	switch {
	case err == nil:
		customer.Membership = existing.Membership
	case !repositories.IsNoRows(err):
		return nil, models.NewInternal("failed to load customer", err)
	}

	if req.Membership != "" {
		if !req.Membership.Valid() {
			return nil, models.NewValidationErrorf("invalid membership %q", req.Membership)
		}
		customer.Membership = req.Membership
	}

	if req.BirthDate != nil && *req.BirthDate != "" {
		birthDate, err := time.Parse(birthDateLayout, *req.BirthDate)
		if err != nil {
			return nil, models.NewValidationError("birth_date must be formatted as YYYY-MM-DD")
		}
		customer.BirthDate = &birthDate
	}

	if err := s.customers.Upsert(ctx, customer); err != nil {
		return nil, models.NewInternal("failed to save customer", err)
	}

	if existing == nil {
		s.logger.Info("customer created", zap.Int64("customer_id", customer.ID), zap.Int64("user_id", identity.UserID))
	}
	return customer, nil
}
