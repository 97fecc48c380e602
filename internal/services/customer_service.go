package services

import (
	"context"
	"strings"

	"goinsure/internal/models"
	"goinsure/internal/repositories/interfaces"
	"goinsure/internal/utils"
	"goinsure/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CustomerService interface {
	RegisterCustomer(ctx context.Context, customer *models.Customer) error
	UpdateCustomerProfile(ctx context.Context, customer *models.Customer) error
	DeactivateCustomer(ctx context.Context, id primitive.ObjectID) error
	ActivateCustomer(ctx context.Context, id primitive.ObjectID) error

	GetCustomerByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error)
	GetCustomerByIdentityUserID(ctx context.Context, identityUserID string) (*models.Customer, error)
	GetAllCustomers(ctx context.Context) ([]*models.Customer, error)
	ListCustomers(ctx context.Context, params *utils.PaginationParams) ([]*models.Customer, int64, error)
	SearchCustomers(ctx context.Context, term string) ([]*models.Customer, error)
}

type customerService struct {
	customerRepo interfaces.CustomerRepository
	logger       *logger.Logger
}

func NewCustomerService(
	customerRepo interfaces.CustomerRepository,
	logger *logger.Logger,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (s *customerService) RegisterCustomer(ctx context.Context, customer *models.Customer) error {
	if err := s.validateCustomer(customer); err != nil {
		return err
	}
	if utils.IsBlank(customer.IdentityUserID) {
		return utils.NewValidationError("identity user ID is required")
	}

	customer.Email = utils.TrimAndLower(customer.Email)
	customer.IsActive = true

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"customer_id": customer.ID.Hex(),
		"email":       customer.Email,
	}).Info("customer registered")

	return nil
}

// UpdateCustomerProfile changes the customer's contact details. Identity
// linkage and activation state are managed by their own operations.
func (s *customerService) UpdateCustomerProfile(ctx context.Context, customer *models.Customer) error {
	if customer == nil || customer.ID.IsZero() {
		return utils.NewValidationError("a valid customer ID is required")
	}
	if err := s.validateCustomer(customer); err != nil {
		return err
	}

	if _, err := s.customerRepo.GetByID(ctx, customer.ID); err != nil {
		return err
	}

	updates := map[string]interface{}{
		"name":    strings.TrimSpace(customer.Name),
		"email":   utils.TrimAndLower(customer.Email),
		"phone":   strings.TrimSpace(customer.Phone),
		"address": strings.TrimSpace(customer.Address),
	}

	if err := s.customerRepo.Update(ctx, customer.ID, updates); err != nil {
		return err
	}

	s.logger.WithField("customer_id", customer.ID.Hex()).Info("customer profile updated")
	return nil
}

func (s *customerService) DeactivateCustomer(ctx context.Context, id primitive.ObjectID) error {
	return s.setActive(ctx, id, false)
}

func (s *customerService) ActivateCustomer(ctx context.Context, id primitive.ObjectID) error {
	return s.setActive(ctx, id, true)
}

func (s *customerService) setActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	if id.IsZero() {
		return utils.NewValidationError("a valid customer ID is required")
	}

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer.IsActive == active {
		if active {
			return utils.NewInvalidStateError("customer with ID %s is already active", id.Hex())
		}
		return utils.NewInvalidStateError("customer with ID %s is already deactivated", id.Hex())
	}

	if err := s.customerRepo.Update(ctx, id, map[string]interface{}{"is_active": active}); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"customer_id": id.Hex(),
		"is_active":   active,
	}).Info("customer activation state changed")

	return nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	if id.IsZero() {
		return nil, utils.NewValidationError("a valid customer ID is required")
	}
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) GetCustomerByIdentityUserID(ctx context.Context, identityUserID string) (*models.Customer, error) {
	if utils.IsBlank(identityUserID) {
		return nil, utils.NewValidationError("identity user ID is required")
	}
	return s.customerRepo.GetByIdentityUserID(ctx, identityUserID)
}

func (s *customerService) GetAllCustomers(ctx context.Context) ([]*models.Customer, error) {
	return s.customerRepo.GetAll(ctx)
}

func (s *customerService) ListCustomers(ctx context.Context, params *utils.PaginationParams) ([]*models.Customer, int64, error) {
	return s.customerRepo.List(ctx, params)
}

func (s *customerService) SearchCustomers(ctx context.Context, term string) ([]*models.Customer, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, utils.NewValidationError("search term is required")
	}
	return s.customerRepo.Search(ctx, term)
}

func (s *customerService) validateCustomer(customer *models.Customer) error {
	if customer == nil {
		return utils.NewValidationError("customer is required")
	}
	if utils.IsBlank(customer.Name) {
		return utils.NewValidationError("customer name is required")
	}
	if len(strings.TrimSpace(customer.Name)) > utils.MaxNameLength {
		return utils.NewValidationError("customer name cannot exceed %d characters", utils.MaxNameLength)
	}
	email := utils.TrimAndLower(customer.Email)
	if email == "" {
		return utils.NewValidationError("customer email is required")
	}
	if len(email) > utils.MaxEmailLength || !strings.Contains(email, "@") {
		return utils.NewValidationError("customer email is invalid")
	}
	if len(strings.TrimSpace(customer.Phone)) > utils.MaxPhoneLength {
		return utils.NewValidationError("customer phone cannot exceed %d characters", utils.MaxPhoneLength)
	}
	if len(strings.TrimSpace(customer.Address)) > utils.MaxAddressLength {
		return utils.NewValidationError("customer address cannot exceed %d characters", utils.MaxAddressLength)
	}
	return nil
}
