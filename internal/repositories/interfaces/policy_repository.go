package interfaces

import (
	"context"

	"goinsure/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PolicyRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, policy *models.Policy) error
	// GetByID eager-loads the associated vehicle and coverage level.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Policy, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	// Delete fails with a conflict error while claims still reference the
	// policy (restrict-on-delete).
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Eager-load variants
	GetWithVehicleAndCustomer(ctx context.Context, id primitive.ObjectID) (*models.Policy, error)
	GetByVehicleID(ctx context.Context, vehicleID primitive.ObjectID) ([]*models.Policy, error)
	GetByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]*models.Policy, error)
	GetByCustomerIDWithClaims(ctx context.Context, customerID primitive.ObjectID) ([]*models.Policy, error)
	GetAll(ctx context.Context) ([]*models.Policy, error)

	// Status
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.PolicyStatus) error

	// Referential checks
	CountByVehicleID(ctx context.Context, vehicleID primitive.ObjectID) (int64, error)
}
