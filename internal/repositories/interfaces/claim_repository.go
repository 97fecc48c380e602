package interfaces

import (
	"context"

	"goinsure/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClaimRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, claim *models.Claim) error
	// GetByID eager-loads the claim's policy, the policy's vehicle and the
	// vehicle's customer.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Claim, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Policy / customer association
	GetByPolicyID(ctx context.Context, policyID primitive.ObjectID) ([]*models.Claim, error)
	GetByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]*models.Claim, error)
	GetAll(ctx context.Context) ([]*models.Claim, error)

	// Referential checks
	CountByPolicyID(ctx context.Context, policyID primitive.ObjectID) (int64, error)
}
