package interfaces

import (
	"context"

	"goinsure/internal/models"
	"goinsure/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	// Delete fails with a conflict error while policies still reference the
	// vehicle.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Customer association
	GetByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]*models.Vehicle, error)

	// Vehicle identification
	GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*models.Vehicle, error)

	// Eager-load variants
	GetByIDWithCustomer(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	GetAllWithCustomer(ctx context.Context) ([]*models.Vehicle, error)

	// Listing
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Vehicle, int64, error)
}
