package interfaces

import (
	"context"

	"goinsure/internal/models"
	"goinsure/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CustomerRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error)
	GetByIdentityUserID(ctx context.Context, identityUserID string) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Listing
	GetAll(ctx context.Context) ([]*models.Customer, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Customer, int64, error)
	Search(ctx context.Context, term string) ([]*models.Customer, error)
}
