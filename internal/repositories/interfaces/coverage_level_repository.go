package interfaces

import (
	"context"

	"goinsure/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CoverageLevelRepository interface {
	Create(ctx context.Context, level *models.CoverageLevel) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.CoverageLevel, error)
	GetByName(ctx context.Context, name string) (*models.CoverageLevel, error)
	GetAll(ctx context.Context) ([]*models.CoverageLevel, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
