package mongodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"goinsure/internal/models"
	"goinsure/internal/repositories/interfaces"
	"goinsure/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type coverageLevelRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewCoverageLevelRepository(db *mongo.Database, cache CacheService) interfaces.CoverageLevelRepository {
	return &coverageLevelRepository{
		collection: db.Collection("coverage_levels"),
		cache:      cache,
	}
}

func (r *coverageLevelRepository) Create(ctx context.Context, level *models.CoverageLevel) error {
	level.ID = primitive.NewObjectID()
	level.CreatedAt = time.Now()
	level.UpdatedAt = time.Now()
	level.Name = strings.TrimSpace(level.Name)

	_, err := r.collection.InsertOne(ctx, level)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewConflictError("coverage level with name %s already exists", level.Name)
		}
		return fmt.Errorf("failed to create coverage level: %w", err)
	}

	return nil
}

func (r *coverageLevelRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.CoverageLevel, error) {
	// Coverage levels are read-mostly configuration, try cache first
	if r.cache != nil {
		var cached models.CoverageLevel
		if err := r.cache.Get(ctx, r.cacheKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	var level models.CoverageLevel
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&level)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("coverage level with ID %s not found", id.Hex())
		}
		return nil, fmt.Errorf("failed to get coverage level: %w", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, r.cacheKey(id), &level, utils.CoverageLevelCacheTTL)
	}

	return &level, nil
}

func (r *coverageLevelRepository) GetByName(ctx context.Context, name string) (*models.CoverageLevel, error) {
	var level models.CoverageLevel
	err := r.collection.FindOne(ctx, bson.M{"name": strings.TrimSpace(name)}).Decode(&level)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("coverage level with name %s not found", name)
		}
		return nil, fmt.Errorf("failed to get coverage level by name: %w", err)
	}

	return &level, nil
}

func (r *coverageLevelRepository) GetAll(ctx context.Context) ([]*models.CoverageLevel, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find coverage levels: %w", err)
	}
	defer cursor.Close(ctx)

	var levels []*models.CoverageLevel
	if err := cursor.All(ctx, &levels); err != nil {
		return nil, fmt.Errorf("failed to decode coverage levels: %w", err)
	}

	return levels, nil
}

func (r *coverageLevelRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewConflictError("coverage level with name %v already exists", updates["name"])
		}
		return fmt.Errorf("failed to update coverage level: %w", err)
	}
	if result.MatchedCount == 0 {
		return utils.NewNotFoundError("coverage level with ID %s not found", id.Hex())
	}

	r.invalidate(ctx, id)

	return nil
}

func (r *coverageLevelRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete coverage level: %w", err)
	}
	if result.DeletedCount == 0 {
		return utils.NewNotFoundError("coverage level with ID %s not found", id.Hex())
	}

	r.invalidate(ctx, id)

	return nil
}

func (r *coverageLevelRepository) cacheKey(id primitive.ObjectID) string {
	return fmt.Sprintf("coverage_level_%s", id.Hex())
}

func (r *coverageLevelRepository) invalidate(ctx context.Context, id primitive.ObjectID) {
	if r.cache != nil {
		r.cache.Delete(ctx, r.cacheKey(id))
	}
}
