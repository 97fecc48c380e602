package mongodb

import (
	"context"
	"fmt"
	"time"

	"goinsure/internal/models"
	"goinsure/internal/repositories/interfaces"
	"goinsure/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type policyRepository struct {
	collection *mongo.Collection
	claims     *mongo.Collection
}

func NewPolicyRepository(db *mongo.Database) interfaces.PolicyRepository {
	return &policyRepository{
		collection: db.Collection("policies"),
		claims:     db.Collection("claims"),
	}
}

// Basic CRUD operations
func (r *policyRepository) Create(ctx context.Context, policy *models.Policy) error {
	policy.ID = primitive.NewObjectID()
	policy.CreatedAt = time.Now()
	policy.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, policy)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewConflictError("policy with number %s already exists", policy.PolicyNumber)
		}
		return fmt.Errorf("failed to create policy: %w", err)
	}

	return nil
}

// GetByID eager-loads the vehicle and coverage level.
func (r *policyRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Policy, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
	}
	pipeline = append(pipeline, vehicleLookupStages()...)
	pipeline = append(pipeline, coverageLevelLookupStages()...)

	return r.aggregateOne(ctx, pipeline, id)
}

func (r *policyRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update policy: %w", err)
	}
	if result.MatchedCount == 0 {
		return utils.NewNotFoundError("policy with ID %s not found", id.Hex())
	}

	return nil
}

// Delete removes the policy unless claims still reference it
// (restrict-on-delete).
func (r *policyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	count, err := r.claims.CountDocuments(ctx, bson.M{"policy_id": id})
	if err != nil {
		return fmt.Errorf("failed to count claims for policy: %w", err)
	}
	if count > 0 {
		return utils.NewConflictError("policy with ID %s cannot be deleted: %d claims reference it", id.Hex(), count)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete policy: %w", err)
	}
	if result.DeletedCount == 0 {
		return utils.NewNotFoundError("policy with ID %s not found", id.Hex())
	}

	return nil
}

// Eager-load variants
func (r *policyRepository) GetWithVehicleAndCustomer(ctx context.Context, id primitive.ObjectID) (*models.Policy, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
	}
	pipeline = append(pipeline, vehicleLookupStages()...)
	pipeline = append(pipeline, customerLookupStages()...)
	pipeline = append(pipeline, coverageLevelLookupStages()...)

	return r.aggregateOne(ctx, pipeline, id)
}

func (r *policyRepository) GetByVehicleID(ctx context.Context, vehicleID primitive.ObjectID) ([]*models.Policy, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"vehicle_id": vehicleID}}},
	}
	pipeline = append(pipeline, vehicleLookupStages()...)
	pipeline = append(pipeline, coverageLevelLookupStages()...)
	pipeline = append(pipeline, mongo.Pipeline{{{Key: "$sort", Value: bson.M{"created_at": -1}}}}...)

	return r.aggregateMany(ctx, pipeline)
}

func (r *policyRepository) GetByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]*models.Policy, error) {
	pipeline := mongo.Pipeline{}
	pipeline = append(pipeline, vehicleLookupStages()...)
	pipeline = append(pipeline, mongo.Pipeline{{{Key: "$match", Value: bson.M{"vehicle.customer_id": customerID}}}}...)
	pipeline = append(pipeline, customerLookupStages()...)
	pipeline = append(pipeline, coverageLevelLookupStages()...)
	pipeline = append(pipeline, mongo.Pipeline{{{Key: "$sort", Value: bson.M{"created_at": -1}}}}...)

	return r.aggregateMany(ctx, pipeline)
}

func (r *policyRepository) GetByCustomerIDWithClaims(ctx context.Context, customerID primitive.ObjectID) ([]*models.Policy, error) {
	pipeline := mongo.Pipeline{}
	pipeline = append(pipeline, vehicleLookupStages()...)
	pipeline = append(pipeline, mongo.Pipeline{{{Key: "$match", Value: bson.M{"vehicle.customer_id": customerID}}}}...)
	pipeline = append(pipeline, customerLookupStages()...)
	pipeline = append(pipeline, coverageLevelLookupStages()...)
	pipeline = append(pipeline, mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "claims",
			"localField":   "_id",
			"foreignField": "policy_id",
			"as":           "claims",
		}}},
		{{Key: "$sort", Value: bson.M{"created_at": -1}}},
	}...)

	return r.aggregateMany(ctx, pipeline)
}

func (r *policyRepository) GetAll(ctx context.Context) ([]*models.Policy, error) {
	pipeline := mongo.Pipeline{}
	pipeline = append(pipeline, vehicleLookupStages()...)
	pipeline = append(pipeline, customerLookupStages()...)
	pipeline = append(pipeline, coverageLevelLookupStages()...)
	pipeline = append(pipeline, mongo.Pipeline{{{Key: "$sort", Value: bson.M{"created_at": -1}}}}...)

	return r.aggregateMany(ctx, pipeline)
}

// Status
func (r *policyRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.PolicyStatus) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return fmt.Errorf("failed to update policy status: %w", err)
	}
	if result.MatchedCount == 0 {
		return utils.NewNotFoundError("policy with ID %s not found", id.Hex())
	}

	return nil
}

// Referential checks
func (r *policyRepository) CountByVehicleID(ctx context.Context, vehicleID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"vehicle_id": vehicleID})
	if err != nil {
		return 0, fmt.Errorf("failed to count policies by vehicle ID: %w", err)
	}
	return count, nil
}

func (r *policyRepository) aggregateOne(ctx context.Context, pipeline mongo.Pipeline, id primitive.ObjectID) (*models.Policy, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate policy: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return nil, utils.NewNotFoundError("policy with ID %s not found", id.Hex())
	}

	var policy models.Policy
	if err := cursor.Decode(&policy); err != nil {
		return nil, fmt.Errorf("failed to decode policy: %w", err)
	}

	return &policy, nil
}

func (r *policyRepository) aggregateMany(ctx context.Context, pipeline mongo.Pipeline) ([]*models.Policy, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate policies: %w", err)
	}
	defer cursor.Close(ctx)

	var policies []*models.Policy
	if err := cursor.All(ctx, &policies); err != nil {
		return nil, fmt.Errorf("failed to decode policies: %w", err)
	}

	return policies, nil
}

func vehicleLookupStages() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "vehicles",
			"localField":   "vehicle_id",
			"foreignField": "_id",
			"as":           "vehicle",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$vehicle", "preserveNullAndEmptyArrays": true}}},
	}
}

func customerLookupStages() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "customers",
			"localField":   "vehicle.customer_id",
			"foreignField": "_id",
			"as":           "vehicle.customer",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$vehicle.customer", "preserveNullAndEmptyArrays": true}}},
	}
}

func coverageLevelLookupStages() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "coverage_levels",
			"localField":   "coverage_level_id",
			"foreignField": "_id",
			"as":           "coverage_level",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$coverage_level", "preserveNullAndEmptyArrays": true}}},
	}
}
