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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type claimRepository struct {
	collection *mongo.Collection
}

func NewClaimRepository(db *mongo.Database) interfaces.ClaimRepository {
	return &claimRepository{
		collection: db.Collection("claims"),
	}
}

// Basic CRUD operations
func (r *claimRepository) Create(ctx context.Context, claim *models.Claim) error {
	claim.ID = primitive.NewObjectID()
	claim.CreatedAt = time.Now()
	claim.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, claim)
	if err != nil {
		return fmt.Errorf("failed to create claim: %w", err)
	}

	return nil
}

// GetByID eager-loads the policy, its vehicle and the vehicle's customer.
func (r *claimRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Claim, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
	}
	pipeline = append(pipeline, policyLookupStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate claim: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return nil, utils.NewNotFoundError("claim with ID %s not found", id.Hex())
	}

	var claim models.Claim
	if err := cursor.Decode(&claim); err != nil {
		return nil, fmt.Errorf("failed to decode claim: %w", err)
	}

	return &claim, nil
}

func (r *claimRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update claim: %w", err)
	}
	if result.MatchedCount == 0 {
		return utils.NewNotFoundError("claim with ID %s not found", id.Hex())
	}

	return nil
}

func (r *claimRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete claim: %w", err)
	}
	if result.DeletedCount == 0 {
		return utils.NewNotFoundError("claim with ID %s not found", id.Hex())
	}

	return nil
}

// Policy / customer association
func (r *claimRepository) GetByPolicyID(ctx context.Context, policyID primitive.ObjectID) ([]*models.Claim, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"policy_id": policyID},
		options.Find().SetSort(bson.D{{Key: "claim_date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find claims by policy ID: %w", err)
	}
	defer cursor.Close(ctx)

	var claims []*models.Claim
	if err := cursor.All(ctx, &claims); err != nil {
		return nil, fmt.Errorf("failed to decode claims: %w", err)
	}

	return claims, nil
}

func (r *claimRepository) GetByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]*models.Claim, error) {
	pipeline := mongo.Pipeline{}
	pipeline = append(pipeline, policyLookupStages()...)
	pipeline = append(pipeline, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"policy.vehicle.customer_id": customerID}}},
		{{Key: "$sort", Value: bson.M{"claim_date": -1}}},
	}...)

	return r.aggregateMany(ctx, pipeline)
}

func (r *claimRepository) GetAll(ctx context.Context) ([]*models.Claim, error) {
	pipeline := mongo.Pipeline{}
	pipeline = append(pipeline, policyLookupStages()...)
	pipeline = append(pipeline, mongo.Pipeline{{{Key: "$sort", Value: bson.M{"claim_date": -1}}}}...)

	return r.aggregateMany(ctx, pipeline)
}

// Referential checks
func (r *claimRepository) CountByPolicyID(ctx context.Context, policyID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"policy_id": policyID})
	if err != nil {
		return 0, fmt.Errorf("failed to count claims by policy ID: %w", err)
	}
	return count, nil
}

func (r *claimRepository) aggregateMany(ctx context.Context, pipeline mongo.Pipeline) ([]*models.Claim, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate claims: %w", err)
	}
	defer cursor.Close(ctx)

	var claims []*models.Claim
	if err := cursor.All(ctx, &claims); err != nil {
		return nil, fmt.Errorf("failed to decode claims: %w", err)
	}

	return claims, nil
}

func policyLookupStages() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "policies",
			"localField":   "policy_id",
			"foreignField": "_id",
			"as":           "policy",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$policy", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "vehicles",
			"localField":   "policy.vehicle_id",
			"foreignField": "_id",
			"as":           "policy.vehicle",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$policy.vehicle", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "customers",
			"localField":   "policy.vehicle.customer_id",
			"foreignField": "_id",
			"as":           "policy.vehicle.customer",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$policy.vehicle.customer", "preserveNullAndEmptyArrays": true}}},
	}
}
