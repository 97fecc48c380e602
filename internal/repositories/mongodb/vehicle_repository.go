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

type vehicleRepository struct {
	collection *mongo.Collection
	policies   *mongo.Collection
}

func NewVehicleRepository(db *mongo.Database) interfaces.VehicleRepository {
	return &vehicleRepository{
		collection: db.Collection("vehicles"),
		policies:   db.Collection("policies"),
	}
}

// Basic CRUD operations
func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = time.Now()

	// Normalize registration number to uppercase
	vehicle.RegistrationNumber = strings.ToUpper(strings.TrimSpace(vehicle.RegistrationNumber))

	_, err := r.collection.InsertOne(ctx, vehicle)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewConflictError("vehicle with registration number %s already exists", vehicle.RegistrationNumber)
		}
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("vehicle with ID %s not found", id.Hex())
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return &vehicle, nil
}

func (r *vehicleRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	// Normalize registration number if being updated
	if registration, exists := updates["registration_number"]; exists {
		if registrationStr, ok := registration.(string); ok {
			updates["registration_number"] = strings.ToUpper(strings.TrimSpace(registrationStr))
		}
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewConflictError("vehicle with registration number %v already exists", updates["registration_number"])
		}
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	if result.MatchedCount == 0 {
		return utils.NewNotFoundError("vehicle with ID %s not found", id.Hex())
	}

	return nil
}

// Delete removes the vehicle unless policies still reference it.
func (r *vehicleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	count, err := r.policies.CountDocuments(ctx, bson.M{"vehicle_id": id})
	if err != nil {
		return fmt.Errorf("failed to count policies for vehicle: %w", err)
	}
	if count > 0 {
		return utils.NewConflictError("vehicle with ID %s cannot be deleted: %d policies reference it", id.Hex(), count)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if result.DeletedCount == 0 {
		return utils.NewNotFoundError("vehicle with ID %s not found", id.Hex())
	}

	return nil
}

// Customer association
func (r *vehicleRepository) GetByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]*models.Vehicle, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"customer_id": customerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles by customer ID: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []*models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode vehicles: %w", err)
	}

	return vehicles, nil
}

// Vehicle identification
func (r *vehicleRepository) GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*models.Vehicle, error) {
	registrationNumber = strings.ToUpper(strings.TrimSpace(registrationNumber))

	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"registration_number": registrationNumber}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("vehicle with registration number %s not found", registrationNumber)
		}
		return nil, fmt.Errorf("failed to get vehicle by registration number: %w", err)
	}

	return &vehicle, nil
}

// Eager-load variants
func (r *vehicleRepository) GetByIDWithCustomer(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "customers",
			"localField":   "customer_id",
			"foreignField": "_id",
			"as":           "customer",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$customer", "preserveNullAndEmptyArrays": true}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle with customer: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return nil, utils.NewNotFoundError("vehicle with ID %s not found", id.Hex())
	}

	var vehicle models.Vehicle
	if err := cursor.Decode(&vehicle); err != nil {
		return nil, fmt.Errorf("failed to decode vehicle: %w", err)
	}

	return &vehicle, nil
}

func (r *vehicleRepository) GetAllWithCustomer(ctx context.Context) ([]*models.Vehicle, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "customers",
			"localField":   "customer_id",
			"foreignField": "_id",
			"as":           "customer",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$customer", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$sort", Value: bson.M{"created_at": -1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicles with customers: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []*models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode vehicles: %w", err)
	}

	return vehicles, nil
}

// Listing
func (r *vehicleRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Vehicle, int64, error) {
	filter := bson.M{}
	if params.Search != "" {
		filter = bson.M{"$or": []bson.M{
			{"registration_number": bson.M{"$regex": params.Search, "$options": "i"}},
			{"make": bson.M{"$regex": params.Search, "$options": "i"}},
			{"model": bson.M{"$regex": params.Search, "$options": "i"}},
		}}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []*models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, 0, fmt.Errorf("failed to decode vehicles: %w", err)
	}

	return vehicles, total, nil
}
