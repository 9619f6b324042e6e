package mongodb

import (
	"context"
	"time"

	"ridehail/internal/models"
	"ridehail/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type rideRepository struct {
	collection *mongo.Collection
}

func NewRideRepository(db *mongo.Database) interfaces.RideRepository {
	return &rideRepository{
		collection: db.Collection(CollectionRides),
	}
}

// Basic CRUD operations
func (r *rideRepository) Create(ctx context.Context, ride *models.Ride) error {
	ride.ID = primitive.NewObjectID()
	ride.RequestedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, ride); err != nil {
		return translateError("failed to create ride", err)
	}
	return nil
}

func (r *rideRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error) {
	var ride models.Ride
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ride); err != nil {
		return nil, translateError("failed to get ride", err)
	}
	return &ride, nil
}

// Status operations. The filter carries the expected current state so that of
// two concurrent transitions on the same ride only one can match.
func (r *rideRepository) Accept(ctx context.Context, id, driverID primitive.ObjectID) error {
	filter := bson.M{
		"_id":       id,
		"status":    models.RideStatusRequested,
		"driver_id": nil,
	}
	update := bson.M{"$set": bson.M{
		"driver_id":   driverID,
		"status":      models.RideStatusAccepted,
		"accepted_at": time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return translateError("failed to accept ride", err)
	}
	return matchedOrNotFound("failed to accept ride", result)
}

func (r *rideRepository) Complete(ctx context.Context, id primitive.ObjectID, fareAmount float64) error {
	filter := bson.M{
		"_id":    id,
		"status": models.RideStatusAccepted,
	}
	update := bson.M{"$set": bson.M{
		"status":       models.RideStatusCompleted,
		"fare_amount":  fareAmount,
		"completed_at": time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return translateError("failed to complete ride", err)
	}
	return matchedOrNotFound("failed to complete ride", result)
}
