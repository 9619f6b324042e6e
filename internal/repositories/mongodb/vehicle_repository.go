package mongodb

import (
	"context"
	"time"

	"ridehail/internal/models"
	"ridehail/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type vehicleRepository struct {
	collection *mongo.Collection
}

func NewVehicleRepository(db *mongo.Database) interfaces.VehicleRepository {
	return &vehicleRepository{
		collection: db.Collection(CollectionVehicles),
	}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, vehicle); err != nil {
		return translateError("failed to create vehicle", err)
	}
	return nil
}

func (r *vehicleRepository) ExistsByRegistrationNumber(ctx context.Context, registrationNumber string) (bool, error) {
	count, err := r.collection.CountDocuments(
		ctx,
		bson.M{"registration_num": registrationNumber},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, translateError("failed to check vehicle uniqueness", err)
	}
	return count > 0, nil
}
