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

type driverRepository struct {
	collection *mongo.Collection
}

func NewDriverRepository(db *mongo.Database) interfaces.DriverRepository {
	return &driverRepository{
		collection: db.Collection(CollectionDrivers),
	}
}

// Basic CRUD operations
func (r *driverRepository) Create(ctx context.Context, driver *models.Driver) error {
	driver.ID = primitive.NewObjectID()
	driver.CreatedAt = time.Now()
	driver.UpdatedAt = driver.CreatedAt

	if _, err := r.collection.InsertOne(ctx, driver); err != nil {
		return translateError("failed to create driver", err)
	}
	return nil
}

func (r *driverRepository) ExistsByEmailOrLicense(ctx context.Context, email, licenseNumber string) (bool, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"email": email},
			{"license_num": licenseNumber},
		},
	}

	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, translateError("failed to check driver uniqueness", err)
	}
	return count > 0, nil
}

func (r *driverRepository) GetByCredentials(ctx context.Context, email, password string) (*models.Driver, error) {
	var driver models.Driver
	err := r.collection.FindOne(ctx, bson.M{"email": email, "password": password}).Decode(&driver)
	if err != nil {
		return nil, translateError("failed to get driver", err)
	}
	return &driver, nil
}

// Back-link and status operations
func (r *driverRepository) SetVehicle(ctx context.Context, driverID, vehicleID primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": driverID},
		bson.M{"$set": bson.M{
			"vehicle_id": vehicleID,
			"updated_at": time.Now(),
		}},
	)
	if err != nil {
		return translateError("failed to link vehicle to driver", err)
	}
	return matchedOrNotFound("failed to link vehicle to driver", result)
}

func (r *driverRepository) UpdateStatus(ctx context.Context, driverID primitive.ObjectID, status models.DriverStatus) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": driverID},
		bson.M{"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		}},
	)
	if err != nil {
		return translateError("failed to update driver status", err)
	}
	return matchedOrNotFound("failed to update driver status", result)
}

func (r *driverRepository) List(ctx context.Context) ([]*models.Driver, error) {
	opts := options.Find().
		SetProjection(bson.M{"password": 0}).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, translateError("failed to list drivers", err)
	}
	defer cursor.Close(ctx)

	drivers := make([]*models.Driver, 0)
	for cursor.Next(ctx) {
		var driver models.Driver
		if err := cursor.Decode(&driver); err != nil {
			return nil, translateError("failed to decode driver", err)
		}
		drivers = append(drivers, &driver)
	}
	if err := cursor.Err(); err != nil {
		return nil, translateError("failed to iterate drivers", err)
	}

	return drivers, nil
}
