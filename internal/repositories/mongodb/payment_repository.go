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

type paymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) interfaces.PaymentRepository {
	return &paymentRepository{
		collection: db.Collection(CollectionPayments),
	}
}

// CreateForRide upserts on ride_id with $setOnInsert, so replays of the same
// completion leave the first payment untouched.
func (r *paymentRepository) CreateForRide(ctx context.Context, payment *models.Payment) (bool, error) {
	id := primitive.NewObjectID()
	createdAt := time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"ride_id": payment.RideID},
		bson.M{"$setOnInsert": bson.M{
			"_id":         id,
			"fare_amount": payment.FareAmount,
			"method":      payment.Method,
			"created_at":  createdAt,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		// a concurrent upsert won the unique ride_id index
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, translateError("failed to create payment", err)
	}

	if result.UpsertedCount == 0 {
		return false, nil
	}

	payment.ID = id
	payment.CreatedAt = createdAt
	return true, nil
}

func (r *paymentRepository) GetByRideID(ctx context.Context, rideID primitive.ObjectID) (*models.Payment, error) {
	var payment models.Payment
	if err := r.collection.FindOne(ctx, bson.M{"ride_id": rideID}).Decode(&payment); err != nil {
		return nil, translateError("failed to get payment", err)
	}
	return &payment, nil
}
