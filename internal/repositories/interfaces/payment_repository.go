package interfaces

import (
	"context"

	"ridehail/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentRepository interface {
	// CreateForRide inserts the payment unless one already exists for the ride.
	// created reports whether this call wrote the document.
	CreateForRide(ctx context.Context, payment *models.Payment) (created bool, err error)
	GetByRideID(ctx context.Context, rideID primitive.ObjectID) (*models.Payment, error)
}
