package interfaces

import (
	"context"

	"ridehail/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RideRepository interface {
	Create(ctx context.Context, ride *models.Ride) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error)

	// Accept assigns the driver only while the ride is requested and unassigned.
	// Returns ErrNotFound when nothing matched.
	Accept(ctx context.Context, id, driverID primitive.ObjectID) error

	// Complete sets the fare only while the ride is accepted.
	// Returns ErrNotFound when nothing matched.
	Complete(ctx context.Context, id primitive.ObjectID, fareAmount float64) error
}
