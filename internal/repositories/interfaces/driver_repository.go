package interfaces

import (
	"context"

	"ridehail/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DriverRepository interface {
	Create(ctx context.Context, driver *models.Driver) error
	ExistsByEmailOrLicense(ctx context.Context, email, licenseNumber string) (bool, error)
	GetByCredentials(ctx context.Context, email, password string) (*models.Driver, error)

	// SetVehicle writes the vehicle back-link. Returns ErrNotFound when the driver does not exist.
	SetVehicle(ctx context.Context, driverID, vehicleID primitive.ObjectID) error
	UpdateStatus(ctx context.Context, driverID primitive.ObjectID, status models.DriverStatus) error

	// List returns all drivers newest first, without passwords.
	List(ctx context.Context) ([]*models.Driver, error)
}
