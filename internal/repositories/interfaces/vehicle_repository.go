package interfaces

import (
	"context"

	"ridehail/internal/models"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	ExistsByRegistrationNumber(ctx context.Context, registrationNumber string) (bool, error)
}
