package interfaces

import (
	"context"

	"ridehail/internal/models"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)
	GetByCredentials(ctx context.Context, email, password string) (*models.Customer, error)
}
