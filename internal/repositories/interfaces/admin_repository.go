package interfaces

import (
	"context"

	"ridehail/internal/models"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	GetByCredentials(ctx context.Context, username, password string) (*models.Admin, error)
}
