package interfaces

import (
	"context"

	"ridehail/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error

	// Resolve writes status, notes, admin and handled-at in one update.
	// Returns ErrNotFound when the complaint does not exist.
	Resolve(ctx context.Context, id primitive.ObjectID, resolution *models.ComplaintResolution) error
}
