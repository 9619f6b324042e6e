package interfaces

import (
	"context"

	"ridehail/internal/models"
)

type AnalyticsRepository interface {
	// ComplaintsByStatus groups complaints by status, sorted by status ascending.
	// A nil status groups every complaint.
	ComplaintsByStatus(ctx context.Context, status *models.ComplaintStatus) ([]*models.ComplaintStatusGroup, error)
}
