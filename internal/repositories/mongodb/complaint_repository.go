package mongodb

import (
	"context"
	"time"

	"ridehail/internal/models"
	"ridehail/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type complaintRepository struct {
	collection *mongo.Collection
}

func NewComplaintRepository(db *mongo.Database) interfaces.ComplaintRepository {
	return &complaintRepository{
		collection: db.Collection(CollectionComplaints),
	}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	complaint.ID = primitive.NewObjectID()
	complaint.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, complaint); err != nil {
		return translateError("failed to create complaint", err)
	}
	return nil
}

func (r *complaintRepository) Resolve(ctx context.Context, id primitive.ObjectID, resolution *models.ComplaintResolution) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":    resolution.Status,
			"notes":     resolution.Notes,
			"admin_id":  resolution.AdminID,
			"handledAt": resolution.HandledAt,
		}},
	)
	if err != nil {
		return translateError("failed to resolve complaint", err)
	}
	return matchedOrNotFound("failed to resolve complaint", result)
}
