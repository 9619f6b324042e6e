package mongodb

import (
	"context"

	"ridehail/internal/models"
	"ridehail/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type analyticsRepository struct {
	complaintsCollection *mongo.Collection
}

func NewAnalyticsRepository(db *mongo.Database) interfaces.AnalyticsRepository {
	return &analyticsRepository{
		complaintsCollection: db.Collection(CollectionComplaints),
	}
}

func (r *analyticsRepository) ComplaintsByStatus(ctx context.Context, status *models.ComplaintStatus) ([]*models.ComplaintStatusGroup, error) {
	cursor, err := r.complaintsCollection.Aggregate(ctx, complaintsByStatusPipeline(status))
	if err != nil {
		return nil, translateError("failed to aggregate complaints", err)
	}
	defer cursor.Close(ctx)

	groups := make([]*models.ComplaintStatusGroup, 0)
	for cursor.Next(ctx) {
		var group models.ComplaintStatusGroup
		if err := cursor.Decode(&group); err != nil {
			return nil, translateError("failed to decode complaint group", err)
		}
		groups = append(groups, &group)
	}
	if err := cursor.Err(); err != nil {
		return nil, translateError("failed to iterate complaint groups", err)
	}

	return groups, nil
}

func complaintsByStatusPipeline(status *models.ComplaintStatus) mongo.Pipeline {
	pipeline := mongo.Pipeline{}

	if status != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"status": *status}}})
	}

	return append(pipeline,
		bson.D{{Key: "$project", Value: bson.M{
			"_id":         1,
			"cust_id":     1,
			"description": 1,
			"status":      1,
			"handledAt":   bson.M{"$ifNull": bson.A{"$handledAt", nil}},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":        "$status",
			"count":      bson.M{"$sum": 1},
			"complaints": bson.M{"$push": "$$ROOT"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":        0,
			"status":     "$_id",
			"count":      1,
			"complaints": 1,
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"status": 1}}},
	)
}
