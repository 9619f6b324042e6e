package mongodb

import (
	"context"
	"time"

	"ridehail/internal/models"
	"ridehail/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type adminRepository struct {
	collection *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) interfaces.AdminRepository {
	return &adminRepository{
		collection: db.Collection(CollectionAdmins),
	}
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	admin.ID = primitive.NewObjectID()
	admin.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, admin); err != nil {
		return translateError("failed to create admin", err)
	}
	return nil
}

func (r *adminRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"username": username}, options.Count().SetLimit(1))
	if err != nil {
		return false, translateError("failed to check admin uniqueness", err)
	}
	return count > 0, nil
}

func (r *adminRepository) GetByCredentials(ctx context.Context, username, password string) (*models.Admin, error) {
	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"username": username, "password": password}).Decode(&admin)
	if err != nil {
		return nil, translateError("failed to get admin", err)
	}
	return &admin, nil
}
