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

type customerRepository struct {
	collection *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) interfaces.CustomerRepository {
	return &customerRepository{
		collection: db.Collection(CollectionCustomers),
	}
}

func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	customer.ID = primitive.NewObjectID()
	customer.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, customer); err != nil {
		return translateError("failed to create customer", err)
	}
	return nil
}

func (r *customerRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"email": email},
			{"num_phone": phone},
		},
	}

	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, translateError("failed to check customer uniqueness", err)
	}
	return count > 0, nil
}

func (r *customerRepository) GetByCredentials(ctx context.Context, email, password string) (*models.Customer, error) {
	var customer models.Customer
	err := r.collection.FindOne(ctx, bson.M{"email": email, "password": password}).Decode(&customer)
	if err != nil {
		return nil, translateError("failed to get customer", err)
	}
	return &customer, nil
}
