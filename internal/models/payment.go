package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
)

// Payment is written once per completed ride; RideID is unique across payments.
type Payment struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	RideID     primitive.ObjectID `json:"ride_id" bson:"ride_id"`
	FareAmount float64            `json:"fare_amount" bson:"fare_amount"`
	Method     PaymentMethod      `json:"method" bson:"method"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
}
