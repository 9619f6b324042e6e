package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Vehicle struct {
	ID                 primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	DriverID           primitive.ObjectID `json:"driver_id" bson:"driver_id"`
	RegistrationNumber string             `json:"registration_num" bson:"registration_num"`
	Model              string             `json:"model" bson:"model"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
}
