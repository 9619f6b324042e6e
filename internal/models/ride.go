package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RideStatus string

const (
	RideStatusRequested RideStatus = "requested"
	RideStatusAccepted  RideStatus = "accepted"
	RideStatusCompleted RideStatus = "completed"
)

// Ride moves requested -> accepted -> completed. DriverID is nil exactly while
// the ride is requested; FareAmount stays 0 until completion.
type Ride struct {
	ID             primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	CustomerID     primitive.ObjectID  `json:"cust_id" bson:"cust_id"`
	DriverID       *primitive.ObjectID `json:"driver_id" bson:"driver_id"`
	FareAmount     float64             `json:"fare_amount" bson:"fare_amount"`
	PickupLocation string              `json:"pickup_loc" bson:"pickup_loc"`
	Destination    string              `json:"destination" bson:"destination"`
	Status         RideStatus          `json:"status" bson:"status"`
	RequestedAt    time.Time           `json:"requested_at" bson:"requested_at"`
	AcceptedAt     *time.Time          `json:"accepted_at,omitempty" bson:"accepted_at,omitempty"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
}
