package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DriverStatus string

const (
	DriverStatusAvailable   DriverStatus = "available"
	DriverStatusUnavailable DriverStatus = "unavailable"
	DriverStatusInRide      DriverStatus = "in_ride"
)

var DriverStatuses = []DriverStatus{
	DriverStatusAvailable,
	DriverStatusUnavailable,
	DriverStatusInRide,
}

func (s DriverStatus) IsValid() bool {
	for _, status := range DriverStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Driver struct {
	ID            primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	Name          string              `json:"name" bson:"name"`
	Email         string              `json:"email" bson:"email"`
	Password      string              `json:"-" bson:"password,omitempty"`
	LicenseNumber string              `json:"license_num" bson:"license_num"`
	VehicleID     *primitive.ObjectID `json:"vehicle_id" bson:"vehicle_id"`
	Status        DriverStatus        `json:"status" bson:"status"`
	CreatedAt     time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at" bson:"updated_at"`
}
