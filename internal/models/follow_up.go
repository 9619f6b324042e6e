package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FollowUpKind string

const (
	FollowUpVehicleBackLink FollowUpKind = "vehicle_backlink"
	FollowUpRidePayment     FollowUpKind = "ride_payment"
)

// FollowUp is the second write of a two-step operation, queued when it could
// not be applied inline. Applying it twice has the same effect as once.
type FollowUp struct {
	Kind       FollowUpKind       `json:"kind"`
	RideID     primitive.ObjectID `json:"ride_id,omitempty"`
	VehicleID  primitive.ObjectID `json:"vehicle_id,omitempty"`
	DriverID   primitive.ObjectID `json:"driver_id,omitempty"`
	FareAmount float64            `json:"fare_amount,omitempty"`
	Attempts   int                `json:"attempts"`
	LastError  string             `json:"last_error,omitempty"`
	EnqueuedAt time.Time          `json:"enqueued_at"`
}

// Key identifies the document the job converges, used for logging and dedup.
func (f *FollowUp) Key() string {
	switch f.Kind {
	case FollowUpVehicleBackLink:
		return string(f.Kind) + ":" + f.VehicleID.Hex()
	case FollowUpRidePayment:
		return string(f.Kind) + ":" + f.RideID.Hex()
	}
	return string(f.Kind)
}
