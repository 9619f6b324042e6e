package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "pending"
	ComplaintStatusInProgress ComplaintStatus = "in_progress"
	ComplaintStatusResolved   ComplaintStatus = "resolved"
	ComplaintStatusRejected   ComplaintStatus = "rejected"
)

// ComplaintStatuses is every status a complaint may carry.
var ComplaintStatuses = []ComplaintStatus{
	ComplaintStatusPending,
	ComplaintStatusInProgress,
	ComplaintStatusResolved,
	ComplaintStatusRejected,
}

// ComplaintResolutionStatuses is the subset an admin may set when handling a complaint.
var ComplaintResolutionStatuses = []ComplaintStatus{
	ComplaintStatusResolved,
	ComplaintStatusInProgress,
	ComplaintStatusRejected,
}

func ComplaintStatusIn(status ComplaintStatus, allowed []ComplaintStatus) bool {
	for _, s := range allowed {
		if s == status {
			return true
		}
	}
	return false
}

func JoinComplaintStatuses(statuses []ComplaintStatus) string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

type Complaint struct {
	ID          primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	CustomerID  primitive.ObjectID  `json:"cust_id" bson:"cust_id"`
	RideID      primitive.ObjectID  `json:"ride_id" bson:"ride_id"`
	Description string              `json:"description" bson:"description"`
	Status      ComplaintStatus     `json:"status" bson:"status"`
	Notes       *string             `json:"notes,omitempty" bson:"notes,omitempty"`
	AdminID     *primitive.ObjectID `json:"admin_id,omitempty" bson:"admin_id,omitempty"`
	HandledAt   *time.Time          `json:"handledAt,omitempty" bson:"handledAt,omitempty"`
	CreatedAt   time.Time           `json:"created_at" bson:"created_at"`
}

// ComplaintResolution is the set of fields an admin writes together.
type ComplaintResolution struct {
	Status    ComplaintStatus
	Notes     *string
	AdminID   primitive.ObjectID
	HandledAt time.Time
}
