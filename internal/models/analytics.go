package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ComplaintSummary is the projection of a complaint carried inside a status group.
type ComplaintSummary struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	CustomerID  primitive.ObjectID `json:"cust_id" bson:"cust_id"`
	Description string             `json:"description" bson:"description"`
	Status      ComplaintStatus    `json:"status" bson:"status"`
	HandledAt   *time.Time         `json:"handledAt" bson:"handledAt"`
}

type ComplaintStatusGroup struct {
	Status     ComplaintStatus    `json:"status" bson:"status"`
	Count      int64              `json:"count" bson:"count"`
	Complaints []ComplaintSummary `json:"complaints" bson:"complaints"`
}

type ComplaintAnalytics struct {
	Count  int64                   `json:"count"`
	Groups []*ComplaintStatusGroup `json:"data"`
}
