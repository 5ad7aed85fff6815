package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Enrollment struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ClientID    string             `json:"clientId" bson:"clientId"`
	ProgramID   string             `json:"programId" bson:"programId"`
	Status      string             `json:"status" bson:"status"`
	EnrolledAt  time.Time          `json:"enrolledAt" bson:"enrolledAt"`
	CompletedAt *time.Time         `json:"completedAt" bson:"completedAt,omitempty"`
	Notes       string             `json:"notes" bson:"notes"`
	EnrolledBy  string             `json:"enrolledBy" bson:"enrolledBy"`
}

// ConvertToBsonM builds the update document without the immutable _id field.
func (e *Enrollment) ConvertToBsonM() bson.M {
	return bson.M{
		"clientId":    e.ClientID,
		"programId":   e.ProgramID,
		"status":      e.Status,
		"enrolledAt":  e.EnrolledAt,
		"completedAt": e.CompletedAt,
		"notes":       e.Notes,
		"enrolledBy":  e.EnrolledBy,
	}
}
