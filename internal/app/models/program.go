package models

import (
	"healthinfo-service/internal/pkg/dto/requests"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Program struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Duration    int                `json:"duration" bson:"duration"`
	Status      string             `json:"status" bson:"status"`
	Category    string             `json:"category" bson:"category"`
	StartDate   string             `json:"startDate" bson:"startDate"`
	EndDate     string             `json:"endDate" bson:"endDate"`
	CreatedBy   string             `json:"createdBy" bson:"createdBy"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// SetDataForUpdate merges a partial update request into the stored document.
// Empty request fields keep their stored values.
func (p *Program) SetDataForUpdate(request *requests.UpdateProgram) {
	if request.Name != "" {
		p.Name = request.Name
	}
	if request.Description != "" {
		p.Description = request.Description
	}
	if request.Duration != nil {
		p.Duration = *request.Duration
	}
	if request.Status != "" {
		p.Status = request.Status
	}
	if request.Category != "" {
		p.Category = request.Category
	}
	if request.StartDate != "" {
		p.StartDate = request.StartDate
	}
	if request.EndDate != "" {
		p.EndDate = request.EndDate
	}
}

// ConvertToBsonM builds the update document without the immutable _id field.
func (p *Program) ConvertToBsonM() bson.M {
	return bson.M{
		"name":        p.Name,
		"description": p.Description,
		"duration":    p.Duration,
		"status":      p.Status,
		"category":    p.Category,
		"startDate":   p.StartDate,
		"endDate":     p.EndDate,
		"createdBy":   p.CreatedBy,
		"createdAt":   p.CreatedAt,
	}
}
