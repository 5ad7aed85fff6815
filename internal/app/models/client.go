package models

import (
	"healthinfo-service/internal/pkg/dto/requests"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Client struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName   string             `json:"firstName" bson:"firstName"`
	LastName    string             `json:"lastName" bson:"lastName"`
	Email       string             `json:"email" bson:"email"`
	Phone       string             `json:"phone" bson:"phone"`
	DateOfBirth string             `json:"dateOfBirth" bson:"dateOfBirth"`
	Address     string             `json:"address" bson:"address"`
	Notes       string             `json:"notes" bson:"notes"`
	Status      string             `json:"status" bson:"status"`
	CreatedBy   string             `json:"createdBy" bson:"createdBy"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// SetDataForUpdate merges a partial update request into the stored document.
// Empty request fields keep their stored values.
func (c *Client) SetDataForUpdate(request *requests.UpdateClient) {
	if request.FirstName != "" {
		c.FirstName = request.FirstName
	}
	if request.LastName != "" {
		c.LastName = request.LastName
	}
	if request.Email != "" {
		c.Email = request.Email
	}
	if request.Phone != "" {
		c.Phone = request.Phone
	}
	if request.DateOfBirth != "" {
		c.DateOfBirth = request.DateOfBirth
	}
	if request.Address != "" {
		c.Address = request.Address
	}
	if request.Notes != "" {
		c.Notes = request.Notes
	}
	if request.Status != "" {
		c.Status = request.Status
	}
}

// ConvertToBsonM builds the update document without the immutable _id field.
func (c *Client) ConvertToBsonM() bson.M {
	return bson.M{
		"firstName":   c.FirstName,
		"lastName":    c.LastName,
		"email":       c.Email,
		"phone":       c.Phone,
		"dateOfBirth": c.DateOfBirth,
		"address":     c.Address,
		"notes":       c.Notes,
		"status":      c.Status,
		"createdBy":   c.CreatedBy,
		"createdAt":   c.CreatedAt,
	}
}
