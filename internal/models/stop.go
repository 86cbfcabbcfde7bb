package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stop is a transit stop or station.
type Stop struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required"`
	Type      TransportMode      `json:"type" bson:"type" validate:"required,transport_mode"`
	Address   string             `json:"address,omitempty" bson:"address,omitempty"`
	Latitude  float64            `json:"latitude" bson:"latitude"`
	Longitude float64            `json:"longitude" bson:"longitude"`
	IsActive  bool               `json:"is_active" bson:"is_active"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
