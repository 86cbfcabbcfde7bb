package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type JourneyStatus string

const (
	JourneyStatusPlanned   JourneyStatus = "planned"
	JourneyStatusActive    JourneyStatus = "active"
	JourneyStatusCompleted JourneyStatus = "completed"
	JourneyStatusCancelled JourneyStatus = "cancelled"
)

// Journey is a saved trip plan: the rider's chosen route snapshot plus
// the search endpoints it was generated for.
type Journey struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID       string             `json:"user_id" bson:"user_id"`
	FromLocation string             `json:"from_location" bson:"from_location"`
	ToLocation   string             `json:"to_location" bson:"to_location"`
	Route        *RouteCandidate    `json:"route,omitempty" bson:"route,omitempty"`
	TotalFare    float64            `json:"total_fare" bson:"total_fare"`
	TotalTime    int                `json:"total_duration" bson:"total_duration"` // minutes
	Status       JourneyStatus      `json:"status" bson:"status"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

// SaveJourneyRequest is the body of POST /journeys.
type SaveJourneyRequest struct {
	From  string          `json:"from" binding:"required"`
	To    string          `json:"to" binding:"required"`
	Route *RouteCandidate `json:"route"`
}
