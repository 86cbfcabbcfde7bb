package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IntentTag classifies what a chat message is asking about.
type IntentTag string

const (
	IntentQuery        IntentTag = "query"
	IntentRouteRequest IntentTag = "route_request"
	IntentFareInquiry  IntentTag = "fare_inquiry"
)

// ChatMessage is one exchange with the assistant. A message is created
// with a nil reply and updated exactly once when the reply is attached;
// it is never mutated afterwards.
type ChatMessage struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"user_id" bson:"user_id"`
	Message   string             `json:"message" bson:"message"`
	Reply     *string            `json:"reply" bson:"reply"`
	Intent    IntentTag          `json:"intent" bson:"intent"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// SendMessageRequest is the body of POST /chat.
type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}
