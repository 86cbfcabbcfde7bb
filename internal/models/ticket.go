package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TicketClass is the fare product a ticket was sold under.
type TicketClass string

const (
	ClassSingle  TicketClass = "single"
	ClassDayPass TicketClass = "day_pass"
	ClassMonthly TicketClass = "monthly"
)

func (c TicketClass) Valid() bool {
	switch c {
	case ClassSingle, ClassDayPass, ClassMonthly:
		return true
	}
	return false
}

// Ticket is a digital ticket owned by a single rider. The redemption code
// is generated at purchase and never reused; fare and code are immutable
// after creation.
type Ticket struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID         string             `json:"user_id" bson:"user_id"`
	Class          TicketClass        `json:"type" bson:"type"`
	TransportMode  TransportMode      `json:"transport_type" bson:"transport_type"`
	Fare           float64            `json:"fare" bson:"fare"`
	ValidFrom      time.Time          `json:"valid_from" bson:"valid_from"`
	ValidUntil     time.Time          `json:"valid_until" bson:"valid_until"`
	RedemptionCode string             `json:"redemption_code" bson:"redemption_code"`
	IsUsed         bool               `json:"is_used" bson:"is_used"`
	UsedAt         *time.Time         `json:"used_at,omitempty" bson:"used_at,omitempty"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}

// Active reports whether the ticket is still redeemable: never used and
// inside its validity window. This is always derived, never stored.
func (t *Ticket) Active(now time.Time) bool {
	return !t.IsUsed && !t.ValidUntil.Before(now)
}

// PurchaseTicketRequest is the body of POST /tickets.
type PurchaseTicketRequest struct {
	Type          TicketClass   `json:"type" binding:"required" validate:"required,ticket_class"`
	TransportType TransportMode `json:"transportType" binding:"required" validate:"required,ticket_mode"`
	Fare          float64       `json:"fare" validate:"gte=0"`
}
