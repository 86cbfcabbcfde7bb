package models

// Preference is the rider's stated optimization goal for a route search.
type Preference string

const (
	PreferenceFastest  Preference = "fastest"
	PreferenceCheapest Preference = "cheapest"
	PreferenceSafest   Preference = "safest"
)

func (p Preference) Valid() bool {
	switch p {
	case PreferenceFastest, PreferenceCheapest, PreferenceSafest:
		return true
	}
	return false
}

// RouteCategory labels a candidate within a single search response.
type RouteCategory string

const (
	CategoryFastest     RouteCategory = "fastest"
	CategoryCheapest    RouteCategory = "cheapest"
	CategoryAlternative RouteCategory = "alternative"
)

// Leg is one uninterrupted segment of a journey on a single line.
type Leg struct {
	Mode         TransportMode `json:"mode" bson:"mode"`
	Line         string        `json:"line" bson:"line"`
	From         string        `json:"from" bson:"from"`
	To           string        `json:"to" bson:"to"`
	Duration     int           `json:"duration" bson:"duration"` // minutes
	Fare         float64       `json:"fare" bson:"fare"`
	DisplayColor string        `json:"color" bson:"color"`
}

// RouteCandidate is one full proposed journey composed of ordered legs.
type RouteCandidate struct {
	ID            string        `json:"id" bson:"id"`
	Category      RouteCategory `json:"category" bson:"category"`
	Duration      int           `json:"duration" bson:"duration"` // minutes, sum of legs
	Fare          float64       `json:"fare" bson:"fare"`         // sum of legs
	Transfers     int           `json:"transfers" bson:"transfers"`
	Legs          []Leg         `json:"legs" bson:"legs"`
	IsRecommended bool          `json:"is_recommended" bson:"is_recommended"`
}

// RouteSearchRequest is the body of POST /routes/search.
type RouteSearchRequest struct {
	From       string     `json:"from" binding:"required" validate:"required"`
	To         string     `json:"to" binding:"required" validate:"required"`
	Preference Preference `json:"preference" validate:"omitempty,route_preference"`
}
