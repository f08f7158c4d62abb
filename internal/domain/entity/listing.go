package entity

import "time"

// ListingKind identifies which discovery tab a listing belongs to.
type ListingKind string

const (
	KindVenue      ListingKind = "venue"
	KindEvent      ListingKind = "event"
	KindPark       ListingKind = "park"
	KindPlayground ListingKind = "playground"
	KindWorship    ListingKind = "worship"
)

// Kinds lists every listing kind in tab order.
func Kinds() []ListingKind {
	return []ListingKind{KindVenue, KindEvent, KindPark, KindPlayground, KindWorship}
}

// Listing is the normalized shape every discovery source is mapped into.
// Instances are built per fetch and never mutated afterwards; distance
// annotation happens on copies.
type Listing struct {
	ID          string            `json:"id"`
	Kind        ListingKind       `json:"kind"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    string            `json:"category,omitempty"`
	City        string            `json:"city"`
	Address     string            `json:"address"`
	Coordinate  *Coordinate       `json:"coordinate,omitempty"`
	Sensory     SensoryAttributes `json:"sensory_attributes"`
	Tags        []string          `json:"tags,omitempty"`
	ImageURL    string            `json:"image_url,omitempty"`

	// Event-only fields.
	VenueName string     `json:"venue_name,omitempty"`
	EventDate *time.Time `json:"event_date,omitempty"`
	MinAge    int        `json:"min_age,omitempty"`
	MaxAge    int        `json:"max_age,omitempty"`

	// DistanceMiles is set if and only if both the search origin and the
	// listing coordinate are known.
	DistanceMiles *float64 `json:"distance_miles,omitempty"`
}
