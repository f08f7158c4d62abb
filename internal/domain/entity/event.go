package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is a raw event row as stored, before normalization into a Listing.
type Event struct {
	ID                   uuid.UUID
	Title                string
	Description          string
	VenueName            string
	City                 string
	Address              string
	Latitude             *float64
	Longitude            *float64
	EventDate            time.Time
	MinAge               int
	MaxAge               int
	Images               []string
	NoiseLevel           string
	Lighting             string
	CrowdDensity         string
	HasQuietSpace        bool
	WheelchairAccessible bool
	SensoryFriendlyHours bool
	Tags                 []string
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Coordinate returns the event coordinate, or nil when either axis is missing.
func (e *Event) Coordinate() *Coordinate {
	return coordinateOf(e.Latitude, e.Longitude)
}
