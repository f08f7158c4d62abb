package entity

import (
	"time"

	"github.com/google/uuid"
)

// Venue is a raw venue row as stored, before normalization into a Listing.
type Venue struct {
	ID                   uuid.UUID
	Name                 string
	Description          string
	Category             string
	City                 string
	Address              string
	Latitude             *float64
	Longitude            *float64
	HeroImageURL         string
	NoiseLevel           string // may be empty; normalization applies the per-kind default
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

// Coordinate returns the venue coordinate, or nil when either axis is missing.
func (v *Venue) Coordinate() *Coordinate {
	return coordinateOf(v.Latitude, v.Longitude)
}

func coordinateOf(lat, lng *float64) *Coordinate {
	if lat == nil || lng == nil {
		return nil
	}

	return &Coordinate{Lat: *lat, Lng: *lng}
}
