package entity

import (
	"time"

	"github.com/google/uuid"
)

// Park is a raw park or playground row as stored. Playgrounds share the
// table and carry Kind KindPlayground.
type Park struct {
	ID                   uuid.UUID
	Kind                 ListingKind // KindPark or KindPlayground
	Name                 string
	Description          string
	City                 string
	Address              string
	Latitude             *float64
	Longitude            *float64
	HeroImageURL         string
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

// Coordinate returns the park coordinate, or nil when either axis is missing.
func (p *Park) Coordinate() *Coordinate {
	return coordinateOf(p.Latitude, p.Longitude)
}
