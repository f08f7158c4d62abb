package entity

import (
	"time"

	"github.com/google/uuid"
)

// WorshipPlace is a raw place-of-worship row as stored.
type WorshipPlace struct {
	ID                   uuid.UUID
	Name                 string
	Description          string
	Denomination         string
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

// Coordinate returns the coordinate, or nil when either axis is missing.
func (w *WorshipPlace) Coordinate() *Coordinate {
	return coordinateOf(w.Latitude, w.Longitude)
}
