// Package service declares interfaces for external collaborators.
package service

import (
	"context"

	"sensorysearch/internal/domain/entity"
)

// GeocodeResult is a resolved free-text location.
type GeocodeResult struct {
	Coordinate entity.Coordinate
	Label      string
}

// Geocoder resolves a free-text city/ZIP query to a coordinate via an
// external lookup. A query with no match returns (nil, nil); the caller is
// responsible for user-facing messaging. A non-nil error means the lookup
// itself failed.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*GeocodeResult, error)
}
