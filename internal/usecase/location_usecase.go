package usecase

import (
	"context"

	"sensorysearch/internal/domain/entity"
)

// ResolveLocationInput carries either a free-text query or a
// device-supplied coordinate, plus the desired radius.
type ResolveLocationInput struct {
	Query       string   `json:"query,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	RadiusMiles int      `json:"radius_miles"`
}

// LocationUsecase resolves and persists the user's search location and
// favorite listings.
type LocationUsecase interface {
	// Resolve normalizes the input into a LocationPreference. A free-text
	// query that matches nothing returns (nil, nil) so the caller can show
	// its own messaging; an input with neither query nor coordinate fails
	// with ErrLocationUnavailable.
	Resolve(ctx context.Context, input *ResolveLocationInput) (*entity.LocationPreference, error)

	SavePreference(ctx context.Context, userID string, pref *entity.LocationPreference) error
	// LoadPreference returns nil when the user has never chosen a location.
	LoadPreference(ctx context.Context, userID string) (*entity.LocationPreference, error)

	SaveFavorites(ctx context.Context, userID string, listingIDs []string) error
	LoadFavorites(ctx context.Context, userID string) ([]string, error)
}
