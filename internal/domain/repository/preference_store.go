package repository

import (
	"context"

	"sensorysearch/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPreferenceNotFound is returned when no preference has been saved yet.
var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceStore is a key/value persistence abstraction for per-user
// preferences (search location and favorite listings). Use cases depend on
// this interface, not on a concrete storage mechanism, so tests can
// substitute any backend. The userID is an opaque key: authenticated users
// carry their account ID, guests a device-scoped identifier.
type PreferenceStore interface {
	SaveLocation(ctx context.Context, userID string, pref *entity.LocationPreference) error
	LoadLocation(ctx context.Context, userID string) (*entity.LocationPreference, error)

	SaveFavorites(ctx context.Context, userID string, listingIDs []string) error
	LoadFavorites(ctx context.Context, userID string) ([]string, error)
}
