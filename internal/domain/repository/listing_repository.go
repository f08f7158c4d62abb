// Package repository declares the persistence interfaces the use cases
// depend on. Concrete implementations live under internal/infra.
package repository

import (
	"context"
	"time"

	"sensorysearch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrListingNotFound is returned when a listing row does not exist.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository reads the per-kind discovery sources. Each method is
// scoped to currently active rows; ordering is part of the contract so the
// aggregator's stable filters stay reproducible.
type ListingRepository interface {
	// FindActiveVenues returns active venues, most recently created first.
	FindActiveVenues(ctx context.Context) ([]*entity.Venue, error)

	// FindUpcomingEvents returns active events dated on or after the given
	// day, ascending by event date.
	FindUpcomingEvents(ctx context.Context, from time.Time) ([]*entity.Event, error)

	// FindActiveParks returns active parks or playgrounds of the given kind,
	// most recently created first.
	FindActiveParks(ctx context.Context, kind entity.ListingKind) ([]*entity.Park, error)

	// FindActiveWorshipPlaces returns active places of worship, most
	// recently created first.
	FindActiveWorshipPlaces(ctx context.Context) ([]*entity.WorshipPlace, error)

	// By-ID lookups for the listing detail surface.
	FindVenueByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error)
	FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	FindParkByID(ctx context.Context, id uuid.UUID) (*entity.Park, error)
	FindWorshipPlaceByID(ctx context.Context, id uuid.UUID) (*entity.WorshipPlace, error)
}
