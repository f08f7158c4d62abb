// Package usecase declares the application use-case interfaces and their
// input/output types. Implementations live in usecase/impl.
package usecase

import (
	"context"

	"sensorysearch/internal/domain/entity"
)

// DiscoverInput carries the active filters for one discovery fetch.
type DiscoverInput struct {
	// Origin is the user's chosen location; nil means no location filter is
	// active and all listings pass through unfiltered.
	Origin *entity.Coordinate

	// RadiusMiles bounds the distance filter. Ignored when Origin is nil.
	RadiusMiles float64

	// Query is a free-text search over name, category/venue name and tags.
	Query string

	// Age restricts events to those overlapping the preferred bracket.
	Age *entity.AgeBracket
}

// DiscoverResult groups filtered listings per tab. Kinds whose fetch failed
// appear in Errors and are simply absent from the tab map; one source
// failing never aborts the whole page.
type DiscoverResult struct {
	Tabs   map[entity.ListingKind][]*entity.Listing `json:"tabs"`
	Errors map[entity.ListingKind]string            `json:"errors,omitempty"`
}

// DiscoveryUsecase aggregates the heterogeneous listing sources into one
// filtered, tabbed view.
type DiscoveryUsecase interface {
	Discover(ctx context.Context, input *DiscoverInput) (*DiscoverResult, error)
	GetListing(ctx context.Context, kind entity.ListingKind, id string) (*entity.Listing, error)
}
