package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"sensorysearch/internal/domain/entity"
	domainerrors "sensorysearch/internal/domain/errors"
	"sensorysearch/internal/domain/repository"
	"sensorysearch/internal/geo"
	"sensorysearch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// kindSensoryDefaults is the per-kind fallback for missing sensory values.
// Events default to "Quiet" ambience while venues and parks default to
// "Moderate"; this is a product decision, not an accident of mapping code.
var kindSensoryDefaults = map[entity.ListingKind]entity.SensoryAttributes{
	entity.KindVenue:      {NoiseLevel: entity.LevelModerate, Lighting: entity.LightingModerate, CrowdDensity: entity.CrowdMedium},
	entity.KindEvent:      {NoiseLevel: entity.LevelQuiet, Lighting: entity.LightingModerate, CrowdDensity: entity.CrowdMedium},
	entity.KindPark:       {NoiseLevel: entity.LevelModerate, Lighting: entity.LightingBright, CrowdDensity: entity.CrowdMedium},
	entity.KindPlayground: {NoiseLevel: entity.LevelModerate, Lighting: entity.LightingBright, CrowdDensity: entity.CrowdMedium},
	entity.KindWorship:    {NoiseLevel: entity.LevelQuiet, Lighting: entity.LightingDim, CrowdDensity: entity.CrowdLow},
}

type discoveryService struct {
	listingRepo repository.ListingRepository
	logger      *slog.Logger
}

// DiscoveryServiceParams holds dependencies for DiscoveryService, injected by Fx.
type DiscoveryServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	Logger      *slog.Logger
}

// NewDiscoveryService creates a new discovery service instance
func NewDiscoveryService(params DiscoveryServiceParams) usecase.DiscoveryUsecase {
	return &discoveryService{
		listingRepo: params.ListingRepo,
		logger:      params.Logger,
	}
}

// Discover fetches every listing kind concurrently and applies the filter
// chain per kind. The chain order is fixed so interacting filters stay
// reproducible: normalize -> active date (events) -> age (events) -> text
// search -> distance.
func (s *discoveryService) Discover(ctx context.Context, input *usecase.DiscoverInput) (*usecase.DiscoverResult, error) {
	if input == nil {
		input = &usecase.DiscoverInput{}
	}

	today := startOfDay(time.Now())

	type kindFetch struct {
		kind     entity.ListingKind
		listings []*entity.Listing
		err      error
	}

	fetches := []kindFetch{
		{kind: entity.KindVenue},
		{kind: entity.KindEvent},
		{kind: entity.KindPark},
		{kind: entity.KindPlayground},
		{kind: entity.KindWorship},
	}

	// One read per kind; the fetches are independent, so a failed source is
	// reported and skipped rather than aborting the whole page.
	var wg sync.WaitGroup
	for i := range fetches {
		wg.Add(1)
		go func(out *kindFetch) {
			defer wg.Done()
			out.listings, out.err = s.fetchKind(ctx, out.kind, today)
		}(&fetches[i])
	}
	wg.Wait()

	result := &usecase.DiscoverResult{
		Tabs: make(map[entity.ListingKind][]*entity.Listing, len(fetches)),
	}

	for _, fetch := range fetches {
		if fetch.err != nil {
			s.logger.Error("listing fetch failed",
				slog.String("kind", string(fetch.kind)),
				slog.Any("error", fetch.err),
			)
			if result.Errors == nil {
				result.Errors = make(map[entity.ListingKind]string)
			}
			result.Errors[fetch.kind] = domainerrors.ErrFetchFailed.Message()

			continue
		}

		listings := fetch.listings
		if fetch.kind == entity.KindEvent {
			listings = applyActiveDateFilter(listings, today)
			listings = applyAgeFilter(listings, input.Age)
		}
		listings = applyTextSearch(listings, input.Query)
		listings = geo.FilterWithinRadius(listings, input.Origin, input.RadiusMiles)

		result.Tabs[fetch.kind] = listings
	}

	return result, nil
}

func (s *discoveryService) fetchKind(ctx context.Context, kind entity.ListingKind, today time.Time) ([]*entity.Listing, error) {
	switch kind {
	case entity.KindVenue:
		venues, err := s.listingRepo.FindActiveVenues(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find active venues")
		}
		listings := make([]*entity.Listing, 0, len(venues))
		for _, venue := range venues {
			listings = append(listings, normalizeVenue(venue))
		}

		return listings, nil
	case entity.KindEvent:
		events, err := s.listingRepo.FindUpcomingEvents(ctx, today)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find upcoming events")
		}
		listings := make([]*entity.Listing, 0, len(events))
		for _, event := range events {
			listings = append(listings, normalizeEvent(event))
		}

		return listings, nil
	case entity.KindPark, entity.KindPlayground:
		parks, err := s.listingRepo.FindActiveParks(ctx, kind)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to find active %s rows", kind)
		}
		listings := make([]*entity.Listing, 0, len(parks))
		for _, park := range parks {
			listings = append(listings, normalizePark(park))
		}

		return listings, nil
	case entity.KindWorship:
		places, err := s.listingRepo.FindActiveWorshipPlaces(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find active worship places")
		}
		listings := make([]*entity.Listing, 0, len(places))
		for _, place := range places {
			listings = append(listings, normalizeWorshipPlace(place))
		}

		return listings, nil
	}

	return nil, errors.Errorf("unknown listing kind: %s", kind)
}

// GetListing retrieves one listing by kind and id for the detail surface.
func (s *discoveryService) GetListing(ctx context.Context, kind entity.ListingKind, id string) (*entity.Listing, error) {
	listingID, err := uuid.Parse(id)
	if err != nil {
		return nil, domainerrors.ErrListingNotFound.WithDetails("invalid listing id")
	}

	var listing *entity.Listing
	switch kind {
	case entity.KindVenue:
		venue, findErr := s.listingRepo.FindVenueByID(ctx, listingID)
		if findErr != nil {
			return nil, mapListingErr(findErr)
		}
		listing = normalizeVenue(venue)
	case entity.KindEvent:
		event, findErr := s.listingRepo.FindEventByID(ctx, listingID)
		if findErr != nil {
			return nil, mapListingErr(findErr)
		}
		listing = normalizeEvent(event)
	case entity.KindPark, entity.KindPlayground:
		park, findErr := s.listingRepo.FindParkByID(ctx, listingID)
		if findErr != nil {
			return nil, mapListingErr(findErr)
		}
		listing = normalizePark(park)
	case entity.KindWorship:
		place, findErr := s.listingRepo.FindWorshipPlaceByID(ctx, listingID)
		if findErr != nil {
			return nil, mapListingErr(findErr)
		}
		listing = normalizeWorshipPlace(place)
	default:
		return nil, domainerrors.ErrListingNotFound.WithDetails("unknown listing kind")
	}

	return listing, nil
}

func mapListingErr(err error) error {
	if errors.Is(err, repository.ErrListingNotFound) {
		return domainerrors.ErrListingNotFound
	}

	return errors.Wrap(err, "failed to find listing")
}

// --- Normalization ---

func normalizeVenue(venue *entity.Venue) *entity.Listing {
	return &entity.Listing{
		ID:          venue.ID.String(),
		Kind:        entity.KindVenue,
		Name:        venue.Name,
		Description: venue.Description,
		Category:    venue.Category,
		City:        venue.City,
		Address:     venue.Address,
		Coordinate:  venue.Coordinate(),
		ImageURL:    venue.HeroImageURL,
		Tags:        venue.Tags,
		Sensory: normalizeSensory(entity.KindVenue, entity.SensoryAttributes{
			NoiseLevel:           venue.NoiseLevel,
			Lighting:             venue.Lighting,
			CrowdDensity:         venue.CrowdDensity,
			HasQuietSpace:        venue.HasQuietSpace,
			WheelchairAccessible: venue.WheelchairAccessible,
			SensoryFriendlyHours: venue.SensoryFriendlyHours,
		}),
	}
}

func normalizeEvent(event *entity.Event) *entity.Listing {
	eventDate := event.EventDate

	var imageURL string
	if len(event.Images) > 0 {
		imageURL = event.Images[0]
	}

	return &entity.Listing{
		ID:          event.ID.String(),
		Kind:        entity.KindEvent,
		Name:        event.Title,
		Description: event.Description,
		City:        event.City,
		Address:     event.Address,
		Coordinate:  event.Coordinate(),
		ImageURL:    imageURL,
		Tags:        event.Tags,
		VenueName:   event.VenueName,
		EventDate:   &eventDate,
		MinAge:      event.MinAge,
		MaxAge:      event.MaxAge,
		Sensory: normalizeSensory(entity.KindEvent, entity.SensoryAttributes{
			NoiseLevel:           event.NoiseLevel,
			Lighting:             event.Lighting,
			CrowdDensity:         event.CrowdDensity,
			HasQuietSpace:        event.HasQuietSpace,
			WheelchairAccessible: event.WheelchairAccessible,
			SensoryFriendlyHours: event.SensoryFriendlyHours,
		}),
	}
}

func normalizePark(park *entity.Park) *entity.Listing {
	kind := park.Kind
	if kind != entity.KindPlayground {
		kind = entity.KindPark
	}

	return &entity.Listing{
		ID:          park.ID.String(),
		Kind:        kind,
		Name:        park.Name,
		Description: park.Description,
		City:        park.City,
		Address:     park.Address,
		Coordinate:  park.Coordinate(),
		ImageURL:    park.HeroImageURL,
		Tags:        park.Tags,
		Sensory: normalizeSensory(kind, entity.SensoryAttributes{
			NoiseLevel:           park.NoiseLevel,
			Lighting:             park.Lighting,
			CrowdDensity:         park.CrowdDensity,
			HasQuietSpace:        park.HasQuietSpace,
			WheelchairAccessible: park.WheelchairAccessible,
			SensoryFriendlyHours: park.SensoryFriendlyHours,
		}),
	}
}

func normalizeWorshipPlace(place *entity.WorshipPlace) *entity.Listing {
	return &entity.Listing{
		ID:          place.ID.String(),
		Kind:        entity.KindWorship,
		Name:        place.Name,
		Description: place.Description,
		Category:    place.Denomination,
		City:        place.City,
		Address:     place.Address,
		Coordinate:  place.Coordinate(),
		ImageURL:    place.HeroImageURL,
		Tags:        place.Tags,
		Sensory: normalizeSensory(entity.KindWorship, entity.SensoryAttributes{
			NoiseLevel:           place.NoiseLevel,
			Lighting:             place.Lighting,
			CrowdDensity:         place.CrowdDensity,
			HasQuietSpace:        place.HasQuietSpace,
			WheelchairAccessible: place.WheelchairAccessible,
			SensoryFriendlyHours: place.SensoryFriendlyHours,
		}),
	}
}

// normalizeSensory fills missing sensory values from the per-kind defaults
// table.
func normalizeSensory(kind entity.ListingKind, attrs entity.SensoryAttributes) entity.SensoryAttributes {
	defaults := kindSensoryDefaults[kind]

	if attrs.NoiseLevel == "" {
		attrs.NoiseLevel = defaults.NoiseLevel
	}
	if attrs.Lighting == "" {
		attrs.Lighting = defaults.Lighting
	}
	if attrs.CrowdDensity == "" {
		attrs.CrowdDensity = defaults.CrowdDensity
	}

	return attrs
}

// --- Filters ---

// applyActiveDateFilter retains events dated today or later, compared at
// day granularity so an event earlier today still shows.
func applyActiveDateFilter(listings []*entity.Listing, today time.Time) []*entity.Listing {
	filtered := make([]*entity.Listing, 0, len(listings))
	for _, listing := range listings {
		if listing.EventDate == nil {
			continue
		}
		if startOfDay(*listing.EventDate).Before(today) {
			continue
		}
		filtered = append(filtered, listing)
	}

	return filtered
}

// applyAgeFilter retains events whose declared age range overlaps the
// preferred bracket. A nil preference filters nothing.
func applyAgeFilter(listings []*entity.Listing, age *entity.AgeBracket) []*entity.Listing {
	if age == nil {
		return listings
	}

	minAge, maxAge, ok := age.Range()
	if !ok {
		return listings
	}

	filtered := make([]*entity.Listing, 0, len(listings))
	for _, listing := range listings {
		if listing.MinAge > maxAge || listing.MaxAge < minAge {
			continue
		}
		filtered = append(filtered, listing)
	}

	return filtered
}

// applyTextSearch retains listings whose name, category/venue name or any
// tag contains the query, case-insensitively. An empty query filters
// nothing.
func applyTextSearch(listings []*entity.Listing, query string) []*entity.Listing {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return listings
	}

	filtered := make([]*entity.Listing, 0, len(listings))
	for _, listing := range listings {
		if matchesQuery(listing, query) {
			filtered = append(filtered, listing)
		}
	}

	return filtered
}

func matchesQuery(listing *entity.Listing, query string) bool {
	if strings.Contains(strings.ToLower(listing.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(listing.Category), query) {
		return true
	}
	if strings.Contains(strings.ToLower(listing.VenueName), query) {
		return true
	}
	for _, tag := range listing.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}

	return false
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
