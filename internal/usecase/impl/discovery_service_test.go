package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"sensorysearch/internal/domain/entity"
	domainerrors "sensorysearch/internal/domain/errors"
	"sensorysearch/internal/domain/repository"
	mockRepo "sensorysearch/internal/mocks/repository"
	"sensorysearch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Philadelphia city hall and two points at known distances from it.
var (
	phillyLat = 39.9526
	phillyLng = -75.1652

	nearbyLat = 39.9496 // about 0.87 miles away
	nearbyLng = -75.1503

	manhattanLat = 40.7128 // about 80 miles away
	manhattanLng = -74.0060
)

func newDiscoveryService(listingRepo repository.ListingRepository) usecase.DiscoveryUsecase {
	return NewDiscoveryService(DiscoveryServiceParams{
		ListingRepo: listingRepo,
		Logger:      newTestLogger(),
	})
}

// stubEmptyKinds wires every fetch to return no rows, except the kinds the
// test sets up itself.
func stubEmptyKinds(m *mockRepo.MockListingRepository, ctx context.Context, except ...entity.ListingKind) {
	skip := make(map[entity.ListingKind]bool, len(except))
	for _, kind := range except {
		skip[kind] = true
	}

	if !skip[entity.KindVenue] {
		m.EXPECT().FindActiveVenues(ctx).Return(nil, nil)
	}
	if !skip[entity.KindEvent] {
		m.EXPECT().FindUpcomingEvents(ctx, mock.AnythingOfType("time.Time")).Return(nil, nil)
	}
	if !skip[entity.KindPark] {
		m.EXPECT().FindActiveParks(ctx, entity.KindPark).Return(nil, nil)
	}
	if !skip[entity.KindPlayground] {
		m.EXPECT().FindActiveParks(ctx, entity.KindPlayground).Return(nil, nil)
	}
	if !skip[entity.KindWorship] {
		m.EXPECT().FindActiveWorshipPlaces(ctx).Return(nil, nil)
	}
}

func TestDiscoveryService_Discover_AppliesSensoryDefaults(t *testing.T) {
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := newDiscoveryService(mockListingRepo)

	ctx := context.Background()
	venue := &entity.Venue{
		ID:       uuid.New(),
		Name:     "Quiet Cafe",
		City:     "Philadelphia",
		IsActive: true,
	}
	place := &entity.WorshipPlace{
		ID:       uuid.New(),
		Name:     "St. Mark's",
		City:     "Philadelphia",
		IsActive: true,
	}

	stubEmptyKinds(mockListingRepo, ctx, entity.KindVenue, entity.KindWorship)
	mockListingRepo.EXPECT().FindActiveVenues(ctx).Return([]*entity.Venue{venue}, nil)
	mockListingRepo.EXPECT().FindActiveWorshipPlaces(ctx).Return([]*entity.WorshipPlace{place}, nil)

	result, err := service.Discover(ctx, &usecase.DiscoverInput{})
	require.NoError(t, err)
	require.Len(t, result.Tabs[entity.KindVenue], 1)
	require.Len(t, result.Tabs[entity.KindWorship], 1)

	venueListing := result.Tabs[entity.KindVenue][0]
	assert.Equal(t, entity.LevelModerate, venueListing.Sensory.NoiseLevel)
	assert.Equal(t, entity.LightingModerate, venueListing.Sensory.Lighting)
	assert.Equal(t, entity.CrowdMedium, venueListing.Sensory.CrowdDensity)

	worshipListing := result.Tabs[entity.KindWorship][0]
	assert.Equal(t, entity.LevelQuiet, worshipListing.Sensory.NoiseLevel)
	assert.Equal(t, entity.LightingDim, worshipListing.Sensory.Lighting)
	assert.Equal(t, entity.CrowdLow, worshipListing.Sensory.CrowdDensity)
}

func TestDiscoveryService_Discover_KeepsExplicitSensoryValues(t *testing.T) {
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := newDiscoveryService(mockListingRepo)

	ctx := context.Background()
	venue := &entity.Venue{
		ID:         uuid.New(),
		Name:       "Arcade",
		NoiseLevel: entity.LevelLoud,
		IsActive:   true,
	}

	stubEmptyKinds(mockListingRepo, ctx, entity.KindVenue)
	mockListingRepo.EXPECT().FindActiveVenues(ctx).Return([]*entity.Venue{venue}, nil)

	result, err := service.Discover(ctx, &usecase.DiscoverInput{})
	require.NoError(t, err)
	require.Len(t, result.Tabs[entity.KindVenue], 1)

	listing := result.Tabs[entity.KindVenue][0]
	assert.Equal(t, entity.LevelLoud, listing.Sensory.NoiseLevel)
	assert.Equal(t, entity.LightingModerate, listing.Sensory.Lighting)
}

func TestDiscoveryService_Discover_NoOriginSkipsDistanceFilter(t *testing.T) {
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := newDiscoveryService(mockListingRepo)

	ctx := context.Background()
	venues := []*entity.Venue{
		{ID: uuid.New(), Name: "Near", Latitude: floatPtr(nearbyLat), Longitude: floatPtr(nearbyLng)},
		{ID: uuid.New(), Name: "Far", Latitude: floatPtr(manhattanLat), Longitude: floatPtr(manhattanLng)},
		{ID: uuid.New(), Name: "No coordinate"},
	}

	stubEmptyKinds(mockListingRepo, ctx, entity.KindVenue)
	mockListingRepo.EXPECT().FindActiveVenues(ctx).Return(venues, nil)

	result, err := service.Discover(ctx, &usecase.DiscoverInput{RadiusMiles: 5})
	require.NoError(t, err)
	require.Len(t, result.Tabs[entity.KindVenue], 3)
	for _, listing := range result.Tabs[entity.KindVenue] {
		assert.Nil(t, listing.DistanceMiles)
	}
}

func TestDiscoveryService_Discover_FiltersByDistance(t *testing.T) {
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := newDiscoveryService(mockListingRepo)

	ctx := context.Background()
	venues := []*entity.Venue{
		{ID: uuid.New(), Name: "Near", Latitude: floatPtr(nearbyLat), Longitude: floatPtr(nearbyLng)},
		{ID: uuid.New(), Name: "Far", Latitude: floatPtr(manhattanLat), Longitude: floatPtr(manhattanLng)},
	}

	stubEmptyKinds(mockListingRepo, ctx, entity.KindVenue)
	mockListingRepo.EXPECT().FindActiveVenues(ctx).Return(venues, nil)

	result, err := service.Discover(ctx, &usecase.DiscoverInput{
		Origin:      &entity.Coordinate{Lat: phillyLat, Lng: phillyLng},
		RadiusMiles: 5,
	})
	require.NoError(t, err)
	require.Len(t, result.Tabs[entity.KindVenue], 1)

	listing := result.Tabs[entity.KindVenue][0]
	assert.Equal(t, "Near", listing.Name)
	require.NotNil(t, listing.DistanceMiles)
	assert.InDelta(t, 0.87, *listing.DistanceMiles, 0.05)
}

func TestDiscoveryService_Discover_FiltersPastEvents(t *testing.T) {
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := newDiscoveryService(mockListingRepo)

	ctx := context.Background()
	events := []*entity.Event{
		{ID: uuid.New(), Title: "Yesterday", EventDate: time.Now().AddDate(0, 0, -1), MaxAge: 99},
		{ID: uuid.New(), Title: "Today", EventDate: time.Now(), MaxAge: 99},
		{ID: uuid.New(), Title: "Next week", EventDate: time.Now().AddDate(0, 0, 7), MaxAge: 99},
	}

	stubEmptyKinds(mockListingRepo, ctx, entity.KindEvent)
	mockListingRepo.EXPECT().
		FindUpcomingEvents(ctx, mock.AnythingOfType("time.Time")).
		Return(events, nil)

	result, err := service.Discover(ctx, &usecase.DiscoverInput{})
	require.NoError(t, err)
	require.Len(t, result.Tabs[entity.KindEvent], 2)
	assert.Equal(t, "Today", result.Tabs[entity.KindEvent][0].Name)
	assert.Equal(t, "Next week", result.Tabs[entity.KindEvent][1].Name)
}

func TestDiscoveryService_Discover_FiltersEventsByAgeBracket(t *testing.T) {
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := newDiscoveryService(mockListingRepo)

	ctx := context.Background()
	tomorrow := time.Now().AddDate(0, 0, 1)
	events := []*entity.Event{
		{ID: uuid.New(), Title: "Toddler music", EventDate: tomorrow, MinAge: 0, MaxAge: 5},
		{ID: uuid.New(), Title: "All ages fair", EventDate: tomorrow, MinAge: 0, MaxAge: 99},
		{ID: uuid.New(), Title: "Teen night", EventDate: tomorrow, MinAge: 13, MaxAge: 17},
	}

	stubEmptyKinds(mockListingRepo, ctx, entity.KindEvent)
	mockListingRepo.EXPECT().
		FindUpcomingEvents(ctx, mock.AnythingOfType("time.Time")).
		Return(events, nil)

	age := entity.BracketToddlers
	result, err := service.Discover(ctx, &usecase.DiscoverInput{Age: &age})
	require.NoError(t, err)
	require.Len(t, result.Tabs[entity.KindEvent], 2)
	assert.Equal(t, "Toddler music", result.Tabs[entity.KindEvent][0].Name)
	assert.Equal(t, "All ages fair", result.Tabs[entity.KindEvent][1].Name)
}

func TestDiscoveryService_Discover_TextSearchMatchesTags(t *testing.T) {
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := newDiscoveryService(mockListingRepo)

	ctx := context.Background()
	venues := []*entity.Venue{
		{ID: uuid.New(), Name: "City Library", Tags: []string{"quiet room", "books"}},
		{ID: uuid.New(), Name: "Bowling Alley"},
	}

	stubEmptyKinds(mockListingRepo, ctx, entity.KindVenue)
	mockListingRepo.EXPECT().FindActiveVenues(ctx).Return(venues, nil)

	result, err := service.Discover(ctx, &usecase.DiscoverInput{Query: "Quiet"})
	require.NoError(t, err)
	require.Len(t, result.Tabs[entity.KindVenue], 1)
	assert.Equal(t, "City Library", result.Tabs[entity.KindVenue][0].Name)
}

func TestDiscoveryService_Discover_OneSourceFailingDoesNotAbort(t *testing.T) {
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := newDiscoveryService(mockListingRepo)

	ctx := context.Background()
	park := &entity.Park{ID: uuid.New(), Kind: entity.KindPark, Name: "Greenfield Park"}

	stubEmptyKinds(mockListingRepo, ctx, entity.KindVenue, entity.KindPark)
	mockListingRepo.EXPECT().FindActiveVenues(ctx).Return(nil, errors.New("connection refused"))
	mockListingRepo.EXPECT().FindActiveParks(ctx, entity.KindPark).Return([]*entity.Park{park}, nil)

	result, err := service.Discover(ctx, &usecase.DiscoverInput{})
	require.NoError(t, err)

	_, hasVenueTab := result.Tabs[entity.KindVenue]
	assert.False(t, hasVenueTab)
	assert.Equal(t, domainerrors.ErrFetchFailed.Message(), result.Errors[entity.KindVenue])

	require.Len(t, result.Tabs[entity.KindPark], 1)
	assert.Equal(t, "Greenfield Park", result.Tabs[entity.KindPark][0].Name)
}

func TestDiscoveryService_Discover_PlaygroundsAreFetchedSeparately(t *testing.T) {
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := newDiscoveryService(mockListingRepo)

	ctx := context.Background()
	playground := &entity.Park{ID: uuid.New(), Kind: entity.KindPlayground, Name: "Adventure Playground"}

	stubEmptyKinds(mockListingRepo, ctx, entity.KindPlayground)
	mockListingRepo.EXPECT().
		FindActiveParks(ctx, entity.KindPlayground).
		Return([]*entity.Park{playground}, nil)

	result, err := service.Discover(ctx, nil)
	require.NoError(t, err)
	require.Len(t, result.Tabs[entity.KindPlayground], 1)
	assert.Equal(t, entity.KindPlayground, result.Tabs[entity.KindPlayground][0].Kind)
	assert.Empty(t, result.Tabs[entity.KindPark])
}

func TestDiscoveryService_GetListing_Venue(t *testing.T) {
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := newDiscoveryService(mockListingRepo)

	ctx := context.Background()
	venueID := uuid.New()
	venue := &entity.Venue{ID: venueID, Name: "Quiet Cafe", Category: "cafe"}

	mockListingRepo.EXPECT().FindVenueByID(ctx, venueID).Return(venue, nil)

	listing, err := service.GetListing(ctx, entity.KindVenue, venueID.String())
	require.NoError(t, err)
	assert.Equal(t, venueID.String(), listing.ID)
	assert.Equal(t, entity.KindVenue, listing.Kind)
	assert.Equal(t, "Quiet Cafe", listing.Name)
}

func TestDiscoveryService_GetListing_NotFound(t *testing.T) {
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := newDiscoveryService(mockListingRepo)

	ctx := context.Background()
	eventID := uuid.New()

	mockListingRepo.EXPECT().
		FindEventByID(ctx, eventID).
		Return(nil, repository.ErrListingNotFound)

	listing, err := service.GetListing(ctx, entity.KindEvent, eventID.String())
	assert.Nil(t, listing)
	assert.Equal(t, domainerrors.ErrListingNotFound, err)
}

func TestDiscoveryService_GetListing_InvalidID(t *testing.T) {
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := newDiscoveryService(mockListingRepo)

	listing, err := service.GetListing(context.Background(), entity.KindVenue, "not-a-uuid")
	assert.Nil(t, listing)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LISTING_NOT_FOUND", appErr.ErrorCode())
}
