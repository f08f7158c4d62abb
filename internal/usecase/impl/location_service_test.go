package impl

import (
	"context"
	"errors"
	"testing"

	"sensorysearch/config"
	"sensorysearch/internal/domain/entity"
	domainerrors "sensorysearch/internal/domain/errors"
	"sensorysearch/internal/domain/repository"
	"sensorysearch/internal/domain/service"
	mockRepo "sensorysearch/internal/mocks/repository"
	mockSvc "sensorysearch/internal/mocks/service"
	"sensorysearch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocationService(prefStore repository.PreferenceStore, geocoder service.Geocoder) usecase.LocationUsecase {
	return NewLocationService(LocationServiceParams{
		PrefStore: prefStore,
		Geocoder:  geocoder,
		Config: &config.Config{
			Discovery: &config.DiscoveryConfig{
				DefaultRadiusMiles: 10,
				MaxRadiusMiles:     100,
			},
		},
	})
}

func TestLocationService_Resolve_DeviceCoordinateWins(t *testing.T) {
	mockPrefStore := mockRepo.NewMockPreferenceStore(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := newLocationService(mockPrefStore, mockGeocoder)

	// Both a query and a coordinate supplied; the coordinate must win and
	// the geocoder must never be called.
	pref, err := svc.Resolve(context.Background(), &usecase.ResolveLocationInput{
		Query:       "Philadelphia",
		Latitude:    floatPtr(phillyLat),
		Longitude:   floatPtr(phillyLng),
		RadiusMiles: 25,
	})
	require.NoError(t, err)
	require.NotNil(t, pref)
	assert.Equal(t, entity.SourceDevice, pref.Source)
	assert.Equal(t, "Current location", pref.Label)
	assert.Equal(t, 25, pref.RadiusMiles)
	require.NotNil(t, pref.Coordinate)
	assert.Equal(t, phillyLat, pref.Coordinate.Lat)
	assert.Equal(t, phillyLng, pref.Coordinate.Lng)
}

func TestLocationService_Resolve_GeocodesQuery(t *testing.T) {
	mockPrefStore := mockRepo.NewMockPreferenceStore(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := newLocationService(mockPrefStore, mockGeocoder)

	ctx := context.Background()
	mockGeocoder.EXPECT().
		Geocode(ctx, "19106").
		Return(&service.GeocodeResult{
			Coordinate: entity.Coordinate{Lat: phillyLat, Lng: phillyLng},
			Label:      "Philadelphia, PA 19106",
		}, nil)

	pref, err := svc.Resolve(ctx, &usecase.ResolveLocationInput{Query: "19106"})
	require.NoError(t, err)
	require.NotNil(t, pref)
	assert.Equal(t, entity.SourceManual, pref.Source)
	assert.Equal(t, "Philadelphia, PA 19106", pref.Label)
	assert.Equal(t, 10, pref.RadiusMiles) // default applied
}

func TestLocationService_Resolve_NoMatchIsNotAnError(t *testing.T) {
	mockPrefStore := mockRepo.NewMockPreferenceStore(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := newLocationService(mockPrefStore, mockGeocoder)

	ctx := context.Background()
	mockGeocoder.EXPECT().Geocode(ctx, "xyzzy").Return(nil, nil)

	pref, err := svc.Resolve(ctx, &usecase.ResolveLocationInput{Query: "xyzzy"})
	require.NoError(t, err)
	assert.Nil(t, pref)
}

func TestLocationService_Resolve_GeocoderFailure(t *testing.T) {
	mockPrefStore := mockRepo.NewMockPreferenceStore(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := newLocationService(mockPrefStore, mockGeocoder)

	ctx := context.Background()
	mockGeocoder.EXPECT().
		Geocode(ctx, "Philadelphia").
		Return(nil, errors.New("upstream timeout"))

	pref, err := svc.Resolve(ctx, &usecase.ResolveLocationInput{Query: "Philadelphia"})
	assert.Nil(t, pref)
	assert.ErrorIs(t, err, domainerrors.ErrGeocodingFailed)
}

func TestLocationService_Resolve_EmptyInput(t *testing.T) {
	mockPrefStore := mockRepo.NewMockPreferenceStore(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := newLocationService(mockPrefStore, mockGeocoder)

	pref, err := svc.Resolve(context.Background(), &usecase.ResolveLocationInput{Query: "   "})
	assert.Nil(t, pref)
	assert.Equal(t, domainerrors.ErrLocationUnavailable, err)

	pref, err = svc.Resolve(context.Background(), nil)
	assert.Nil(t, pref)
	assert.Equal(t, domainerrors.ErrLocationUnavailable, err)
}

func TestLocationService_Resolve_ClampsRadius(t *testing.T) {
	mockPrefStore := mockRepo.NewMockPreferenceStore(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := newLocationService(mockPrefStore, mockGeocoder)

	pref, err := svc.Resolve(context.Background(), &usecase.ResolveLocationInput{
		Latitude:    floatPtr(phillyLat),
		Longitude:   floatPtr(phillyLng),
		RadiusMiles: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, 100, pref.RadiusMiles)
}

func TestLocationService_SavePreference_ClampsWithoutMutatingInput(t *testing.T) {
	mockPrefStore := mockRepo.NewMockPreferenceStore(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := newLocationService(mockPrefStore, mockGeocoder)

	ctx := context.Background()
	input := &entity.LocationPreference{
		Label:       "Home",
		RadiusMiles: 0,
		Source:      entity.SourceManual,
	}

	mockPrefStore.EXPECT().
		SaveLocation(ctx, "user-1", &entity.LocationPreference{
			Label:       "Home",
			RadiusMiles: 10,
			Source:      entity.SourceManual,
		}).
		Return(nil)

	err := svc.SavePreference(ctx, "user-1", input)
	require.NoError(t, err)
	assert.Equal(t, 0, input.RadiusMiles)
}

func TestLocationService_LoadPreference_NotFoundReturnsNil(t *testing.T) {
	mockPrefStore := mockRepo.NewMockPreferenceStore(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := newLocationService(mockPrefStore, mockGeocoder)

	ctx := context.Background()
	mockPrefStore.EXPECT().
		LoadLocation(ctx, "user-1").
		Return(nil, repository.ErrPreferenceNotFound)

	pref, err := svc.LoadPreference(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, pref)
}

func TestLocationService_LoadPreference_Stored(t *testing.T) {
	mockPrefStore := mockRepo.NewMockPreferenceStore(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := newLocationService(mockPrefStore, mockGeocoder)

	ctx := context.Background()
	stored := &entity.LocationPreference{
		Coordinate:  &entity.Coordinate{Lat: phillyLat, Lng: phillyLng},
		Label:       "Philadelphia, PA",
		RadiusMiles: 15,
		Source:      entity.SourceManual,
	}

	mockPrefStore.EXPECT().LoadLocation(ctx, "user-1").Return(stored, nil)

	pref, err := svc.LoadPreference(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, stored, pref)
}

func TestLocationService_Favorites_RoundTrip(t *testing.T) {
	mockPrefStore := mockRepo.NewMockPreferenceStore(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := newLocationService(mockPrefStore, mockGeocoder)

	ctx := context.Background()
	favorites := []string{"a", "b"}

	mockPrefStore.EXPECT().SaveFavorites(ctx, "user-1", favorites).Return(nil)
	mockPrefStore.EXPECT().LoadFavorites(ctx, "user-1").Return(favorites, nil)

	require.NoError(t, svc.SaveFavorites(ctx, "user-1", favorites))

	loaded, err := svc.LoadFavorites(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, favorites, loaded)
}

func TestLocationService_LoadFavorites_NotFoundReturnsEmpty(t *testing.T) {
	mockPrefStore := mockRepo.NewMockPreferenceStore(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := newLocationService(mockPrefStore, mockGeocoder)

	ctx := context.Background()
	mockPrefStore.EXPECT().
		LoadFavorites(ctx, "user-1").
		Return(nil, repository.ErrPreferenceNotFound)

	favorites, err := svc.LoadFavorites(ctx, "user-1")
	require.NoError(t, err)
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)
}
