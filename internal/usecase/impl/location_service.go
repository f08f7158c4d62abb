package impl

import (
	"context"
	"strings"

	"sensorysearch/config"
	"sensorysearch/internal/domain/entity"
	domainerrors "sensorysearch/internal/domain/errors"
	"sensorysearch/internal/domain/repository"
	"sensorysearch/internal/domain/service"
	"sensorysearch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const deviceLocationLabel = "Current location"

type locationService struct {
	prefStore repository.PreferenceStore
	geocoder  service.Geocoder
	config    *config.Config
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	PrefStore repository.PreferenceStore
	Geocoder  service.Geocoder
	Config    *config.Config
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	cfg := params.Config
	if cfg.Discovery == nil {
		cfg.Discovery = &config.DiscoveryConfig{
			DefaultRadiusMiles: 10,
			MaxRadiusMiles:     100,
		}
	}

	return &locationService{
		prefStore: params.PrefStore,
		geocoder:  params.Geocoder,
		config:    cfg,
	}
}

// Resolve turns a free-text query or a device coordinate into a normalized
// location preference. Device coordinates win when both are supplied; a
// query with no geocoder match returns (nil, nil).
func (s *locationService) Resolve(ctx context.Context, input *usecase.ResolveLocationInput) (*entity.LocationPreference, error) {
	if input == nil {
		return nil, domainerrors.ErrLocationUnavailable
	}

	radius := s.clampRadius(input.RadiusMiles)

	if input.Latitude != nil && input.Longitude != nil {
		return &entity.LocationPreference{
			Coordinate:  &entity.Coordinate{Lat: *input.Latitude, Lng: *input.Longitude},
			Label:       deviceLocationLabel,
			RadiusMiles: radius,
			Source:      entity.SourceDevice,
		}, nil
	}

	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, domainerrors.ErrLocationUnavailable
	}

	match, err := s.geocoder.Geocode(ctx, query)
	if err != nil {
		return nil, domainerrors.ErrGeocodingFailed.WrapMessage("geocode lookup failed")
	}
	if match == nil {
		// No match is not an error; the caller renders its own messaging.
		return nil, nil
	}

	label := match.Label
	if label == "" {
		label = query
	}

	return &entity.LocationPreference{
		Coordinate:  &entity.Coordinate{Lat: match.Coordinate.Lat, Lng: match.Coordinate.Lng},
		Label:       label,
		RadiusMiles: radius,
		Source:      entity.SourceManual,
	}, nil
}

// SavePreference persists the preference for the user, clamping the radius.
func (s *locationService) SavePreference(ctx context.Context, userID string, pref *entity.LocationPreference) error {
	if pref == nil {
		return domainerrors.ErrLocationUnavailable
	}

	saved := *pref
	saved.RadiusMiles = s.clampRadius(saved.RadiusMiles)

	if err := s.prefStore.SaveLocation(ctx, userID, &saved); err != nil {
		return errors.Wrap(err, "failed to save location preference")
	}

	return nil
}

// LoadPreference returns the stored preference, or nil when the user has
// never chosen a location.
func (s *locationService) LoadPreference(ctx context.Context, userID string) (*entity.LocationPreference, error) {
	pref, err := s.prefStore.LoadLocation(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load location preference")
	}

	return pref, nil
}

// SaveFavorites replaces the user's favorite listing IDs.
func (s *locationService) SaveFavorites(ctx context.Context, userID string, listingIDs []string) error {
	if err := s.prefStore.SaveFavorites(ctx, userID, listingIDs); err != nil {
		return errors.Wrap(err, "failed to save favorites")
	}

	return nil
}

// LoadFavorites returns the user's favorite listing IDs, empty when none
// have been saved.
func (s *locationService) LoadFavorites(ctx context.Context, userID string) ([]string, error) {
	favorites, err := s.prefStore.LoadFavorites(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			return []string{}, nil
		}

		return nil, errors.Wrap(err, "failed to load favorites")
	}

	return favorites, nil
}

func (s *locationService) clampRadius(radius int) int {
	if radius <= 0 {
		return s.config.Discovery.DefaultRadiusMiles
	}
	if radius > s.config.Discovery.MaxRadiusMiles {
		return s.config.Discovery.MaxRadiusMiles
	}

	return radius
}
