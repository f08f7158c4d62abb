package postgres

import (
	"context"

	"sensorysearch/internal/domain/entity"
	"sensorysearch/internal/domain/repository"
	"sensorysearch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// preferenceRepository implements the repository.PreferenceStore interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceStore {
	return &preferenceRepository{db: db}
}

// SaveLocation upserts the user's location preference, leaving any stored
// favorites untouched.
func (repo *preferenceRepository) SaveLocation(ctx context.Context, userID string, pref *entity.LocationPreference) error {
	row := &model.UserPreferenceModel{
		UserID:      userID,
		Label:       &pref.Label,
		RadiusMiles: &pref.RadiusMiles,
		Source:      strPtr(string(pref.Source)),
	}
	if pref.Coordinate != nil {
		row.Latitude = &pref.Coordinate.Lat
		row.Longitude = &pref.Coordinate.Lng
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"label", "latitude", "longitude", "radius_miles", "source", "updated_at"}),
		}).
		Create(row).Error; err != nil {
		return errors.Wrap(err, "failed to save location preference")
	}

	return nil
}

// LoadLocation retrieves the user's location preference. A missing row or a
// row without a chosen location both report ErrPreferenceNotFound.
func (repo *preferenceRepository) LoadLocation(ctx context.Context, userID string) (*entity.LocationPreference, error) {
	var row model.UserPreferenceModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to load location preference")
	}

	if row.Source == nil || row.RadiusMiles == nil {
		return nil, repository.ErrPreferenceNotFound
	}

	pref := &entity.LocationPreference{
		RadiusMiles: *row.RadiusMiles,
		Source:      entity.LocationSource(*row.Source),
	}
	if row.Label != nil {
		pref.Label = *row.Label
	}
	if row.Latitude != nil && row.Longitude != nil {
		pref.Coordinate = &entity.Coordinate{Lat: *row.Latitude, Lng: *row.Longitude}
	}

	return pref, nil
}

// SaveFavorites upserts the user's favorite listing IDs, leaving any stored
// location untouched.
func (repo *preferenceRepository) SaveFavorites(ctx context.Context, userID string, listingIDs []string) error {
	row := &model.UserPreferenceModel{
		UserID:    userID,
		Favorites: listingIDs,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"favorites", "updated_at"}),
		}).
		Create(row).Error; err != nil {
		return errors.Wrap(err, "failed to save favorites")
	}

	return nil
}

// LoadFavorites retrieves the user's favorite listing IDs.
func (repo *preferenceRepository) LoadFavorites(ctx context.Context, userID string) ([]string, error) {
	var row model.UserPreferenceModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to load favorites")
	}

	if row.Favorites == nil {
		return []string{}, nil
	}

	return row.Favorites, nil
}

func strPtr(s string) *string {
	return &s
}
