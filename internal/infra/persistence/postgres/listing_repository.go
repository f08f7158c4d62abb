package postgres

import (
	"context"
	"time"

	"sensorysearch/internal/domain/entity"
	"sensorysearch/internal/domain/repository"
	"sensorysearch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

// FindActiveVenues retrieves active venues, most recently created first.
func (repo *listingRepository) FindActiveVenues(ctx context.Context) ([]*entity.Venue, error) {
	var rows []*model.VenueModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active venues")
	}

	venues := make([]*entity.Venue, 0, len(rows))
	for _, row := range rows {
		venues = append(venues, toVenueDomain(row))
	}

	return venues, nil
}

// FindUpcomingEvents retrieves active events dated on or after the given
// day, ascending by event date.
func (repo *listingRepository) FindUpcomingEvents(ctx context.Context, from time.Time) ([]*entity.Event, error) {
	var rows []*model.EventModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND event_date >= ?", true, from).
		Order("event_date ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find upcoming events")
	}

	events := make([]*entity.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, toEventDomain(row))
	}

	return events, nil
}

// FindActiveParks retrieves active parks or playgrounds of the given kind.
func (repo *listingRepository) FindActiveParks(ctx context.Context, kind entity.ListingKind) ([]*entity.Park, error) {
	var rows []*model.ParkModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND kind = ?", true, string(kind)).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active parks")
	}

	parks := make([]*entity.Park, 0, len(rows))
	for _, row := range rows {
		parks = append(parks, toParkDomain(row))
	}

	return parks, nil
}

// FindActiveWorshipPlaces retrieves active places of worship.
func (repo *listingRepository) FindActiveWorshipPlaces(ctx context.Context) ([]*entity.WorshipPlace, error) {
	var rows []*model.WorshipPlaceModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active worship places")
	}

	places := make([]*entity.WorshipPlace, 0, len(rows))
	for _, row := range rows {
		places = append(places, toWorshipPlaceDomain(row))
	}

	return places, nil
}

// FindVenueByID retrieves a venue by its unique ID.
func (repo *listingRepository) FindVenueByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	var row model.VenueModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find venue by ID")
	}

	return toVenueDomain(&row), nil
}

// FindEventByID retrieves an event by its unique ID.
func (repo *listingRepository) FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var row model.EventModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	return toEventDomain(&row), nil
}

// FindParkByID retrieves a park or playground by its unique ID.
func (repo *listingRepository) FindParkByID(ctx context.Context, id uuid.UUID) (*entity.Park, error) {
	var row model.ParkModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find park by ID")
	}

	return toParkDomain(&row), nil
}

// FindWorshipPlaceByID retrieves a place of worship by its unique ID.
func (repo *listingRepository) FindWorshipPlaceByID(ctx context.Context, id uuid.UUID) (*entity.WorshipPlace, error) {
	var row model.WorshipPlaceModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find worship place by ID")
	}

	return toWorshipPlaceDomain(&row), nil
}

// --- Mappers ---

func toVenueDomain(row *model.VenueModel) *entity.Venue {
	return &entity.Venue{
		ID:                   row.ID,
		Name:                 row.Name,
		Description:          row.Description,
		Category:             row.Category,
		City:                 row.City,
		Address:              row.Address,
		Latitude:             row.Latitude,
		Longitude:            row.Longitude,
		HeroImageURL:         row.HeroImageURL,
		NoiseLevel:           row.NoiseLevel,
		Lighting:             row.Lighting,
		CrowdDensity:         row.CrowdDensity,
		HasQuietSpace:        row.HasQuietSpace,
		WheelchairAccessible: row.WheelchairAccessible,
		SensoryFriendlyHours: row.SensoryFriendlyHours,
		Tags:                 row.Tags,
		IsActive:             row.IsActive,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
}

func toEventDomain(row *model.EventModel) *entity.Event {
	return &entity.Event{
		ID:                   row.ID,
		Title:                row.Title,
		Description:          row.Description,
		VenueName:            row.VenueName,
		City:                 row.City,
		Address:              row.Address,
		Latitude:             row.Latitude,
		Longitude:            row.Longitude,
		EventDate:            row.EventDate,
		MinAge:               row.MinAge,
		MaxAge:               row.MaxAge,
		Images:               row.Images,
		NoiseLevel:           row.NoiseLevel,
		Lighting:             row.Lighting,
		CrowdDensity:         row.CrowdDensity,
		HasQuietSpace:        row.HasQuietSpace,
		WheelchairAccessible: row.WheelchairAccessible,
		SensoryFriendlyHours: row.SensoryFriendlyHours,
		Tags:                 row.Tags,
		IsActive:             row.IsActive,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
}

func toParkDomain(row *model.ParkModel) *entity.Park {
	return &entity.Park{
		ID:                   row.ID,
		Kind:                 entity.ListingKind(row.Kind),
		Name:                 row.Name,
		Description:          row.Description,
		City:                 row.City,
		Address:              row.Address,
		Latitude:             row.Latitude,
		Longitude:            row.Longitude,
		HeroImageURL:         row.HeroImageURL,
		NoiseLevel:           row.NoiseLevel,
		Lighting:             row.Lighting,
		CrowdDensity:         row.CrowdDensity,
		HasQuietSpace:        row.HasQuietSpace,
		WheelchairAccessible: row.WheelchairAccessible,
		SensoryFriendlyHours: row.SensoryFriendlyHours,
		Tags:                 row.Tags,
		IsActive:             row.IsActive,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
}

func toWorshipPlaceDomain(row *model.WorshipPlaceModel) *entity.WorshipPlace {
	return &entity.WorshipPlace{
		ID:                   row.ID,
		Name:                 row.Name,
		Description:          row.Description,
		Denomination:         row.Denomination,
		City:                 row.City,
		Address:              row.Address,
		Latitude:             row.Latitude,
		Longitude:            row.Longitude,
		HeroImageURL:         row.HeroImageURL,
		NoiseLevel:           row.NoiseLevel,
		Lighting:             row.Lighting,
		CrowdDensity:         row.CrowdDensity,
		HasQuietSpace:        row.HasQuietSpace,
		WheelchairAccessible: row.WheelchairAccessible,
		SensoryFriendlyHours: row.SensoryFriendlyHours,
		Tags:                 row.Tags,
		IsActive:             row.IsActive,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
}
