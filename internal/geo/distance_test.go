package geo

import (
	"testing"

	"sensorysearch/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceMiles_SamePointIsZero(t *testing.T) {
	points := []orb.Point{
		{0, 0},
		{-75.16, 39.95},
		{121.5, 25.03},
		{-180, -90},
	}

	for _, p := range points {
		assert.Zero(t, DistanceMiles(p, p))
	}
}

func TestDistanceMiles_Symmetry(t *testing.T) {
	a := orb.Point{-75.16, 39.95}
	b := orb.Point{-75.47, 40.35}

	assert.InDelta(t, DistanceMiles(a, b), DistanceMiles(b, a), 1e-9)
}

func TestDistanceMiles_KnownDistances(t *testing.T) {
	philly := orb.Point{-75.16, 39.95}

	// Center City to Fairmount, just under a mile.
	near := orb.Point{-75.17, 39.96}
	assert.InDelta(t, 0.87, DistanceMiles(philly, near), 0.05)

	// Philadelphia to Green Lane, roughly 29 miles.
	greenLane := orb.Point{-75.47, 40.35}
	assert.InDelta(t, 29.0, DistanceMiles(philly, greenLane), 1.0)
}

func newListing(id string, coord *entity.Coordinate) *entity.Listing {
	return &entity.Listing{
		ID:         id,
		Kind:       entity.KindVenue,
		Name:       "Listing " + id,
		Coordinate: coord,
	}
}

func TestFilterWithinRadius_NilOriginPassesThrough(t *testing.T) {
	listings := []*entity.Listing{
		newListing("a", &entity.Coordinate{Lat: 39.96, Lng: -75.17}),
		newListing("b", nil),
	}

	result := FilterWithinRadius(listings, nil, 10)
	assert.Equal(t, listings, result)
}

func TestFilterWithinRadius_NonPositiveRadiusIsEmpty(t *testing.T) {
	listings := []*entity.Listing{
		newListing("a", &entity.Coordinate{Lat: 39.95, Lng: -75.16}),
	}
	origin := &entity.Coordinate{Lat: 39.95, Lng: -75.16}

	assert.Empty(t, FilterWithinRadius(listings, origin, 0))
	assert.Empty(t, FilterWithinRadius(listings, origin, -5))
}

func TestFilterWithinRadius_ExcludesMissingCoordinates(t *testing.T) {
	listings := []*entity.Listing{
		newListing("a", nil),
		newListing("b", nil),
	}
	origin := &entity.Coordinate{Lat: 39.95, Lng: -75.16}

	assert.Empty(t, FilterWithinRadius(listings, origin, 100))
}

func TestFilterWithinRadius_RadiusBoundary(t *testing.T) {
	origin := &entity.Coordinate{Lat: 39.95, Lng: -75.16}
	listings := []*entity.Listing{
		newListing("near", &entity.Coordinate{Lat: 39.96, Lng: -75.17}),
		newListing("far", &entity.Coordinate{Lat: 40.35, Lng: -75.47}),
	}

	result := FilterWithinRadius(listings, origin, 10)
	require.Len(t, result, 1)
	assert.Equal(t, "near", result[0].ID)
	require.NotNil(t, result[0].DistanceMiles)
	assert.InDelta(t, 0.87, *result[0].DistanceMiles, 0.05)
}

func TestFilterWithinRadius_PreservesInputOrder(t *testing.T) {
	origin := &entity.Coordinate{Lat: 39.95, Lng: -75.16}
	listings := []*entity.Listing{
		newListing("farther", &entity.Coordinate{Lat: 40.0, Lng: -75.2}),
		newListing("closer", &entity.Coordinate{Lat: 39.951, Lng: -75.161}),
	}

	result := FilterWithinRadius(listings, origin, 50)
	require.Len(t, result, 2)
	// Stable filter: no re-sorting by distance.
	assert.Equal(t, "farther", result[0].ID)
	assert.Equal(t, "closer", result[1].ID)
}

func TestFilterWithinRadius_DoesNotMutateInput(t *testing.T) {
	origin := &entity.Coordinate{Lat: 39.95, Lng: -75.16}
	listing := newListing("a", &entity.Coordinate{Lat: 39.96, Lng: -75.17})

	result := FilterWithinRadius([]*entity.Listing{listing}, origin, 10)
	require.Len(t, result, 1)
	assert.Nil(t, listing.DistanceMiles)
	assert.NotSame(t, listing, result[0])
}
