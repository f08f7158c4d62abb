// Package geo provides great-circle distance math and radius filtering for
// discovery listings.
package geo

import (
	"math"

	"sensorysearch/internal/domain/entity"

	"github.com/paulmach/orb"
)

// earthRadiusMiles is the spherical-earth approximation used for all
// distance math in the product.
const earthRadiusMiles = 3958.8

// DistanceMiles returns the haversine great-circle distance between two
// points in miles. Points are orb convention: {lng, lat}.
func DistanceMiles(a, b orb.Point) float64 {
	lat1 := degToRad(a.Lat())
	lat2 := degToRad(b.Lat())
	dLat := degToRad(b.Lat() - a.Lat())
	dLng := degToRad(b.Lon() - a.Lon())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}

// FilterWithinRadius retains listings within radiusMiles of origin,
// annotating each retained listing with its distance. The input slice and
// its listings are not mutated; retained entries are shallow copies.
//
// Rules:
//   - nil origin: no location filter is active, everything passes through.
//   - radiusMiles <= 0 with an origin: nothing can be in radius, empty result.
//   - listings without a coordinate are excluded while an origin is active,
//     since they cannot be proven in-radius.
//   - input order is preserved; callers sort explicitly if they want
//     nearest-first.
func FilterWithinRadius(listings []*entity.Listing, origin *entity.Coordinate, radiusMiles float64) []*entity.Listing {
	if origin == nil {
		return listings
	}

	filtered := make([]*entity.Listing, 0, len(listings))
	if radiusMiles <= 0 {
		return filtered
	}

	originPt := origin.Point()
	for _, listing := range listings {
		if listing.Coordinate == nil {
			continue
		}

		distance := DistanceMiles(originPt, listing.Coordinate.Point())
		if distance > radiusMiles {
			continue
		}

		annotated := *listing
		annotated.DistanceMiles = &distance
		filtered = append(filtered, &annotated)
	}

	return filtered
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
