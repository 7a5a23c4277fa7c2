package search

import (
	"math"

	"tablebook/discovery-svc/internal/domain"
)

const EarthRadiusKm = 6371.0

// DistanceKm returns the haversine great-circle distance between two points.
// Coordinates are not range-checked.
func DistanceKm(a, b domain.Coordinates) float64 {
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
