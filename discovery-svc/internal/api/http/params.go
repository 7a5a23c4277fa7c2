package httpapi

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"tablebook/discovery-svc/internal/domain"
	"tablebook/discovery-svc/internal/search"
	"tablebook/discovery-svc/internal/service"

	"github.com/mmcloughlin/geohash"
)

type SearchParams struct {
	Location domain.Coordinates
	Criteria domain.FilterCriteria
}

var ErrInvalidLocation = errors.New("invalid location")

// ParseSearchParams reads listing filters from the query string. The chip
// labels shown by the app ("4.5+", "< 2 km") are accepted as well as bare
// numbers. The caller's location is lat/lon or a geohash cell, whose center
// is used.
func ParseSearchParams(query url.Values) (SearchParams, error) {
	p := SearchParams{Location: service.DefaultLocation}

	p.Criteria.Query = query.Get("q")
	if p.Criteria.Query == "" {
		p.Criteria.Query = query.Get("name")
	}
	p.Criteria.Cuisine = query.Get("cuisine")
	p.Criteria.PriceRange = query.Get("price")
	if p.Criteria.PriceRange == "" {
		p.Criteria.PriceRange = query.Get("price_range")
	}

	var err error
	if p.Criteria.MinRating, err = search.ParseRatingBucket(query.Get("rating")); err != nil {
		return SearchParams{}, fmt.Errorf("rating: %w", err)
	}
	if p.Criteria.MaxDistanceKm, err = search.ParseDistanceBucket(query.Get("distance")); err != nil {
		return SearchParams{}, fmt.Errorf("distance: %w", err)
	}

	for _, raw := range query["facilities"] {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				p.Criteria.Facilities = append(p.Criteria.Facilities, f)
			}
		}
	}

	latStr, lonStr, cell := query.Get("lat"), query.Get("lon"), query.Get("geohash")
	switch {
	case latStr != "" || lonStr != "":
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			return SearchParams{}, fmt.Errorf("%w: lat=%q lon=%q", ErrInvalidLocation, latStr, lonStr)
		}
		p.Location = domain.Coordinates{Latitude: lat, Longitude: lon}
	case cell != "":
		if err := geohash.Validate(cell); err != nil {
			return SearchParams{}, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
		}
		lat, lon := geohash.DecodeCenter(cell)
		p.Location = domain.Coordinates{Latitude: lat, Longitude: lon}
	}
	return p, nil
}
