package search

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"tablebook/discovery-svc/internal/domain"
)

const AllOption = "All"

type scored struct {
	restaurant domain.Restaurant
	distance   float64
}

// Filter returns the records that satisfy every active criterion, ordered by
// ascending distance from location. Records at equal distance keep their
// input order.
func Filter(records []domain.Restaurant, location domain.Coordinates, criteria domain.FilterCriteria) []domain.Restaurant {
	matched := filterScored(records, location, criteria)
	result := make([]domain.Restaurant, 0, len(matched))
	for _, m := range matched {
		result = append(result, m.restaurant)
	}
	return result
}

// Listings is Filter plus the per-record availability projection rendered by
// the listing screen.
func Listings(records []domain.Restaurant, location domain.Coordinates, criteria domain.FilterCriteria) []domain.Listing {
	matched := filterScored(records, location, criteria)
	result := make([]domain.Listing, 0, len(matched))
	for _, m := range matched {
		result = append(result, domain.Listing{
			Restaurant:      m.restaurant,
			DistanceKm:      m.distance,
			AvailableTables: AvailableTableCount(m.restaurant),
			NextAvailable:   NextAvailableLabel(m.restaurant),
		})
	}
	return result
}

// Candidates applies every criterion that does not depend on the caller's
// location and keeps input order. Listings over the candidates gives the same
// result as Listings over the full catalog.
func Candidates(records []domain.Restaurant, criteria domain.FilterCriteria) []domain.Restaurant {
	match := attributeMatcher(criteria)
	result := make([]domain.Restaurant, 0, len(records))
	for _, r := range records {
		if match(r) {
			result = append(result, r)
		}
	}
	return result
}

func attributeMatcher(criteria domain.FilterCriteria) func(domain.Restaurant) bool {
	query := strings.ToLower(strings.TrimSpace(criteria.Query))
	cuisine := normalizeOption(criteria.Cuisine)
	price := normalizeOption(criteria.PriceRange)

	return func(r domain.Restaurant) bool {
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Name), query) &&
			!strings.Contains(strings.ToLower(r.Cuisine), query) {
			return false
		}
		if cuisine != "" && r.Cuisine != cuisine {
			return false
		}
		if price != "" && r.PriceRange != price {
			return false
		}
		if criteria.MinRating > 0 && r.Rating < criteria.MinRating {
			return false
		}
		return hasAllFacilities(r.Facilities, criteria.Facilities)
	}
}

func filterScored(records []domain.Restaurant, location domain.Coordinates, criteria domain.FilterCriteria) []scored {
	match := attributeMatcher(criteria)

	matched := make([]scored, 0, len(records))
	for _, r := range records {
		if !match(r) {
			continue
		}
		distance := DistanceKm(location, r.Coordinates)
		if criteria.MaxDistanceKm > 0 && distance >= criteria.MaxDistanceKm {
			continue
		}
		matched = append(matched, scored{restaurant: r, distance: distance})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].distance < matched[j].distance
	})
	return matched
}

func hasAllFacilities(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(have))
	for _, f := range have {
		set[f] = struct{}{}
	}
	for _, f := range want {
		if _, ok := set[f]; !ok {
			return false
		}
	}
	return true
}

func normalizeOption(v string) string {
	v = strings.TrimSpace(v)
	if v == AllOption {
		return ""
	}
	return v
}

var ErrUnknownBucket = errors.New("unrecognized filter value")

// ParseRatingBucket maps a rating chip label ("4.5+") or a bare number to the
// minimum rating it implies. "All" and empty return 0.
func ParseRatingBucket(label string) (float64, error) {
	label = strings.TrimSuffix(normalizeOption(label), "+")
	if label == "" {
		return 0, nil
	}
	return parseBound(label)
}

// ParseDistanceBucket maps a distance chip label ("< 2 km") or a bare number
// to the exclusive upper bound in kilometers. "All" and empty return 0.
func ParseDistanceBucket(label string) (float64, error) {
	label = normalizeOption(label)
	label = strings.TrimPrefix(label, "<")
	label = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(label), "km"))
	if label == "" {
		return 0, nil
	}
	return parseBound(label)
}

func parseBound(label string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(label), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownBucket, label)
	}
	return v, nil
}
