package search

import (
	"strings"
	"time"

	"tablebook/discovery-svc/internal/domain"
)

const (
	LabelAvailableNow = "Available now"
	LabelFullyBooked  = "Fully booked"
)

var timeLayouts = []string{"3:04 PM", "3:04PM", "3 PM", "3PM", "15:04"}

func AvailableTableCount(r domain.Restaurant) int {
	count := 0
	for _, t := range r.Tables {
		if t.Available {
			count++
		}
	}
	return count
}

// NextAvailableLabel describes when the restaurant can seat someone. Booked
// tables are compared by parsed time of day; labels that do not parse are
// ignored.
func NextAvailableLabel(r domain.Restaurant) string {
	if AvailableTableCount(r) > 0 {
		return LabelAvailableNow
	}

	earliest := -1
	label := ""
	for _, t := range r.Tables {
		if t.Available || t.BookedUntil == "" {
			continue
		}
		minutes, ok := ParseTimeOfDay(t.BookedUntil)
		if !ok {
			continue
		}
		if earliest < 0 || minutes < earliest {
			earliest = minutes
			label = strings.TrimSpace(t.BookedUntil)
		}
	}

	if earliest < 0 {
		return LabelFullyBooked
	}
	return "Available after " + label
}

// ParseTimeOfDay converts labels like "8:00 PM" or "20:00" into minutes past
// midnight.
func ParseTimeOfDay(label string) (int, bool) {
	label = strings.ToUpper(strings.TrimSpace(label))
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, label); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	return 0, false
}
