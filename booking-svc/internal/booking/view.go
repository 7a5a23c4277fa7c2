package booking

import (
	"errors"
	"time"

	"tablebook/auth"
	"tablebook/booking-svc/internal/domain"
)

const (
	TabUpcoming  = "upcoming"
	TabPast      = "past"
	TabCancelled = "cancelled"
)

const dateLayout = "2006-01-02"

var (
	ErrUnknownRole  = errors.New("unknown role")
	ErrUnknownTab   = errors.New("unknown bookings tab")
	ErrNoRestaurant = errors.New("owner account has no restaurant")
	ErrInvalidDate  = errors.New("date must be YYYY-MM-DD or today")
)

// View is the bookings screen a caller is allowed to see. The set of variants
// is closed: CustomerView and OwnerView.
type View interface {
	isView()
}

type CustomerView struct {
	CustomerID string
	Tab        string
}

type OwnerView struct {
	RestaurantID string
	// Date is empty to list every day.
	Date string
}

func (CustomerView) isView() {}
func (OwnerView) isView()    {}

// ResolveView picks the view once from the caller's claims. Customers get a
// tab (upcoming by default), owners get their restaurant and an optional day.
func ResolveView(claims auth.Claims, tab, date string, now time.Time) (View, error) {
	switch claims.Role {
	case auth.RoleCustomer:
		if tab == "" {
			tab = TabUpcoming
		}
		if tab != TabUpcoming && tab != TabPast && tab != TabCancelled {
			return nil, ErrUnknownTab
		}
		return CustomerView{CustomerID: claims.UserID, Tab: tab}, nil
	case auth.RoleRestaurantOwner:
		if claims.RestaurantID == "" {
			return nil, ErrNoRestaurant
		}
		if date == "today" {
			date = now.Format(dateLayout)
		} else if date != "" {
			if _, err := time.Parse(dateLayout, date); err != nil {
				return nil, ErrInvalidDate
			}
		}
		return OwnerView{RestaurantID: claims.RestaurantID, Date: date}, nil
	default:
		return nil, ErrUnknownRole
	}
}

func CustomerTab(status domain.BookingStatus) string {
	switch status {
	case domain.StatusPending, domain.StatusConfirmed:
		return TabUpcoming
	case domain.StatusCompleted:
		return TabPast
	case domain.StatusCancelled:
		return TabCancelled
	default:
		return ""
	}
}

// Visible reports whether b belongs on the screen described by v.
func Visible(v View, b domain.Booking) bool {
	switch v := v.(type) {
	case CustomerView:
		return b.CustomerID == v.CustomerID && CustomerTab(b.Status) == v.Tab
	case OwnerView:
		return b.RestaurantID == v.RestaurantID && (v.Date == "" || b.Date == v.Date)
	default:
		return false
	}
}

func Select(v View, list []domain.Booking) []domain.Booking {
	var out []domain.Booking
	for _, b := range list {
		if Visible(v, b) {
			out = append(out, b)
		}
	}
	return out
}

// CanAccess reports whether the caller may read a single booking: its
// customer or the owner of its restaurant.
func CanAccess(claims auth.Claims, b domain.Booking) bool {
	switch claims.Role {
	case auth.RoleCustomer:
		return b.CustomerID == claims.UserID
	case auth.RoleRestaurantOwner:
		return claims.RestaurantID != "" && b.RestaurantID == claims.RestaurantID
	default:
		return false
	}
}
