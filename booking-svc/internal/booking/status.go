package booking

import "tablebook/booking-svc/internal/domain"

var transitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.StatusPending:   {domain.StatusConfirmed, domain.StatusCancelled},
	domain.StatusConfirmed: {domain.StatusCancelled, domain.StatusCompleted},
}

func CanTransition(from, to domain.BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// WithStatusUpdated returns a copy of list where the booking with the given id
// carries the new status. The input slice is left untouched and unknown ids
// produce an unchanged copy.
func WithStatusUpdated(list []domain.Booking, id string, status domain.BookingStatus) []domain.Booking {
	out := make([]domain.Booking, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
		}
	}
	return out
}
