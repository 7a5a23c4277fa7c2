package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"tablebook/auth"
	"tablebook/booking-svc/internal/booking"
	"tablebook/booking-svc/internal/domain"
	"tablebook/booking-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Bookings service.BookingServiceInterface
	Signer   *auth.Signer
}

func NewHandler(bookings service.BookingServiceInterface, signer *auth.Signer) *Handler {
	return &Handler{Bookings: bookings, Signer: signer}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	bookings := r.PathPrefix("/api/bookings").Subrouter()
	bookings.Use(auth.Middleware(h.Signer))

	customerOnly := auth.RequireRole(auth.RoleCustomer)
	ownerOnly := auth.RequireRole(auth.RoleRestaurantOwner)

	bookings.HandleFunc("/quote", h.quote).Methods("POST")
	bookings.Handle("", customerOnly(http.HandlerFunc(h.createBooking))).Methods("POST")
	bookings.HandleFunc("", h.listBookings).Methods("GET")
	bookings.HandleFunc("/{id}", h.getBooking).Methods("GET")
	bookings.HandleFunc("/{id}/qrcode", h.getQRCode).Methods("GET")
	bookings.Handle("/{id}/confirm", ownerOnly(h.statusHandler(h.Bookings.Confirm))).Methods("POST")
	bookings.Handle("/{id}/decline", ownerOnly(h.statusHandler(h.Bookings.Decline))).Methods("POST")
	bookings.Handle("/{id}/complete", ownerOnly(h.statusHandler(h.Bookings.Complete))).Methods("POST")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrBookingNotFound), errors.Is(err, service.ErrTableNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrMissingSchedule),
		errors.Is(err, service.ErrChairsRequired),
		errors.Is(err, service.ErrInvalidGuests),
		errors.Is(err, service.ErrGuestsExceedCapacity),
		errors.Is(err, service.ErrChairsExceedCapacity),
		errors.Is(err, booking.ErrUnknownTab),
		errors.Is(err, booking.ErrInvalidDate):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrNotYourRestaurant),
		errors.Is(err, booking.ErrNoRestaurant),
		errors.Is(err, booking.ErrUnknownRole):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		log.Println("Booking error:", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "booking-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	var req domain.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	q, err := h.Bookings.Quote(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	var b domain.Booking
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	claims, _ := auth.FromContext(r.Context())
	b.CustomerID = claims.UserID

	if err := h.Bookings.Create(r.Context(), &b); err != nil {
		writeServiceError(w, err)
		return
	}

	b.QRCode = h.Bookings.QRLink(b.ID)
	writeJSON(w, http.StatusCreated, b)
}

func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())
	query := r.URL.Query()

	view, err := booking.ResolveView(claims, query.Get("tab"), query.Get("date"), time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	list, err := h.Bookings.List(view)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if list == nil {
		list = []domain.Booking{}
	}
	for i := range list {
		list[i].PaymentMethod = booking.PaymentMethodName(list[i].PaymentMethod)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"bookings":    list,
		"total_count": len(list),
	})
}

// loadAccessible fetches the booking and hides it from callers who are
// neither its customer nor its restaurant's owner.
func (h *Handler) loadAccessible(w http.ResponseWriter, r *http.Request) (*domain.Booking, bool) {
	b, err := h.Bookings.Get(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return nil, false
	}
	claims, _ := auth.FromContext(r.Context())
	if !booking.CanAccess(claims, *b) {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return nil, false
	}
	return b, true
}

func (h *Handler) getBooking(w http.ResponseWriter, r *http.Request) {
	b, ok := h.loadAccessible(w, r)
	if !ok {
		return
	}
	b.QRCode = h.Bookings.QRLink(b.ID)
	writeJSON(w, http.StatusOK, b)
}

func (h *Handler) getQRCode(w http.ResponseWriter, r *http.Request) {
	b, ok := h.loadAccessible(w, r)
	if !ok {
		return
	}
	qrCode, err := h.Bookings.QRCode(b.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if len(qrCode) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

type statusChange func(ctx context.Context, id, restaurantID string) (*domain.Booking, error)

func (h *Handler) statusHandler(change statusChange) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := auth.FromContext(r.Context())
		b, err := change(r.Context(), mux.Vars(r)["id"], claims.RestaurantID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, b)
	})
}
