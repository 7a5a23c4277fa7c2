package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"tablebook/auth"
	"tablebook/discovery-svc/internal/domain"
	"tablebook/discovery-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Discovery service.DiscoveryServiceInterface
	Signer    *auth.Signer
}

func NewHandler(discovery service.DiscoveryServiceInterface, signer *auth.Signer) *Handler {
	return &Handler{Discovery: discovery, Signer: signer}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.searchRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/availability", h.getAvailability).Methods("GET")
	r.HandleFunc("/api/filters", h.getFilterOptions).Methods("GET")

	favorites := r.PathPrefix("/api/favorites").Subrouter()
	favorites.Use(auth.Middleware(h.Signer))
	favorites.HandleFunc("", h.listFavorites).Methods("GET")
	favorites.HandleFunc("/{id}", h.toggleFavorite).Methods("POST")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "discovery-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) searchRestaurants(w http.ResponseWriter, r *http.Request) {
	p, err := ParseSearchParams(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	listings, err := h.Discovery.Search(r.Context(), p.Location, p.Criteria)
	if err != nil {
		log.Println("Search error:", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	if listings == nil {
		listings = []domain.Listing{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"restaurants": listings,
		"total_count": len(listings),
	})
}

func (h *Handler) writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrRestaurantNotFound) {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Discovery.Get(mux.Vars(r)["id"])
	if err != nil {
		h.writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getAvailability(w http.ResponseWriter, r *http.Request) {
	availability, err := h.Discovery.Availability(mux.Vars(r)["id"])
	if err != nil {
		h.writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, availability)
}

func (h *Handler) getFilterOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Discovery.FilterOptions())
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())
	ids, err := h.Discovery.Favorites(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"favorites": ids})
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())
	id := mux.Vars(r)["id"]

	favorite, err := h.Discovery.ToggleFavorite(r.Context(), claims.UserID, id)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"restaurant_id": id,
		"favorite":      favorite,
	})
}
