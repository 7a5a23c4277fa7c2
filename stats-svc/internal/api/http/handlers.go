package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"tablebook/auth"
	"tablebook/stats-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Stats  service.StatsServiceInterface
	Signer *auth.Signer
}

func NewHandler(stats service.StatsServiceInterface, signer *auth.Signer) *Handler {
	return &Handler{Stats: stats, Signer: signer}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	ownerOnly := auth.RequireRole(auth.RoleRestaurantOwner)
	r.Handle("/api/restaurants/{restaurantId}/stats",
		auth.Middleware(h.Signer)(ownerOnly(http.HandlerFunc(h.getStats)))).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "stats-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]
	claims, _ := auth.FromContext(r.Context())
	if claims.RestaurantID != restaurantID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	stats, err := h.Stats.Dashboard(r.Context(), restaurantID, r.URL.Query().Get("date"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Println("Stats error:", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
