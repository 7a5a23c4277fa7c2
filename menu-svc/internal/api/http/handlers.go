package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"tablebook/auth"
	"tablebook/menu-svc/internal/domain"
	"tablebook/menu-svc/internal/menu"
	"tablebook/menu-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Menu   service.MenuServiceInterface
	Signer *auth.Signer
}

func NewHandler(menu service.MenuServiceInterface, signer *auth.Signer) *Handler {
	return &Handler{Menu: menu, Signer: signer}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/menu/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu", h.listItems).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu/{itemId}", h.getItem).Methods("GET")

	r.Handle("/api/restaurants/{restaurantId}/menu", h.ownerOnly(h.createItem)).Methods("POST")
	r.Handle("/api/restaurants/{restaurantId}/menu/{itemId}", h.ownerOnly(h.updateItem)).Methods("PUT")
	r.Handle("/api/restaurants/{restaurantId}/menu/{itemId}", h.ownerOnly(h.deleteItem)).Methods("DELETE")
	r.Handle("/api/restaurants/{restaurantId}/menu/{itemId}/availability", h.ownerOnly(h.toggleAvailability)).Methods("POST")
}

func (h *Handler) ownerOnly(next http.HandlerFunc) http.Handler {
	return auth.Middleware(h.Signer)(auth.RequireRole(auth.RoleRestaurantOwner)(ownsRestaurant(next)))
}

// ownsRestaurant limits menu writes to the owner of the restaurant in the path.
func ownsRestaurant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := auth.FromContext(r.Context())
		if claims.RestaurantID != mux.Vars(r)["restaurantId"] {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		http.Error(w, "Menu item not found", http.StatusNotFound)
	case errors.Is(err, menu.ErrNameRequired), errors.Is(err, menu.ErrPriceRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Println("Menu error:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func itemID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["itemId"])
	return id, err == nil
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, menu.Categories())
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	items, err := h.Menu.List(mux.Vars(r)["restaurantId"], query.Get("q"), query.Get("category"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}
	item, err := h.Menu.Get(mux.Vars(r)["restaurantId"], id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.RestaurantID = mux.Vars(r)["restaurantId"]
	if err := h.Menu.Create(&item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = id
	item.RestaurantID = mux.Vars(r)["restaurantId"]
	if err := h.Menu.Update(&item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}
	if err := h.Menu.Delete(mux.Vars(r)["restaurantId"], id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}
	item, err := h.Menu.ToggleAvailability(mux.Vars(r)["restaurantId"], id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
