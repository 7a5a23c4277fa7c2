package gateway

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	DiscoverySvcURL string
	BookingSvcURL   string
	MenuSvcURL      string
	StatsSvcURL     string
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

// hopHeaders are connection-scoped and must not be forwarded.
var hopHeaders = map[string]bool{
	"Connection":        true,
	"Keep-Alive":        true,
	"Proxy-Connection":  true,
	"Transfer-Encoding": true,
	"Upgrade":           true,
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":    "healthy",
		"service":   "api-gateway",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Upstream picks the backend for an /api path. Menu and stats live under
// /api/restaurants/{id}/..., so they are matched before the discovery catch-all.
func (g *Gateway) Upstream(path string) (string, bool) {
	switch {
	case !strings.HasPrefix(path, "/api/"):
		return "", false
	case strings.HasPrefix(path, "/api/menu/"),
		strings.HasPrefix(path, "/api/restaurants/") && strings.Contains(path, "/menu"):
		return g.config.MenuSvcURL, true
	case strings.HasPrefix(path, "/api/restaurants/") && strings.HasSuffix(path, "/stats"):
		return g.config.StatsSvcURL, true
	case path == "/api/bookings" || strings.HasPrefix(path, "/api/bookings/"):
		return g.config.BookingSvcURL, true
	case path == "/api/restaurants" || strings.HasPrefix(path, "/api/restaurants/"),
		path == "/api/filters",
		path == "/api/favorites" || strings.HasPrefix(path, "/api/favorites/"):
		return g.config.DiscoverySvcURL, true
	}
	return "", false
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Printf("ERROR: Failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		if !hopHeaders[k] {
			req.Header[k] = v
		}
	}
	req.Header.Set("X-Forwarded-Host", r.Host)

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to proxy to %s: %v", targetURL, err)
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		if !hopHeaders[k] {
			w.Header()[k] = v
		}
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: Failed to copy response: %v", err)
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	log.Printf("ROUTE: %s %s", r.Method, r.URL.Path)

	target, ok := g.Upstream(r.URL.Path)
	if !ok {
		log.Printf("[GATEWAY] Unmatched API route: %s", r.URL.Path)
		http.Error(w, "API route not found", http.StatusNotFound)
		return
	}
	g.ProxyRequest(w, r, target)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	return r
}
