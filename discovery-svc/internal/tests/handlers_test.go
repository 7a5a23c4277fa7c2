package tests

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"tablebook/auth"
	httpapi "tablebook/discovery-svc/internal/api/http"
	"tablebook/discovery-svc/internal/domain"
	"tablebook/discovery-svc/internal/mocks"
	"tablebook/discovery-svc/internal/search"
	"tablebook/discovery-svc/internal/service"
	"tablebook/discovery-svc/internal/storage"

	"github.com/gorilla/mux"
	"github.com/mmcloughlin/geohash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func setupTestRouter(mockSvc *mocks.DiscoveryServiceInterface) *mux.Router {
	handler := httpapi.NewHandler(mockSvc, auth.NewSigner(testSecret, time.Hour))
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func bearer(t *testing.T, userID string) string {
	token, err := auth.NewSigner(testSecret, time.Hour).Generate(auth.Claims{UserID: userID, Role: auth.RoleCustomer})
	require.NoError(t, err)
	return "Bearer " + token
}

func TestHandler_searchRestaurants(t *testing.T) {
	mockSvc := mocks.NewDiscoveryServiceInterface(t)
	router := setupTestRouter(mockSvc)
	seed := storage.SeedRestaurants()

	tests := []struct {
		name         string
		query        string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:  "success",
			query: "?cuisine=Pakistani&rating=4.5%2B",
			prepareMocks: func() {
				mockSvc.On("Search", mock.Anything, service.DefaultLocation, domain.FilterCriteria{Cuisine: "Pakistani", MinRating: 4.5}).
					Return([]domain.Listing{{Restaurant: seed[0], DistanceKm: 1.5}}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"total_count":1`,
		},
		{
			name:  "empty_result_is_array",
			query: "?q=sushi",
			prepareMocks: func() {
				mockSvc.On("Search", mock.Anything, service.DefaultLocation, domain.FilterCriteria{Query: "sushi"}).
					Return(nil, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"restaurants":[]`,
		},
		{
			name:  "service_error",
			query: "",
			prepareMocks: func() {
				mockSvc.On("Search", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errors.New("db down")).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "unknown_rating_label",
			query:        "?rating=great",
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "rating",
		},
		{
			name:         "unknown_distance_label",
			query:        "?distance=far",
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("GET", "/api/restaurants"+testCase.query, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_getRestaurant(t *testing.T) {
	mockSvc := mocks.NewDiscoveryServiceInterface(t)
	router := setupTestRouter(mockSvc)
	seed := storage.SeedRestaurants()

	tests := []struct {
		name         string
		path         string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "found",
			path: "/api/restaurants/1",
			prepareMocks: func() {
				mockSvc.On("Get", "1").Return(&seed[0], nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"name":"Karachi Kitchen"`,
		},
		{
			name: "not_found",
			path: "/api/restaurants/404",
			prepareMocks: func() {
				mockSvc.On("Get", "404").Return(nil, service.ErrRestaurantNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "availability",
			path: "/api/restaurants/2/availability",
			prepareMocks: func() {
				mockSvc.On("Availability", "2").Return(domain.Availability{
					RestaurantID:    "2",
					TotalTables:     2,
					AvailableTables: 0,
					NextAvailable:   "Available after 9:30 PM",
				}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"next_available":"Available after 9:30 PM"`,
		},
		{
			name: "availability_error",
			path: "/api/restaurants/2/availability",
			prepareMocks: func() {
				mockSvc.On("Availability", "2").Return(domain.Availability{}, errors.New("boom")).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("GET", testCase.path, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_favorites(t *testing.T) {
	mockSvc := mocks.NewDiscoveryServiceInterface(t)
	router := setupTestRouter(mockSvc)

	tests := []struct {
		name         string
		method       string
		path         string
		authHeader   string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:         "missing_token",
			method:       "GET",
			path:         "/api/favorites",
			prepareMocks: func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:       "list",
			method:     "GET",
			path:       "/api/favorites",
			authHeader: bearer(t, "u1"),
			prepareMocks: func() {
				mockSvc.On("Favorites", mock.Anything, "u1").Return(nil, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"favorites":[]`,
		},
		{
			name:       "toggle",
			method:     "POST",
			path:       "/api/favorites/3",
			authHeader: bearer(t, "u1"),
			prepareMocks: func() {
				mockSvc.On("ToggleFavorite", mock.Anything, "u1", "3").Return(true, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"favorite":true`,
		},
		{
			name:       "toggle_unknown_restaurant",
			method:     "POST",
			path:       "/api/favorites/404",
			authHeader: bearer(t, "u1"),
			prepareMocks: func() {
				mockSvc.On("ToggleFavorite", mock.Anything, "u1", "404").Return(false, service.ErrRestaurantNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest(testCase.method, testCase.path, nil)
			if testCase.authHeader != "" {
				req.Header.Set("Authorization", testCase.authHeader)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_getFilterOptions(t *testing.T) {
	mockSvc := mocks.NewDiscoveryServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("FilterOptions").Return(domain.FilterOptions{Cuisines: []string{"All", "Indian"}}).Once()

	req := httptest.NewRequest("GET", "/api/filters", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"Indian"`)
}

func TestParseSearchParams(t *testing.T) {
	cellLat, cellLon := geohash.DecodeCenter("tkrtz")

	tests := []struct {
		name     string
		query    url.Values
		expected httpapi.SearchParams
	}{
		{
			name:  "defaults",
			query: url.Values{},
			expected: httpapi.SearchParams{
				Location: service.DefaultLocation,
			},
		},
		{
			name: "chip_labels",
			query: url.Values{
				"name":       {"biryani"},
				"cuisine":    {"All"},
				"price":      {"₨₨"},
				"rating":     {"4.0+"},
				"distance":   {"< 2 km"},
				"facilities": {"WiFi,AC", "Parking"},
			},
			expected: httpapi.SearchParams{
				Location: service.DefaultLocation,
				Criteria: domain.FilterCriteria{
					Query:         "biryani",
					Cuisine:       "All",
					PriceRange:    "₨₨",
					MinRating:     4.0,
					MaxDistanceKm: 2,
					Facilities:    []string{"WiFi", "AC", "Parking"},
				},
			},
		},
		{
			name: "explicit_location",
			query: url.Values{
				"q":   {"Spice"},
				"lat": {"24.87"},
				"lon": {"67.02"},
			},
			expected: httpapi.SearchParams{
				Location: domain.Coordinates{Latitude: 24.87, Longitude: 67.02},
				Criteria: domain.FilterCriteria{Query: "Spice"},
			},
		},
		{
			name:  "geohash_cell_center",
			query: url.Values{"geohash": {"tkrtz"}},
			expected: httpapi.SearchParams{
				Location: domain.Coordinates{Latitude: cellLat, Longitude: cellLon},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := httpapi.ParseSearchParams(testCase.query)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestParseSearchParams_Errors(t *testing.T) {
	tests := []struct {
		name     string
		query    url.Values
		expected error
	}{
		{name: "unknown_rating", query: url.Values{"rating": {"great"}}, expected: search.ErrUnknownBucket},
		{name: "negative_distance", query: url.Values{"distance": {"-3"}}, expected: search.ErrUnknownBucket},
		{name: "bad_latitude", query: url.Values{"lat": {"north"}, "lon": {"67.02"}}, expected: httpapi.ErrInvalidLocation},
		{name: "missing_longitude", query: url.Values{"lat": {"24.8"}}, expected: httpapi.ErrInvalidLocation},
		{name: "latitude_out_of_range", query: url.Values{"lat": {"124.8"}, "lon": {"67.02"}}, expected: httpapi.ErrInvalidLocation},
		{name: "bad_geohash", query: url.Values{"geohash": {"tkr!"}}, expected: httpapi.ErrInvalidLocation},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := httpapi.ParseSearchParams(testCase.query)
			assert.ErrorIs(t, err, testCase.expected)
		})
	}
}
