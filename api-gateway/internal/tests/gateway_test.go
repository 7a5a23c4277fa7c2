package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tablebook/api-gateway/internal/gateway"
	"tablebook/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testConfig = gateway.Config{
	DiscoverySvcURL: "http://discovery-svc",
	BookingSvcURL:   "http://booking-svc",
	MenuSvcURL:      "http://menu-svc",
	StatsSvcURL:     "http://stats-svc",
}

func jsonResponse(code int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: code,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_Upstream(t *testing.T) {
	gw := gateway.NewGateway(testConfig, nil)

	tests := []struct {
		path     string
		expected string
		found    bool
	}{
		{"/api/restaurants", "http://discovery-svc", true},
		{"/api/restaurants/1", "http://discovery-svc", true},
		{"/api/restaurants/1/availability", "http://discovery-svc", true},
		{"/api/filters", "http://discovery-svc", true},
		{"/api/favorites/2", "http://discovery-svc", true},
		{"/api/restaurants/1/menu", "http://menu-svc", true},
		{"/api/restaurants/1/menu/4/availability", "http://menu-svc", true},
		{"/api/menu/categories", "http://menu-svc", true},
		{"/api/restaurants/1/stats", "http://stats-svc", true},
		{"/api/bookings", "http://booking-svc", true},
		{"/api/bookings/b1/qrcode", "http://booking-svc", true},
		{"/api/unknown", "", false},
		{"/index.html", "", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.path, func(t *testing.T) {
			target, ok := gw.Upstream(testCase.path)
			assert.Equal(t, testCase.found, ok)
			assert.Equal(t, testCase.expected, target)
		})
	}
}

func TestGateway_RouteHandler_ProxiesWithQueryAndHeaders(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://discovery-svc/api/restaurants?cuisine=Pakistani" &&
			req.Header.Get("Authorization") == "Bearer abc" &&
			req.Header.Get("Connection") == ""
	})).Return(jsonResponse(http.StatusOK, `[{"id":"1","name":"Karachi Kitchen"}]`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants?cuisine=Pakistani", nil)
	req.Header.Set("Authorization", "Bearer abc")
	req.Header.Set("Connection", "keep-alive")
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Karachi Kitchen")
}

func TestGateway_RouteHandler_BookingPost(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		body, _ := io.ReadAll(req.Body)
		return req.Method == http.MethodPost &&
			req.URL.Host == "booking-svc" &&
			string(body) == `{"table_id":"t2"}`
	})).Return(jsonResponse(http.StatusCreated, `{"id":"b1"}`), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"table_id":"t2"}`))
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestGateway_RouteHandler_UnknownAPI(t *testing.T) {
	gw := gateway.NewGateway(testConfig, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/1/stats", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_SetupRoutes(t *testing.T) {
	gw := gateway.NewGateway(testConfig, nil)
	router := gw.SetupRoutes()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
