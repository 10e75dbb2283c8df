package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"tp-server/ratelim"
)

// MockItineraryHandler is a mock implementation of ItineraryHandler.
type MockItineraryHandler struct{}

func (h *MockItineraryHandler) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"kind": "ok"}`))
}

func (h *MockItineraryHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "pong"}`))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	mockItineraryHandler := &MockItineraryHandler{}
	router := mux.NewRouter()
	appRouter := NewRouter(mockItineraryHandler, router, ratelim.NewRateLimiter())
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "Generate Itinerary",
			method:     "POST",
			path:       "/v1/itineraries/generate",
			statusCode: http.StatusOK,
			response:   `{"kind": "ok"}`,
		},
		{
			name:       "Generate Itinerary Wrong Method",
			method:     "GET",
			path:       "/v1/itineraries/generate",
			statusCode: http.StatusMethodNotAllowed,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"status": "pong"}`,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, strings.NewReader("{}"))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// Assert status code
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			// Assert response body, if applicable
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}
