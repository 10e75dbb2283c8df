package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"tp-server/ratelim"
)

// ItineraryHandler is the handler contract the router wires up.
type ItineraryHandler interface {
	GenerateItinerary(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	itineraryHandler ItineraryHandler
	router           *mux.Router
	rateLimiter      *ratelim.RateLimiter
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	itineraryHandler ItineraryHandler,
	router *mux.Router,
	rateLimiter *ratelim.RateLimiter) *Router {
	return &Router{
		itineraryHandler: itineraryHandler,
		router:           router,
		rateLimiter:      rateLimiter,
	}
}

func (r *Router) RegisterRoutes() {
	// expects a TripRequest JSON body; generation is rate limited per IP
	// because each call can bill the LLM.
	r.router.Handle("/v1/itineraries/generate",
		r.rateLimiter.Limit(http.HandlerFunc(r.itineraryHandler.GenerateItinerary))).Methods("POST")

	r.router.HandleFunc("/ping", r.itineraryHandler.Ping).Methods("GET")
}
