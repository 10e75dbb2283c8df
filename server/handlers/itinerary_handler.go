package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"tp-server/models"
)

// User-facing notice copy per terminal error kind. Silent kinds (malformed,
// unusable, generic) carry no notice; the sample data speaks for itself.
var noticeCopy = map[models.ErrorKind]string{
	models.ERROR_KIND_SERVICE_UNAVAILABLE: "The AI service is currently overloaded and not available. Please try again in a few minutes. We're using sample data for now so you can still explore the app!",
	models.ERROR_KIND_RATE_LIMIT_EXCEEDED: "You've made too many requests. Please wait a moment before trying again. We're using sample data for now so you can still explore the app!",
	models.ERROR_KIND_CREDENTIAL_INVALID:  "There's an issue with the API configuration. Please check your API key. We're using sample data for now so you can still explore the app!",
}

// ItineraryGenerator is the service-side contract the handler depends on.
type ItineraryGenerator interface {
	GenerateItinerary(request models.TripRequest) *models.GenerationResult
}

// GenerateItineraryResponse is the wire shape returned to the SPA.
type GenerateItineraryResponse struct {
	Kind   string                  `json:"kind"`
	Notice string                  `json:"notice,omitempty"`
	Data   *models.ItineraryResult `json:"data"`
}

type ItineraryHandler struct {
	generator ItineraryGenerator
}

func NewItineraryHandler(generator ItineraryGenerator) *ItineraryHandler {
	return &ItineraryHandler{generator: generator}
}

// GenerateItinerary handles POST /v1/itineraries/generate. The response is
// always a complete itinerary; a notice accompanies fallback data when the
// failure kind warrants telling the user.
func (h *ItineraryHandler) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var request models.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Printf("[ItineraryHandler] request_id=%s invalid body: %v", requestID, err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if message, ok := validateTripRequest(request); !ok {
		log.Printf("[ItineraryHandler] request_id=%s invalid request: %s", requestID, message)
		http.Error(w, message, http.StatusBadRequest)
		return
	}

	log.Printf("[ItineraryHandler] request_id=%s generating itinerary destination=%q days=%d",
		requestID, request.DestinationPlace, request.DayCount)

	result := h.generator.GenerateItinerary(request)

	response := GenerateItineraryResponse{
		Kind: result.Kind,
		Data: result.Data,
	}
	if result.Kind == models.GENERATION_KIND_FALLBACK {
		response.Notice = noticeCopy[result.Reason]
		log.Printf("[ItineraryHandler] request_id=%s served fallback data reason=%s", requestID, result.Reason)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func validateTripRequest(request models.TripRequest) (string, bool) {
	switch {
	case request.DestinationPlace == "":
		return "destinationPlace is required", false
	case request.SourcePlace == "":
		return "sourcePlace is required", false
	case request.BudgetAmount <= 0:
		return "budgetAmount must be positive", false
	case request.MemberCount < 1:
		return "memberCount must be at least 1", false
	case request.DayCount < 1:
		return "dayCount must be at least 1", false
	}
	return "", true
}

// Ping handles GET /ping
func (h *ItineraryHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
