package services

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"tp-server/api/gemini"
	"tp-server/config"
	"tp-server/dao/redis"
	"tp-server/fallback"
	"tp-server/models"
	"tp-server/parser"
)

// ItineraryService drives one itinerary-generation attempt end to end:
// credential precheck, cache lookup, Gemini call with retry, parsing, and
// the fallback generator. It always resolves with a valid itinerary; no
// error leaves this layer.
type ItineraryService struct {
	geminiAPI    gemini.GeminiAPI
	itineraryDao *redis.RedisItineraryDAO
	apiKey       string
	sleep        func(time.Duration) // injectable so tests don't wait out backoff
	now          func() time.Time    // anchors fallback day dates
}

// NewItineraryService constructs the service with its dependencies. The
// credential is injected here, not read from ambient process state, so the
// pipeline stays testable and reentrant.
func NewItineraryService(
	geminiAPI gemini.GeminiAPI,
	itineraryDao *redis.RedisItineraryDAO,
	apiKey string) *ItineraryService {

	return &ItineraryService{
		geminiAPI:    geminiAPI,
		itineraryDao: itineraryDao,
		apiKey:       apiKey,
		sleep:        time.Sleep,
		now:          time.Now,
	}
}

// GenerateItinerary produces an itinerary for the request. The result is
// discriminated: ok with model data, or fallback with the classified reason
// and generated sample data. Either way Data is structurally valid.
func (s *ItineraryService) GenerateItinerary(request models.TripRequest) *models.GenerationResult {
	// Serve an earlier answer for the identical request if we have one.
	if cached := s.lookupCache(request); cached != nil {
		log.Printf("[ItineraryService] Cache hit for destination=%q", request.DestinationPlace)
		return models.NewOKResult(cached)
	}

	// Credential precheck: never issue a network call without a usable key.
	if s.apiKey == "" || s.apiKey == config.GEMINI_API_KEY_PLACEHOLDER {
		log.Println("[ItineraryService] Gemini API key missing or placeholder, using fallback data")
		return s.fallbackResult(request, models.ERROR_KIND_CREDENTIAL_INVALID)
	}

	output, err := s.generateWithRetry(buildPrompt(request))
	if err != nil {
		reason := models.KindOf(err)
		log.Printf("[ItineraryService] Gemini call failed (%s): %v", reason, err)
		return s.fallbackResult(request, reason)
	}

	// A completion cut off for any reason other than plain stop or token
	// budget (safety, recitation, ...) is discarded outright. MAX_TOKENS
	// still goes to the parser, which will try to repair the truncation.
	if output.FinishReason != "" &&
		output.FinishReason != models.FINISH_REASON_STOP &&
		output.FinishReason != models.FINISH_REASON_MAX_TOKENS {
		log.Printf("[ItineraryService] Discarding completion with finish reason %q", output.FinishReason)
		return s.fallbackResult(request, models.ERROR_KIND_MALFORMED_RESPONSE)
	}
	if output.Truncated() {
		log.Println("[ItineraryService] Completion truncated at token limit, attempting repair")
	}

	result, err := parser.ParseItinerary(output.Text, output.Truncated())
	if err != nil {
		log.Printf("[ItineraryService] Unusable completion: %v", err)
		return s.fallbackResult(request, models.ERROR_KIND_UNUSABLE_CONTENT)
	}

	log.Printf("[ItineraryService] Using model data with %d activities", len(result.Activities))
	s.storeCache(request, result)
	return models.NewOKResult(result)
}

// generateWithRetry issues the identical request up to the attempt budget,
// backing off 1s, 2s, ... between attempts. Only the transient
// service-unavailable kind is retried; everything else fails immediately.
func (s *ItineraryService) generateWithRetry(prompt string) (*models.GeminiOutput, error) {
	var lastErr error
	for attempt := 0; attempt < config.GEMINI_MAX_ATTEMPTS; attempt++ {
		output, err := s.geminiAPI.GenerateContent(prompt)
		if err == nil {
			return output, nil
		}
		lastErr = err

		if models.KindOf(err) != models.ERROR_KIND_SERVICE_UNAVAILABLE || attempt == config.GEMINI_MAX_ATTEMPTS-1 {
			return nil, err
		}

		delay := config.GEMINI_RETRY_BASE_DELAY * time.Duration(1<<attempt)
		log.Printf("[ItineraryService] Service unavailable, retrying in %v (attempt %d/%d)",
			delay, attempt+1, config.GEMINI_MAX_ATTEMPTS)
		s.sleep(delay)
	}
	return nil, lastErr
}

func (s *ItineraryService) fallbackResult(request models.TripRequest, reason models.ErrorKind) *models.GenerationResult {
	return models.NewFallbackResult(reason, fallback.GenerateItinerary(request, s.now()))
}

func (s *ItineraryService) lookupCache(request models.TripRequest) *models.ItineraryResult {
	if s.itineraryDao == nil {
		return nil
	}
	cached, err := s.itineraryDao.GetItinerary(request)
	if err != nil {
		log.Printf("[ItineraryService] Cache lookup failed: %v", err)
		return nil
	}
	return cached
}

func (s *ItineraryService) storeCache(request models.TripRequest, result *models.ItineraryResult) {
	if s.itineraryDao == nil {
		return
	}
	if err := s.itineraryDao.SetItinerary(request, result); err != nil {
		log.Printf("[ItineraryService] Cache write failed: %v", err)
	}
}

// buildPrompt embeds every request field into the instruction and pins the
// model to the exact ItineraryResult JSON shape, with a token budget and an
// activities-only constraint on the activities array.
func buildPrompt(request models.TripRequest) string {
	var b strings.Builder

	budget := strconv.FormatFloat(request.BudgetAmount, 'f', -1, 64)
	travelNote := " (excluding travel costs)"
	if request.IncludeTravelCost {
		travelNote = fmt.Sprintf(" (including travel costs from %s to %s and back)",
			request.SourcePlace, request.DestinationPlace)
	}

	fmt.Fprintf(&b, "Create a travel itinerary for %d person(s) traveling from %s to %s for %d day(s). Motive: %s. Budget: %s %s%s.\n\n",
		request.MemberCount, request.SourcePlace, request.DestinationPlace,
		request.DayCount, request.Motive, budget, request.CurrencyCode, travelNote)

	fmt.Fprintf(&b, "Generate 20-25 activities for %s (sightseeing, tours, experiences only - no food/accommodation/transport in activities array).\n\n",
		request.DestinationPlace)

	fmt.Fprintf(&b, "Requirements:\n")
	fmt.Fprintf(&b, "- All prices in %s\n", request.CurrencyCode)
	fmt.Fprintf(&b, "- Focus on famous %s activities for %s\n", request.Motive, request.DestinationPlace)
	fmt.Fprintf(&b, "- Keep descriptions brief (1-2 sentences)\n")
	fmt.Fprintf(&b, "- Response under 4000 tokens\n")

	if request.IncludeTravelCost {
		fmt.Fprintf(&b, "\nIMPORTANT: Include comprehensive travel costs from %s to %s and back:\n", request.SourcePlace, request.DestinationPlace)
		fmt.Fprintf(&b, "- Flight costs (economy, business, first class options)\n")
		fmt.Fprintf(&b, "- Train costs (if applicable)\n")
		fmt.Fprintf(&b, "- Bus costs (if applicable)\n")
		fmt.Fprintf(&b, "- Car rental costs (if applicable)\n")
		fmt.Fprintf(&b, "- Airport transfers and local transportation\n")
		fmt.Fprintf(&b, "- All costs should be realistic and current for %d person(s)\n", request.MemberCount)
		fmt.Fprintf(&b, "- Include both one-way and round-trip options where applicable\n")
	}

	b.WriteString(`
Return ONLY this JSON structure:
{
  "itinerary": {"days": [{"day": 1, "date": "2024-01-01", "activities": [{"time": "09:00", "activity": "Activity", "place": "Location", "description": "Brief description", "costPerPerson": 50, "category": "activities"}]}]},
  "activities": [{"id": "1", "name": "Activity", "place": "Location", "description": "Brief description", "costPerPerson": 50, "category": "activities", "duration": "2h", "bestTime": "morning"}],
  "budgetBreakdown": {
    "food": {"total": 200, "items": [{"name": "Restaurant", "place": "Location", "costPerPerson": 25, "description": "Meal"}]},
    "travel": {"total": 300, "items": [{"name": "Transport", "place": "Route", "costPerPerson": 50, "description": "Transport"}]},
    "accommodation": {"total": 400, "items": [{"name": "Hotel", "place": "Location", "costPerPerson": 100, "description": "Accommodation"}]},
    "other": {"total": 50, "items": [{"name": "Item", "place": "Location", "costPerPerson": 25, "description": "Item"}]}
  },
  "totalEstimatedCost": 1100
}`)

	return b.String()
}
