package services

import (
	"strings"
	"testing"
	"time"

	redisdao "tp-server/dao/redis"
	"tp-server/db"
	"tp-server/models"
)

// stubGeminiAPI returns a scripted sequence of outputs/errors and records
// every prompt it was asked for.
type stubGeminiAPI struct {
	outputs []*models.GeminiOutput
	errs    []error
	prompts []string
}

func (s *stubGeminiAPI) GenerateContent(prompt string) (*models.GeminiOutput, error) {
	call := len(s.prompts)
	s.prompts = append(s.prompts, prompt)

	var err error
	if call < len(s.errs) {
		err = s.errs[call]
	} else if len(s.errs) > 0 {
		err = s.errs[len(s.errs)-1] // repeat the last scripted error
	}
	if err != nil {
		return nil, err
	}

	if call < len(s.outputs) {
		return s.outputs[call], nil
	}
	return s.outputs[len(s.outputs)-1], nil
}

func (s *stubGeminiAPI) SetAPIKey(apiKey string) {}

const validModelReply = "```json\n" + `{
	"itinerary": {"days": [{"day": 1, "date": "2024-06-01", "activities": []}]},
	"activities": [{"name": "Louvre Museum", "place": "Paris", "description": "Art museum", "costPerPerson": 22}],
	"budgetBreakdown": {
		"food": {"total": 100, "items": []},
		"travel": {"total": 100, "items": []},
		"accommodation": {"total": 100, "items": []},
		"other": {"total": 10, "items": []}
	},
	"totalEstimatedCost": 500
}` + "\n```"

func testTripRequest() models.TripRequest {
	return models.TripRequest{
		DestinationPlace:  "Paris",
		SourcePlace:       "London",
		Motive:            models.MOTIVE_ROMANTIC,
		BudgetAmount:      1000,
		CurrencyCode:      "USD",
		IncludeTravelCost: true,
		MemberCount:       2,
		DayCount:          2,
	}
}

// newTestService wires the service with a stub API, an in-memory cache and
// instrumented sleep/clock so backoff tests complete instantly.
func newTestService(stub *stubGeminiAPI, apiKey string) (*ItineraryService, *[]time.Duration) {
	service := NewItineraryService(stub, redisdao.NewRedisItineraryDAO(db.NewMockRedisClient()), apiKey)

	sleeps := &[]time.Duration{}
	service.sleep = func(d time.Duration) { *sleeps = append(*sleeps, d) }
	service.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	return service, sleeps
}

func TestGenerateItinerary_RetriesOnServiceUnavailable(t *testing.T) {
	stub := &stubGeminiAPI{
		errs: []error{models.NewLLMError(models.ERROR_KIND_SERVICE_UNAVAILABLE, 503, "model is overloaded")},
	}
	service, sleeps := newTestService(stub, "test-key")

	result := service.GenerateItinerary(testTripRequest())

	if len(stub.prompts) != 3 {
		t.Errorf("Expected 3 attempts, got %d", len(stub.prompts))
	}
	// Backoff doubles from the 1s base: 1s before attempt 2, 2s before attempt 3.
	wantSleeps := []time.Duration{1 * time.Second, 2 * time.Second}
	if len(*sleeps) != len(wantSleeps) {
		t.Fatalf("Expected %d sleeps, got %v", len(wantSleeps), *sleeps)
	}
	for i, want := range wantSleeps {
		if (*sleeps)[i] != want {
			t.Errorf("Sleep %d = %v; want %v", i, (*sleeps)[i], want)
		}
	}
	// Each retry re-issues the identical request.
	if stub.prompts[0] != stub.prompts[1] || stub.prompts[1] != stub.prompts[2] {
		t.Error("Retries did not re-issue the identical prompt")
	}

	if result.Kind != models.GENERATION_KIND_FALLBACK {
		t.Fatalf("Kind = %s; want fallback", result.Kind)
	}
	if result.Reason != models.ERROR_KIND_SERVICE_UNAVAILABLE {
		t.Errorf("Reason = %s; want %s", result.Reason, models.ERROR_KIND_SERVICE_UNAVAILABLE)
	}

	// Fallback data satisfies the full contract for the original request.
	if len(result.Data.Itinerary.Days) != 2 {
		t.Errorf("Expected 2 fallback days, got %d", len(result.Data.Itinerary.Days))
	}
	if len(result.Data.Activities) != 25 {
		t.Errorf("Expected 25 fallback activities, got %d", len(result.Data.Activities))
	}
	if result.Data.BudgetBreakdown.Food.Total != 300 {
		t.Errorf("Food.Total = %v; want 300", result.Data.BudgetBreakdown.Food.Total)
	}
	if result.Data.BudgetBreakdown.Accommodation.Total != 200 {
		t.Errorf("Accommodation.Total = %v; want 200", result.Data.BudgetBreakdown.Accommodation.Total)
	}
	if result.Data.TotalEstimatedCost != 1000 {
		t.Errorf("TotalEstimatedCost = %v; want 1000", result.Data.TotalEstimatedCost)
	}
}

func TestGenerateItinerary_NoRetryOnRateLimit(t *testing.T) {
	stub := &stubGeminiAPI{
		errs: []error{models.NewLLMError(models.ERROR_KIND_RATE_LIMIT_EXCEEDED, 429, "quota exceeded")},
	}
	service, sleeps := newTestService(stub, "test-key")

	result := service.GenerateItinerary(testTripRequest())

	if len(stub.prompts) != 1 {
		t.Errorf("Expected 1 attempt, got %d", len(stub.prompts))
	}
	if len(*sleeps) != 0 {
		t.Errorf("Expected no backoff sleeps, got %v", *sleeps)
	}
	if result.Reason != models.ERROR_KIND_RATE_LIMIT_EXCEEDED {
		t.Errorf("Reason = %s; want %s", result.Reason, models.ERROR_KIND_RATE_LIMIT_EXCEEDED)
	}
}

func TestGenerateItinerary_MissingCredential(t *testing.T) {
	stub := &stubGeminiAPI{outputs: []*models.GeminiOutput{{Text: validModelReply, FinishReason: models.FINISH_REASON_STOP}}}
	service, _ := newTestService(stub, "")

	result := service.GenerateItinerary(testTripRequest())

	if len(stub.prompts) != 0 {
		t.Errorf("Expected no API call with a missing credential, got %d", len(stub.prompts))
	}
	if result.Kind != models.GENERATION_KIND_FALLBACK {
		t.Fatalf("Kind = %s; want fallback", result.Kind)
	}
	if result.Reason != models.ERROR_KIND_CREDENTIAL_INVALID {
		t.Errorf("Reason = %s; want %s", result.Reason, models.ERROR_KIND_CREDENTIAL_INVALID)
	}
	if len(result.Data.Activities) != 25 {
		t.Errorf("Expected 25 fallback activities, got %d", len(result.Data.Activities))
	}
}

func TestGenerateItinerary_PlaceholderCredential(t *testing.T) {
	stub := &stubGeminiAPI{outputs: []*models.GeminiOutput{{Text: validModelReply, FinishReason: models.FINISH_REASON_STOP}}}
	service, _ := newTestService(stub, "your-gemini-api-key-here")

	result := service.GenerateItinerary(testTripRequest())

	if len(stub.prompts) != 0 {
		t.Errorf("Expected no API call with a placeholder credential, got %d", len(stub.prompts))
	}
	if result.Reason != models.ERROR_KIND_CREDENTIAL_INVALID {
		t.Errorf("Reason = %s; want %s", result.Reason, models.ERROR_KIND_CREDENTIAL_INVALID)
	}
}

func TestGenerateItinerary_Success(t *testing.T) {
	stub := &stubGeminiAPI{outputs: []*models.GeminiOutput{{Text: validModelReply, FinishReason: models.FINISH_REASON_STOP}}}
	service, _ := newTestService(stub, "test-key")

	result := service.GenerateItinerary(testTripRequest())

	if result.Kind != models.GENERATION_KIND_OK {
		t.Fatalf("Kind = %s; want ok", result.Kind)
	}
	if result.Reason != "" {
		t.Errorf("Reason = %s; want empty", result.Reason)
	}
	if len(result.Data.Activities) != 1 {
		t.Fatalf("Expected 1 activity, got %d", len(result.Data.Activities))
	}
	if result.Data.Activities[0].ID != "1" {
		t.Errorf("Activity id = %q; want %q (normalized)", result.Data.Activities[0].ID, "1")
	}
	if result.Data.TotalEstimatedCost != 500 {
		t.Errorf("TotalEstimatedCost = %v; want 500", result.Data.TotalEstimatedCost)
	}
}

func TestGenerateItinerary_SecondCallServedFromCache(t *testing.T) {
	stub := &stubGeminiAPI{outputs: []*models.GeminiOutput{{Text: validModelReply, FinishReason: models.FINISH_REASON_STOP}}}
	service, _ := newTestService(stub, "test-key")

	first := service.GenerateItinerary(testTripRequest())
	second := service.GenerateItinerary(testTripRequest())

	if len(stub.prompts) != 1 {
		t.Errorf("Expected the second call to hit the cache, got %d API calls", len(stub.prompts))
	}
	if second.Kind != models.GENERATION_KIND_OK {
		t.Errorf("Cached Kind = %s; want ok", second.Kind)
	}
	if first.Data.TotalEstimatedCost != second.Data.TotalEstimatedCost {
		t.Error("Cached result differs from the original")
	}
}

func TestGenerateItinerary_FallbackNotCached(t *testing.T) {
	stub := &stubGeminiAPI{
		errs: []error{models.NewLLMError(models.ERROR_KIND_RATE_LIMIT_EXCEEDED, 429, "quota exceeded")},
	}
	service, _ := newTestService(stub, "test-key")

	service.GenerateItinerary(testTripRequest())
	service.GenerateItinerary(testTripRequest())

	// Sample data must never shadow a future successful generation.
	if len(stub.prompts) != 2 {
		t.Errorf("Expected both calls to reach the API, got %d", len(stub.prompts))
	}
}

func TestGenerateItinerary_DisallowedFinishReason(t *testing.T) {
	stub := &stubGeminiAPI{outputs: []*models.GeminiOutput{{Text: validModelReply, FinishReason: "SAFETY"}}}
	service, _ := newTestService(stub, "test-key")

	result := service.GenerateItinerary(testTripRequest())

	if result.Kind != models.GENERATION_KIND_FALLBACK {
		t.Fatalf("Kind = %s; want fallback", result.Kind)
	}
	if result.Reason != models.ERROR_KIND_MALFORMED_RESPONSE {
		t.Errorf("Reason = %s; want %s", result.Reason, models.ERROR_KIND_MALFORMED_RESPONSE)
	}
}

func TestGenerateItinerary_TruncatedCompletionRepaired(t *testing.T) {
	truncated := `{"totalEstimatedCost": 500, "activities": [{"name": "Louvre Museum", "place": "Paris", "description": "Art museum", "costPerPerson": 22}`
	stub := &stubGeminiAPI{outputs: []*models.GeminiOutput{{Text: truncated, FinishReason: models.FINISH_REASON_MAX_TOKENS}}}
	service, _ := newTestService(stub, "test-key")

	result := service.GenerateItinerary(testTripRequest())

	if result.Kind != models.GENERATION_KIND_OK {
		t.Fatalf("Kind = %s; want ok after repair", result.Kind)
	}
	if len(result.Data.Activities) != 1 {
		t.Errorf("Expected 1 activity, got %d", len(result.Data.Activities))
	}
}

func TestGenerateItinerary_UnusableContent(t *testing.T) {
	stub := &stubGeminiAPI{outputs: []*models.GeminiOutput{{Text: "I cannot generate that itinerary.", FinishReason: models.FINISH_REASON_STOP}}}
	service, _ := newTestService(stub, "test-key")

	result := service.GenerateItinerary(testTripRequest())

	if result.Kind != models.GENERATION_KIND_FALLBACK {
		t.Fatalf("Kind = %s; want fallback", result.Kind)
	}
	if result.Reason != models.ERROR_KIND_UNUSABLE_CONTENT {
		t.Errorf("Reason = %s; want %s", result.Reason, models.ERROR_KIND_UNUSABLE_CONTENT)
	}
	if len(result.Data.Activities) != 25 {
		t.Errorf("Expected 25 fallback activities, got %d", len(result.Data.Activities))
	}
}

func TestBuildPrompt_EmbedsRequestFields(t *testing.T) {
	prompt := buildPrompt(testTripRequest())

	for _, fragment := range []string{
		"2 person(s)",
		"from London to Paris",
		"2 day(s)",
		"Motive: romantic",
		"Budget: 1000 USD",
		"including travel costs from London to Paris and back",
		"Return ONLY this JSON structure",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("Prompt missing fragment %q", fragment)
		}
	}
}

func TestBuildPrompt_ExcludingTravelCost(t *testing.T) {
	request := testTripRequest()
	request.IncludeTravelCost = false

	prompt := buildPrompt(request)
	if !strings.Contains(prompt, "(excluding travel costs)") {
		t.Error("Prompt missing the excluding-travel-costs note")
	}
	if strings.Contains(prompt, "IMPORTANT: Include comprehensive travel costs") {
		t.Error("Prompt should not ask for travel costs when excluded")
	}
}
