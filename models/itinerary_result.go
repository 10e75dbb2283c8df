package models

// ItineraryResult is the sole return shape of the generation pipeline. Both
// the Gemini path and the fallback path must produce a valid value.
type ItineraryResult struct {
	Itinerary          Itinerary       `json:"itinerary"`
	Activities         []Activity      `json:"activities"`
	BudgetBreakdown    BudgetBreakdown `json:"budgetBreakdown"`
	TotalEstimatedCost float64         `json:"totalEstimatedCost"`
}
