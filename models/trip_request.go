package models

import "fmt"

// Trip motives supported by the planner form.
const (
	MOTIVE_ROMANTIC   = "romantic"
	MOTIVE_EDUCATIVE  = "educative"
	MOTIVE_NATURE     = "nature"
	MOTIVE_ADVENTURE  = "adventure"
	MOTIVE_CULTURAL   = "cultural"
	MOTIVE_RELAXATION = "relaxation"
)

// TripRequest is the immutable input of one itinerary generation attempt.
type TripRequest struct {
	DestinationPlace  string  `json:"destinationPlace"`
	SourcePlace       string  `json:"sourcePlace"`
	Motive            string  `json:"motive"`
	BudgetAmount      float64 `json:"budgetAmount"`
	CurrencyCode      string  `json:"currencyCode"`
	IncludeTravelCost bool    `json:"includeTravelCost"`
	MemberCount       int     `json:"memberCount"`
	DayCount          int     `json:"dayCount"`
}

// Fingerprint returns a stable key for caching: two requests with the same
// fields always map to the same fingerprint.
func (t TripRequest) Fingerprint() string {
	return fmt.Sprintf("%s|%s|%s|%.2f|%s|%t|%d|%d",
		t.DestinationPlace, t.SourcePlace, t.Motive,
		t.BudgetAmount, t.CurrencyCode, t.IncludeTravelCost,
		t.MemberCount, t.DayCount)
}
