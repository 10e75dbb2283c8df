package models

// Activity categories.
const (
	CATEGORY_ACTIVITIES    = "activities"
	CATEGORY_FOOD          = "food"
	CATEGORY_TRAVEL        = "travel"
	CATEGORY_ACCOMMODATION = "accommodation"
	CATEGORY_OTHER         = "other"
)

// Activity is a sightseeing/experience item, produced either by the model
// or by the fallback generator.
type Activity struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Place         string  `json:"place"`
	Description   string  `json:"description"`
	CostPerPerson float64 `json:"costPerPerson"`
	Category      string  `json:"category"`
	Duration      string  `json:"duration,omitempty"`
	BestTime      string  `json:"bestTime,omitempty"`
}

// TimeSlotActivity is the day-plan form of an activity with its scheduled
// HH:MM slot. Ordering within a day follows ascending time by construction.
type TimeSlotActivity struct {
	Time          string  `json:"time"`
	Activity      string  `json:"activity"`
	Place         string  `json:"place"`
	Description   string  `json:"description"`
	CostPerPerson float64 `json:"costPerPerson"`
	Category      string  `json:"category"`
}
