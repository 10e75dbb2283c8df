package models

// DayPlan holds one day's scheduled activities. Day numbers are 1-based and
// contiguous on the fallback path; the model path is best-effort.
type DayPlan struct {
	Day        int                `json:"day"`
	Date       string             `json:"date"`
	Activities []TimeSlotActivity `json:"activities"`
}

type Itinerary struct {
	Days []DayPlan `json:"days"`
}
