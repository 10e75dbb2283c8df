// Package fallback produces a complete, deterministic ItineraryResult with
// no network dependency. It is the safety net behind every failure mode of
// the Gemini pipeline: whatever goes wrong upstream, the caller still gets
// a structurally valid itinerary for the requested trip.
package fallback

import (
	"fmt"
	"math"
	"time"

	"tp-server/models"
)

const ACTIVITY_DEFAULT_TIME = "09:00"

// currencyMultipliers converts the catalog's reference (USD) costs into the
// requested currency. Rough factors, enough for a believable sample plan.
var currencyMultipliers = map[string]float64{
	"USD": 1.0,
	"EUR": 0.85,
	"GBP": 0.75,
	"JPY": 110,
	"INR": 75,
	"CAD": 1.25,
	"AUD": 1.35,
}

// CurrencyMultiplier returns the conversion factor for a currency code.
// Unknown codes fall back to 1.0.
func CurrencyMultiplier(currencyCode string) float64 {
	if multiplier, ok := currencyMultipliers[currencyCode]; ok {
		return multiplier
	}
	return 1.0
}

// catalogActivity is one template entry; costs are in the reference currency.
type catalogActivity struct {
	name        string
	place       string
	description string
	cost        float64
	duration    string
	bestTime    string
}

var activityCatalog = []catalogActivity{
	{"City Walking Tour", "", "Explore the historic landmarks and cultural sites", 25, "3 hours", "morning"},
	{"Museum Visit", "National Museum", "Learn about local history and culture", 15, "2 hours", "afternoon"},
	{"Scenic Viewpoint", "Mountain Lookout", "Enjoy panoramic views of the city", 10, "1 hour", "evening"},
	{"Art Gallery Tour", "Modern Art Gallery", "Discover contemporary local and international art", 20, "2 hours", "afternoon"},
	{"Cultural Workshop", "Art Center", "Learn traditional crafts and techniques", 45, "3 hours", "afternoon"},
	{"Nature Hike", "National Park", "Explore natural trails and observe local wildlife", 30, "4 hours", "morning"},
	{"Boat Tour", "City Harbor", "Scenic boat ride with city skyline views", 35, "2 hours", "afternoon"},
	{"Cooking Class", "Culinary School", "Learn to prepare authentic local dishes", 60, "3 hours", "morning"},
	{"Photography Tour", "Historic District", "Capture the best shots with a professional guide", 40, "2 hours", "evening"},
	{"Wine Tasting", "Local Winery", "Sample regional wines and learn about local viticulture", 50, "2 hours", "afternoon"},
	{"Architecture Tour", "Downtown District", "Explore iconic buildings and architectural styles", 25, "2 hours", "morning"},
	{"Music Performance", "Concert Hall", "Attend a classical or traditional music concert", 40, "2 hours", "evening"},
	{"Market Tour", "Local Market", "Explore local markets and taste regional specialties", 20, "2 hours", "morning"},
	{"Bike Tour", "City Streets", "Cycling tour through scenic neighborhoods", 30, "3 hours", "morning"},
	{"Theater Show", "Historic Theater", "Watch a local theater production or musical", 35, "2 hours", "evening"},
	{"Garden Tour", "Botanical Gardens", "Explore beautiful gardens and exotic plants", 15, "2 hours", "afternoon"},
	{"Nightlife Tour", "Entertainment District", "Experience the local nightlife and bars", 45, "3 hours", "evening"},
	{"Adventure Park", "Outdoor Adventure Center", "Try zip-lining, rock climbing, and outdoor activities", 55, "4 hours", "morning"},
	{"Historical Site Visit", "Ancient Ruins", "Explore historical monuments and archaeological sites", 20, "2 hours", "morning"},
	{"Spa Experience", "Luxury Spa", "Relax with traditional treatments and massages", 80, "2 hours", "afternoon"},
	{"Food Market Tour", "Local Market", "Explore local cuisine and food culture", 35, "2 hours", "morning"},
	{"Photography Walk", "Scenic Routes", "Capture the best photo spots with a guide", 40, "3 hours", "evening"},
	{"Local Festival", "Town Square", "Experience traditional celebrations and events", 15, "4 hours", "afternoon"},
	{"Wine Tasting", "Vineyard", "Sample local wines and learn about production", 60, "2 hours", "afternoon"},
	{"Hiking Trail", "Nature Reserve", "Explore scenic hiking paths and nature", 25, "4 hours", "morning"},
}

// catalogActivities instantiates the template for a destination, converting
// costs with the currency multiplier (rounded to the nearest unit).
func catalogActivities(destinationPlace string, multiplier float64) []models.Activity {
	activities := make([]models.Activity, len(activityCatalog))
	for i, entry := range activityCatalog {
		place := entry.place
		if place == "" {
			place = fmt.Sprintf("%s Historic Center", destinationPlace)
		}
		activities[i] = models.Activity{
			ID:            fmt.Sprintf("%d", i+1),
			Name:          entry.name,
			Place:         place,
			Description:   entry.description,
			CostPerPerson: math.Round(entry.cost * multiplier),
			Category:      models.CATEGORY_ACTIVITIES,
			Duration:      entry.duration,
			BestTime:      entry.bestTime,
		}
	}
	return activities
}

// BuildBudgetBreakdown allocates fixed shares of the budget: food 30%,
// travel 25%, accommodation 20%, other 5%. Line items are floored shares of
// the whole budget, not of their category total, so items do not necessarily
// sum to the category's total. That mismatch is the documented contract of
// the sample data; do not reconcile it here.
func BuildBudgetBreakdown(budgetAmount float64, sourcePlace, destinationPlace string) models.BudgetBreakdown {
	return models.BudgetBreakdown{
		Food: models.BudgetCategory{
			Total: math.Floor(budgetAmount * 0.3),
			Items: []models.BudgetItem{
				{Name: "Local Restaurant", Place: "Downtown", CostPerPerson: math.Floor(budgetAmount * 0.15), Description: "Traditional local cuisine"},
				{Name: "Street Food", Place: "Market Area", CostPerPerson: math.Floor(budgetAmount * 0.1), Description: "Authentic street food experience"},
				{Name: "Café", Place: "City Center", CostPerPerson: math.Floor(budgetAmount * 0.05), Description: "Coffee and light meals"},
			},
		},
		Travel: buildTravelCosts(budgetAmount, sourcePlace, destinationPlace),
		Accommodation: models.BudgetCategory{
			Total: math.Floor(budgetAmount * 0.2),
			Items: []models.BudgetItem{
				{Name: "Hotel", Place: "City Center", CostPerPerson: math.Floor(budgetAmount * 0.2), Description: "Comfortable accommodation"},
			},
		},
		Other: models.BudgetCategory{
			Total: math.Floor(budgetAmount * 0.05),
			Items: []models.BudgetItem{
				{Name: "Souvenirs", Place: "Local Shops", CostPerPerson: math.Floor(budgetAmount * 0.03), Description: "Memorabilia and gifts"},
				{Name: "Miscellaneous", Place: "Various", CostPerPerson: math.Floor(budgetAmount * 0.02), Description: "Unexpected expenses"},
			},
		},
	}
}

// buildTravelCosts splits the 25% travel share into named legs: outbound
// flight 40%, airport transfer 20%, local transport 30%, return flight 10%.
func buildTravelCosts(budgetAmount float64, sourcePlace, destinationPlace string) models.BudgetCategory {
	baseCost := math.Floor(budgetAmount * 0.25)
	return models.BudgetCategory{
		Total: baseCost,
		Items: []models.BudgetItem{
			{Name: "Flight", Place: fmt.Sprintf("%s to %s", sourcePlace, destinationPlace), CostPerPerson: math.Floor(baseCost * 0.4), Description: fmt.Sprintf("Round-trip flight from %s to %s", sourcePlace, destinationPlace)},
			{Name: "Airport Transfer", Place: "Airport to Hotel", CostPerPerson: math.Floor(baseCost * 0.2), Description: "Taxi or shuttle service"},
			{Name: "Local Transport", Place: destinationPlace, CostPerPerson: math.Floor(baseCost * 0.3), Description: "Public transport and taxis in destination"},
			{Name: "Return Flight", Place: fmt.Sprintf("%s to %s", destinationPlace, sourcePlace), CostPerPerson: math.Floor(baseCost * 0.1), Description: fmt.Sprintf("Return flight from %s to %s", destinationPlace, sourcePlace)},
		},
	}
}

// DistributeActivitiesAcrossDays splits the activity list into dayCount
// contiguous chunks of ceil(len/dayCount), dating days sequentially from
// startDate. Every slot gets the same 09:00 time; the sample plan does not
// stagger times within a day.
func DistributeActivitiesAcrossDays(activities []models.Activity, dayCount int, startDate time.Time) []models.DayPlan {
	activitiesPerDay := int(math.Ceil(float64(len(activities)) / float64(dayCount)))

	days := make([]models.DayPlan, 0, dayCount)
	for i := 1; i <= dayCount; i++ {
		startIndex := (i - 1) * activitiesPerDay
		endIndex := startIndex + activitiesPerDay
		if endIndex > len(activities) {
			endIndex = len(activities)
		}
		if startIndex > len(activities) {
			startIndex = len(activities)
		}

		slots := make([]models.TimeSlotActivity, 0, endIndex-startIndex)
		for _, activity := range activities[startIndex:endIndex] {
			slots = append(slots, models.TimeSlotActivity{
				Time:          ACTIVITY_DEFAULT_TIME,
				Activity:      activity.Name,
				Place:         activity.Place,
				Description:   activity.Description,
				CostPerPerson: activity.CostPerPerson,
				Category:      activity.Category,
			})
		}

		days = append(days, models.DayPlan{
			Day:        i,
			Date:       startDate.AddDate(0, 0, i-1).Format("2006-01-02"),
			Activities: slots,
		})
	}
	return days
}

// GenerateItinerary builds the full fallback result for a trip request.
// Pure given its inputs: startDate anchors the day dates, nothing is random.
// TotalEstimatedCost passes the raw budget through instead of summing
// category totals; the budget page presents it as the user's budget.
func GenerateItinerary(request models.TripRequest, startDate time.Time) *models.ItineraryResult {
	multiplier := CurrencyMultiplier(request.CurrencyCode)
	activities := catalogActivities(request.DestinationPlace, multiplier)

	return &models.ItineraryResult{
		Itinerary: models.Itinerary{
			Days: DistributeActivitiesAcrossDays(activities, request.DayCount, startDate),
		},
		Activities:         activities,
		BudgetBreakdown:    BuildBudgetBreakdown(request.BudgetAmount, request.SourcePlace, request.DestinationPlace),
		TotalEstimatedCost: request.BudgetAmount,
	}
}
