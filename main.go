package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"tp-server/di"
	"tp-server/fallback"
	"tp-server/models"
	"tp-server/util"
)

func testMockGenerator() {
	log.Println("Running: testMockGenerator")
	request := models.TripRequest{
		DestinationPlace:  "Paris",
		SourcePlace:       "London",
		Motive:            models.MOTIVE_ROMANTIC,
		BudgetAmount:      1000,
		CurrencyCode:      "USD",
		IncludeTravelCost: true,
		MemberCount:       2,
		DayCount:          2,
	}

	result := fallback.GenerateItinerary(request, time.Now())
	fmt.Printf("Generated %d activities across %d days\n", len(result.Activities), len(result.Itinerary.Days))

	util.PlotBudgetBreakdown(result.BudgetBreakdown, "./budget_breakdown.html")
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)

	// testMockGenerator()

	fmt.Println("starting server!")
	container.TripPlannerHttpServer.Start()
}
