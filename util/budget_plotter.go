package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"tp-server/models"
)

// PlotBudgetBreakdown generates an HTML file rendering the budget split as a
// pie chart. Handy for eyeballing the category proportions of a result.
func PlotBudgetBreakdown(breakdown models.BudgetBreakdown, outputPath string) {
	items := []opts.PieData{
		{Name: "Food", Value: breakdown.Food.Total},
		{Name: "Travel", Value: breakdown.Travel.Total},
		{Name: "Accommodation", Value: breakdown.Accommodation.Total},
		{Name: "Other", Value: breakdown.Other.Total},
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Budget Breakdown",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Budget Breakdown by Category",
		}),
	)

	pie.AddSeries("Budget", items,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {c}",
		}),
	)

	// Create an HTML file to render the chart.
	f, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	// Render the chart into the HTML file.
	if err := pie.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Budget breakdown chart generated: " + outputPath)
}
