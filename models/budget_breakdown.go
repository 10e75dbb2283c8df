package models

// BudgetItem is a single line item inside a budget category.
type BudgetItem struct {
	Name          string  `json:"name"`
	Place         string  `json:"place"`
	CostPerPerson float64 `json:"costPerPerson"`
	Description   string  `json:"description"`
}

// BudgetCategory holds a category total plus its line items. Items are not
// guaranteed to sum to Total; both are derived independently from the budget.
type BudgetCategory struct {
	Total float64      `json:"total"`
	Items []BudgetItem `json:"items"`
}

// BudgetBreakdown maps the fixed spending categories. The "activities"
// category total is computed from selected activities, not stored here.
type BudgetBreakdown struct {
	Food          BudgetCategory `json:"food"`
	Travel        BudgetCategory `json:"travel"`
	Accommodation BudgetCategory `json:"accommodation"`
	Other         BudgetCategory `json:"other"`
}
