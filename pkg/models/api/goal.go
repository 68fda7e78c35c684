package api

// PlanRequest is the body of POST /api/v1/goals/plan. Exactly one of
// DeadlineDate (YYYY-MM-DD) and DeadlineMonths must be set.
type PlanRequest struct {
	TargetAmount   float64 `json:"target_amount"`
	DeadlineDate   string  `json:"deadline_date,omitempty"`
	DeadlineMonths int     `json:"deadline_months,omitempty"`
	CurrentSavings float64 `json:"current_savings,omitempty"`
	MonthlySurplus float64 `json:"monthly_surplus"`
}

type GoalPlan struct {
	MonthsRemaining       int     `json:"months_remaining"`
	RequiredMonthlySaving float64 `json:"required_monthly_saving"`
	Feasible              bool    `json:"feasible"`
	Shortfall             float64 `json:"shortfall"`
	Narrative             string  `json:"narrative,omitempty"`
}
