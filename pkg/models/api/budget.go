package api

// AnalyzeRequest is the body of POST /api/v1/budget/analyze.
type AnalyzeRequest struct {
	Income        float64            `json:"income"`
	Expenses      map[string]float64 `json:"expenses"`
	LiquidSavings *float64           `json:"liquid_savings,omitempty"`
	Persona       string             `json:"persona,omitempty"`
}

// BudgetReport mirrors the domain report. Undefined ratios are serialized as
// zero with their *_defined marker set to false.
type BudgetReport struct {
	TotalExpenses              float64            `json:"total_expenses"`
	Surplus                    float64            `json:"surplus"`
	SavingsRate                float64            `json:"savings_rate"`
	SavingsRateDefined         bool               `json:"savings_rate_defined"`
	EmergencyFundMonths        float64            `json:"emergency_fund_months"`
	EmergencyFundMonthsDefined bool               `json:"emergency_fund_months_defined"`
	CategoryShares             map[string]float64 `json:"category_shares"`
	TopCategories              []string           `json:"top_categories"`
	RedFlags                   []string           `json:"red_flags"`
	Tips                       []string           `json:"tips,omitempty"`
	Narrative                  string             `json:"narrative,omitempty"`
}
