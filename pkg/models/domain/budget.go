package domain

// Ratio is a numeric result that may be undefined. Income-relative and
// expense-relative divisions hit legitimate domain states (no income yet, no
// tracked expenses) where the ratio has no value; those are represented here
// instead of raising an error.
type Ratio struct {
	Value   float64
	Defined bool
}

// DefinedRatio wraps a computed value.
func DefinedRatio(v float64) Ratio {
	return Ratio{Value: v, Defined: true}
}

// UndefinedRatio is the sentinel for ratios with no value.
func UndefinedRatio() Ratio {
	return Ratio{}
}

// IncomeExpenseRecord is one month of income and categorized spending.
// LiquidSavings, when set, replaces the month's surplus as the numerator of
// the emergency-fund runway estimate.
type IncomeExpenseRecord struct {
	Income        float64
	Expenses      map[string]float64
	LiquidSavings *float64
}

// BudgetReport is the full outcome of analyzing one IncomeExpenseRecord.
// CategoryShares holds each category's fraction of total expenses,
// TopCategories the three largest categories by amount.
type BudgetReport struct {
	TotalExpenses       float64
	Surplus             float64
	SavingsRate         Ratio
	EmergencyFundMonths Ratio
	CategoryShares      map[string]float64
	TopCategories       []string
	RedFlags            []string
}
