package domain

import "time"

// Deadline is either a calendar date or a plain month count. When Date is
// set it takes precedence over Months.
type Deadline struct {
	Date   time.Time
	Months int
}

// DeadlineAt builds a calendar-date deadline.
func DeadlineAt(date time.Time) Deadline {
	return Deadline{Date: date}
}

// DeadlineIn builds a deadline a fixed number of months out.
func DeadlineIn(months int) Deadline {
	return Deadline{Months: months}
}

// GoalRequest describes a savings goal. CurrentSavings is the amount already
// set aside toward the goal; MonthlySurplus may be zero or negative.
type GoalRequest struct {
	TargetAmount   float64
	Deadline       Deadline
	CurrentSavings float64
	MonthlySurplus float64
}

// GoalPlan is the planner's verdict for one GoalRequest. Shortfall is zero
// exactly when the plan is feasible.
type GoalPlan struct {
	MonthsRemaining       int
	RequiredMonthlySaving float64
	Feasible              bool
	Shortfall             float64
}
