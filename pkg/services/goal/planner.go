// Package goal turns a savings target and a deadline into the required
// monthly contribution and a feasibility verdict.
package goal

import (
	"fmt"
	"math"
	"time"

	"github.com/de-tools/budget-bee/pkg/models/domain"
)

// Planner resolves deadlines against an injectable clock; everything else is
// a pure function of the request. Safe for concurrent use.
type Planner struct {
	now func() time.Time
}

func NewPlanner() *Planner {
	return &Planner{now: time.Now}
}

// NewPlannerAt pins the planner's notion of "now". Calendar-date deadlines
// resolve relative to the given instant.
func NewPlannerAt(now func() time.Time) *Planner {
	return &Planner{now: now}
}

// Plan validates the request and computes the contribution schedule.
// The deadline must resolve to at least one whole month; months are counted
// with a ceiling so a deadline a few days out still demands a full month's
// saving.
func (p *Planner) Plan(req domain.GoalRequest) (domain.GoalPlan, error) {
	if err := validateRequest(req); err != nil {
		return domain.GoalPlan{}, err
	}

	months, err := p.monthsRemaining(req.Deadline)
	if err != nil {
		return domain.GoalPlan{}, err
	}

	required := (req.TargetAmount - req.CurrentSavings) / float64(months)
	if required < 0 {
		required = 0
	}

	shortfall := required - req.MonthlySurplus
	if shortfall < 0 {
		shortfall = 0
	}

	return domain.GoalPlan{
		MonthsRemaining:       months,
		RequiredMonthlySaving: required,
		Feasible:              req.MonthlySurplus >= required,
		Shortfall:             shortfall,
	}, nil
}

func (p *Planner) monthsRemaining(d domain.Deadline) (int, error) {
	if !d.Date.IsZero() {
		months := 0
		for t := p.now(); t.Before(d.Date); t = t.AddDate(0, 1, 0) {
			months++
		}
		if months == 0 {
			return 0, fmt.Errorf("%w: deadline %s is not in the future",
				domain.ErrInvalidDeadline, d.Date.Format("2006-01-02"))
		}
		return months, nil
	}
	if d.Months < 1 {
		return 0, fmt.Errorf("%w: %d months remaining", domain.ErrInvalidDeadline, d.Months)
	}
	return d.Months, nil
}

func validateRequest(req domain.GoalRequest) error {
	if math.IsNaN(req.TargetAmount) || math.IsInf(req.TargetAmount, 0) || req.TargetAmount <= 0 {
		return fmt.Errorf("%w: target amount must be a positive finite number", domain.ErrInvalidInput)
	}
	if math.IsNaN(req.CurrentSavings) || math.IsInf(req.CurrentSavings, 0) || req.CurrentSavings < 0 {
		return fmt.Errorf("%w: current savings must be a non-negative finite number", domain.ErrInvalidInput)
	}
	if math.IsNaN(req.MonthlySurplus) || math.IsInf(req.MonthlySurplus, 0) {
		return fmt.Errorf("%w: monthly surplus is not finite", domain.ErrInvalidInput)
	}
	return nil
}
