package goal

import (
	"math"
	"testing"
	"time"

	"github.com/de-tools/budget-bee/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedPlanner() *Planner {
	return NewPlannerAt(func() time.Time { return testNow })
}

func TestPlan_SixMonthGoal(t *testing.T) {
	planner := fixedPlanner()

	tests := []struct {
		name         string
		surplus      float64
		wantFeasible bool
		wantShort    float64
	}{
		{name: "surplus below requirement", surplus: 3000, wantFeasible: false, wantShort: 25000.0/6 - 3000},
		{name: "surplus above requirement", surplus: 5000, wantFeasible: true, wantShort: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := planner.Plan(domain.GoalRequest{
				TargetAmount:   25000,
				Deadline:       domain.DeadlineIn(6),
				MonthlySurplus: tt.surplus,
			})
			require.NoError(t, err)

			assert.Equal(t, 6, plan.MonthsRemaining)
			assert.InDelta(t, 4166.67, plan.RequiredMonthlySaving, 0.01)
			assert.Equal(t, tt.wantFeasible, plan.Feasible)
			assert.InDelta(t, tt.wantShort, plan.Shortfall, 0.01)
		})
	}
}

func TestPlan_MonthsRemainingCeiling(t *testing.T) {
	planner := fixedPlanner()

	tests := []struct {
		name       string
		deadline   time.Time
		wantMonths int
	}{
		{name: "ten days away rounds up to one month", deadline: testNow.AddDate(0, 0, 10), wantMonths: 1},
		{name: "exactly six months", deadline: testNow.AddDate(0, 6, 0), wantMonths: 6},
		{name: "six months and a day", deadline: testNow.AddDate(0, 6, 1), wantMonths: 7},
		{name: "one hour away still counts as a month", deadline: testNow.Add(time.Hour), wantMonths: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := planner.Plan(domain.GoalRequest{
				TargetAmount:   1200,
				Deadline:       domain.DeadlineAt(tt.deadline),
				MonthlySurplus: 100,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantMonths, plan.MonthsRemaining)
		})
	}
}

func TestPlan_InvalidDeadline(t *testing.T) {
	planner := fixedPlanner()

	tests := []struct {
		name     string
		deadline domain.Deadline
	}{
		{name: "yesterday", deadline: domain.DeadlineAt(testNow.AddDate(0, 0, -1))},
		{name: "exactly now", deadline: domain.DeadlineAt(testNow)},
		{name: "zero months", deadline: domain.DeadlineIn(0)},
		{name: "negative months", deadline: domain.DeadlineIn(-3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := planner.Plan(domain.GoalRequest{
				TargetAmount:   1000,
				Deadline:       tt.deadline,
				MonthlySurplus: 100,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidDeadline)
		})
	}
}

func TestPlan_InvalidInput(t *testing.T) {
	planner := fixedPlanner()

	tests := []struct {
		name string
		req  domain.GoalRequest
	}{
		{
			name: "zero target",
			req:  domain.GoalRequest{TargetAmount: 0, Deadline: domain.DeadlineIn(6), MonthlySurplus: 100},
		},
		{
			name: "negative target",
			req:  domain.GoalRequest{TargetAmount: -500, Deadline: domain.DeadlineIn(6), MonthlySurplus: 100},
		},
		{
			name: "NaN target",
			req:  domain.GoalRequest{TargetAmount: math.NaN(), Deadline: domain.DeadlineIn(6), MonthlySurplus: 100},
		},
		{
			name: "infinite surplus",
			req:  domain.GoalRequest{TargetAmount: 100, Deadline: domain.DeadlineIn(6), MonthlySurplus: math.Inf(1)},
		},
		{
			name: "negative current savings",
			req: domain.GoalRequest{
				TargetAmount: 100, Deadline: domain.DeadlineIn(6), CurrentSavings: -1, MonthlySurplus: 100,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := planner.Plan(tt.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestPlan_NegativeSurplus(t *testing.T) {
	planner := fixedPlanner()

	plan, err := planner.Plan(domain.GoalRequest{
		TargetAmount:   1200,
		Deadline:       domain.DeadlineIn(12),
		MonthlySurplus: -50,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, plan.RequiredMonthlySaving)
	assert.False(t, plan.Feasible)
	assert.Equal(t, 150.0, plan.Shortfall)
}

func TestPlan_CurrentSavingsReducesRequirement(t *testing.T) {
	planner := fixedPlanner()

	plan, err := planner.Plan(domain.GoalRequest{
		TargetAmount:   1200,
		Deadline:       domain.DeadlineIn(6),
		CurrentSavings: 600,
		MonthlySurplus: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, plan.RequiredMonthlySaving)
	assert.True(t, plan.Feasible)
	assert.Equal(t, 0.0, plan.Shortfall)
}

func TestPlan_SavingsBeyondTarget(t *testing.T) {
	planner := fixedPlanner()

	plan, err := planner.Plan(domain.GoalRequest{
		TargetAmount:   1000,
		Deadline:       domain.DeadlineIn(3),
		CurrentSavings: 1500,
		MonthlySurplus: 0,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, plan.RequiredMonthlySaving)
	assert.True(t, plan.Feasible)
	assert.Equal(t, 0.0, plan.Shortfall)
}

func TestPlan_Idempotent(t *testing.T) {
	planner := fixedPlanner()
	req := domain.GoalRequest{
		TargetAmount:   25000,
		Deadline:       domain.DeadlineAt(testNow.AddDate(0, 6, 0)),
		MonthlySurplus: 3000,
	}

	first, err := planner.Plan(req)
	require.NoError(t, err)
	second, err := planner.Plan(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
