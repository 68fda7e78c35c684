package adapters

import (
	"testing"

	"github.com/de-tools/budget-bee/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapGoalPlanDomainToApi(t *testing.T) {
	plan := domain.GoalPlan{
		MonthsRemaining:       6,
		RequiredMonthlySaving: 4166.67,
		Feasible:              false,
		Shortfall:             1166.67,
	}

	out := MapGoalPlanDomainToApi(plan)

	assert.Equal(t, 6, out.MonthsRemaining)
	assert.Equal(t, 4166.67, out.RequiredMonthlySaving)
	assert.False(t, out.Feasible)
	assert.Equal(t, 1166.67, out.Shortfall)
}

func TestMapGoalPlanToPresentation(t *testing.T) {
	tests := []struct {
		name    string
		plan    domain.GoalPlan
		verdict string
	}{
		{
			name:    "feasible",
			plan:    domain.GoalPlan{MonthsRemaining: 6, RequiredMonthlySaving: 4166.67, Feasible: true},
			verdict: "on track",
		},
		{
			name:    "infeasible",
			plan:    domain.GoalPlan{MonthsRemaining: 6, RequiredMonthlySaving: 4166.67, Shortfall: 1166.67},
			verdict: "not feasible at current surplus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pres := MapGoalPlanToPresentation(tt.plan, "USD")

			assert.Equal(t, "Goal Plan", pres.Title)
			require.Len(t, pres.Sections, 1)
			section := pres.Sections[0]
			assert.Equal(t, tt.verdict, section.Summary["Verdict"])
			assert.Equal(t, 6, section.Summary["Months Remaining"])
			require.Len(t, section.Details, 2)
			assert.Equal(t, "4166.67", section.Details[0].Value)
		})
	}
}
