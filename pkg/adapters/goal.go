package adapters

import (
	"fmt"

	"github.com/de-tools/budget-bee/pkg/models/api"
	"github.com/de-tools/budget-bee/pkg/models/domain"
)

func MapGoalPlanDomainToApi(plan domain.GoalPlan) api.GoalPlan {
	return api.GoalPlan{
		MonthsRemaining:       plan.MonthsRemaining,
		RequiredMonthlySaving: plan.RequiredMonthlySaving,
		Feasible:              plan.Feasible,
		Shortfall:             plan.Shortfall,
	}
}

// MapGoalPlanToPresentation shapes a goal plan for the terminal reporter.
func MapGoalPlanToPresentation(plan domain.GoalPlan, currency string) *domain.Report {
	verdict := "on track"
	if !plan.Feasible {
		verdict = "not feasible at current surplus"
	}

	return &domain.Report{
		Title:    "Goal Plan",
		Currency: currency,
		Sections: []domain.ReportSection{{
			Title: "Contribution Schedule",
			Summary: map[string]interface{}{
				"Months Remaining": plan.MonthsRemaining,
				"Verdict":          verdict,
			},
			Details: []domain.ReportDetail{
				{
					Name:        "Required Saving",
					Value:       fmt.Sprintf("%.2f", plan.RequiredMonthlySaving),
					Unit:        "per month",
					Description: "monthly contribution needed to hit the target",
				},
				{
					Name:        "Shortfall",
					Value:       fmt.Sprintf("%.2f", plan.Shortfall),
					Unit:        "per month",
					Description: "gap between required saving and current surplus",
				},
			},
		}},
	}
}
