package adapters

import (
	"fmt"
	"maps"
	"sort"

	"github.com/de-tools/budget-bee/pkg/models/api"
	"github.com/de-tools/budget-bee/pkg/models/domain"
)

func MapBudgetReportDomainToApi(report domain.BudgetReport) api.BudgetReport {
	out := api.BudgetReport{
		TotalExpenses:              report.TotalExpenses,
		Surplus:                    report.Surplus,
		SavingsRateDefined:         report.SavingsRate.Defined,
		EmergencyFundMonthsDefined: report.EmergencyFundMonths.Defined,
		CategoryShares:             maps.Clone(report.CategoryShares),
		TopCategories:              append([]string{}, report.TopCategories...),
		RedFlags:                   append([]string{}, report.RedFlags...),
	}
	if report.SavingsRate.Defined {
		out.SavingsRate = report.SavingsRate.Value
	}
	if report.EmergencyFundMonths.Defined {
		out.EmergencyFundMonths = report.EmergencyFundMonths.Value
	}
	if out.CategoryShares == nil {
		out.CategoryShares = map[string]float64{}
	}
	return out
}

// MapBudgetReportToPresentation shapes an analyzed budget for the terminal
// reporter.
func MapBudgetReportToPresentation(report domain.BudgetReport, currency string) *domain.Report {
	summary := map[string]interface{}{
		"Total Expenses": fmt.Sprintf("%.2f", report.TotalExpenses),
		"Surplus":        fmt.Sprintf("%.2f", report.Surplus),
		"Savings Rate":   ratioText(report.SavingsRate, "%.1f%%", 100),
		"Emergency Fund": ratioText(report.EmergencyFundMonths, "%.1f months", 1),
	}

	var details []domain.ReportDetail
	for _, category := range sortedShareKeys(report.CategoryShares) {
		details = append(details, domain.ReportDetail{
			Name:        category,
			Value:       fmt.Sprintf("%.1f%%", report.CategoryShares[category]*100),
			Unit:        "of spend",
			Description: fmt.Sprintf("share of total expenses for %s", category),
		})
	}

	sections := []domain.ReportSection{{
		Title:   "Budget Summary",
		Summary: summary,
		Details: details,
	}}

	if len(report.RedFlags) > 0 {
		var flags []domain.ReportDetail
		for _, flag := range report.RedFlags {
			flags = append(flags, domain.ReportDetail{Name: "Warning", Value: flag})
		}
		sections = append(sections, domain.ReportSection{Title: "Red Flags", Details: flags})
	}

	return &domain.Report{
		Title:    "Budget Analysis",
		Currency: currency,
		Sections: sections,
	}
}

func ratioText(r domain.Ratio, format string, scale float64) string {
	if !r.Defined {
		return "undefined"
	}
	return fmt.Sprintf(format, r.Value*scale)
}

func sortedShareKeys(shares map[string]float64) []string {
	keys := make([]string, 0, len(shares))
	for k := range shares {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
