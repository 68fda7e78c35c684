package budget

import (
	"fmt"
	"sort"

	"github.com/de-tools/budget-bee/pkg/models/domain"
)

// flagRule inspects a computed report and contributes zero or more warnings.
// Rules never short-circuit each other; the report carries every warning
// whose condition holds, in rule-declaration order.
type flagRule func(t Thresholds, report domain.BudgetReport) []string

var flagRules = []flagRule{
	lowSavingsRate,
	overspend,
	categoryConcentration,
	lowEmergencyFund,
}

func (a *Analyzer) evaluateFlags(report domain.BudgetReport) []string {
	var flags []string
	for _, rule := range flagRules {
		flags = append(flags, rule(a.thresholds, report)...)
	}
	return flags
}

func lowSavingsRate(t Thresholds, report domain.BudgetReport) []string {
	if report.SavingsRate.Defined && report.SavingsRate.Value < t.MinSavingsRate {
		return []string{"Low savings rate."}
	}
	return nil
}

func overspend(_ Thresholds, report domain.BudgetReport) []string {
	if report.Surplus < 0 {
		return []string{"Spending exceeds income."}
	}
	return nil
}

// categoryConcentration flags every category whose share of total expenses
// exceeds the ceiling, largest share first.
func categoryConcentration(t Thresholds, report domain.BudgetReport) []string {
	var offenders []string
	for category, share := range report.CategoryShares {
		if share > t.MaxCategoryShare {
			offenders = append(offenders, category)
		}
	}
	sort.Slice(offenders, func(i, j int) bool {
		si, sj := report.CategoryShares[offenders[i]], report.CategoryShares[offenders[j]]
		if si != sj {
			return si > sj
		}
		return offenders[i] < offenders[j]
	})

	var flags []string
	for _, category := range offenders {
		flags = append(flags, fmt.Sprintf("High concentration in %s.", category))
	}
	return flags
}

func lowEmergencyFund(t Thresholds, report domain.BudgetReport) []string {
	if report.EmergencyFundMonths.Defined && report.EmergencyFundMonths.Value < t.MinEmergencyFundMonths {
		return []string{fmt.Sprintf("Emergency fund below %g months.", t.MinEmergencyFundMonths)}
	}
	return nil
}
