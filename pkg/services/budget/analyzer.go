// Package budget computes aggregate metrics, a savings rate, an
// emergency-fund runway estimate, and red-flag warnings from a single month
// of income and categorized expenses.
package budget

import (
	"fmt"
	"math"
	"sort"

	"github.com/de-tools/budget-bee/pkg/models/domain"
)

const topCategoryCount = 3

// Thresholds hold the red-flag limits. The defaults are deliberately
// unsophisticated heuristics; override them via configuration, not here.
type Thresholds struct {
	MinSavingsRate         float64 `mapstructure:"min_savings_rate"`
	MaxCategoryShare       float64 `mapstructure:"max_category_share"`
	MinEmergencyFundMonths float64 `mapstructure:"min_emergency_fund_months"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		MinSavingsRate:         0.10,
		MaxCategoryShare:       0.40,
		MinEmergencyFundMonths: 3,
	}
}

// Analyzer is a stateless budget analyzer. A single instance is safe for
// concurrent use; every call reads only its own input.
type Analyzer struct {
	thresholds Thresholds
}

func NewAnalyzer(thresholds Thresholds) *Analyzer {
	return &Analyzer{thresholds: thresholds}
}

// Analyze validates the record and produces its report. Identical input
// always yields an identical report; the input is never mutated.
func (a *Analyzer) Analyze(rec domain.IncomeExpenseRecord) (domain.BudgetReport, error) {
	if err := validateRecord(rec); err != nil {
		return domain.BudgetReport{}, err
	}

	total := 0.0
	for _, amount := range rec.Expenses {
		total += amount
	}
	surplus := rec.Income - total

	savingsRate := domain.UndefinedRatio()
	if rec.Income > 0 {
		savingsRate = domain.DefinedRatio(surplus / rec.Income)
	}

	// Runway is measured against one month of tracked spending. The month's
	// surplus stands in for liquid savings unless the caller supplied a
	// balance explicitly.
	runwayBalance := surplus
	if rec.LiquidSavings != nil {
		runwayBalance = *rec.LiquidSavings
	}
	emergencyMonths := domain.UndefinedRatio()
	if total > 0 {
		emergencyMonths = domain.DefinedRatio(runwayBalance / total)
	}

	shares := categoryShares(rec.Expenses, total)

	report := domain.BudgetReport{
		TotalExpenses:       total,
		Surplus:             surplus,
		SavingsRate:         savingsRate,
		EmergencyFundMonths: emergencyMonths,
		CategoryShares:      shares,
		TopCategories:       topCategories(rec.Expenses),
	}
	report.RedFlags = a.evaluateFlags(report)
	return report, nil
}

// Thresholds returns the limits this analyzer evaluates flags against.
func (a *Analyzer) Thresholds() Thresholds {
	return a.thresholds
}

func validateRecord(rec domain.IncomeExpenseRecord) error {
	if err := checkAmount("income", rec.Income); err != nil {
		return err
	}
	for _, category := range sortedCategories(rec.Expenses) {
		if err := checkAmount(fmt.Sprintf("expense %q", category), rec.Expenses[category]); err != nil {
			return err
		}
	}
	if rec.LiquidSavings != nil {
		if err := checkAmount("liquid savings", *rec.LiquidSavings); err != nil {
			return err
		}
	}
	return nil
}

func checkAmount(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is not finite", domain.ErrInvalidInput, name)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s is negative", domain.ErrInvalidInput, name)
	}
	return nil
}

func categoryShares(expenses map[string]float64, total float64) map[string]float64 {
	if total <= 0 {
		return map[string]float64{}
	}
	shares := make(map[string]float64, len(expenses))
	for category, amount := range expenses {
		shares[category] = amount / total
	}
	return shares
}

// topCategories returns up to three category names by descending amount,
// ties broken by name so reruns stay byte-identical.
func topCategories(expenses map[string]float64) []string {
	names := sortedCategories(expenses)
	sort.SliceStable(names, func(i, j int) bool {
		return expenses[names[i]] > expenses[names[j]]
	})
	if len(names) > topCategoryCount {
		names = names[:topCategoryCount]
	}
	return names
}

func sortedCategories(expenses map[string]float64) []string {
	names := make([]string, 0, len(expenses))
	for category := range expenses {
		names = append(names, category)
	}
	sort.Strings(names)
	return names
}
