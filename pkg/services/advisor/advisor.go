// Package advisor derives spending tips from an analyzed budget using fixed
// benchmark shares of income.
package advisor

import (
	"fmt"
	"strings"

	"github.com/de-tools/budget-bee/pkg/models/domain"
)

// Benchmarks are income-relative ceilings per spending area plus the target
// savings rate (50/30/20 rule).
type Benchmarks struct {
	RentShare          float64 `mapstructure:"rent_share"`
	TransportShare     float64 `mapstructure:"transport_share"`
	DiningShare        float64 `mapstructure:"dining_share"`
	SubscriptionsShare float64 `mapstructure:"subscriptions_share"`
	TaxShare           float64 `mapstructure:"tax_share"`
	TargetSavingsRate  float64 `mapstructure:"target_savings_rate"`
	MaxTips            int     `mapstructure:"max_tips"`
}

func DefaultBenchmarks() Benchmarks {
	return Benchmarks{
		RentShare:          0.30,
		TransportShare:     0.15,
		DiningShare:        0.10,
		SubscriptionsShare: 0.05,
		TaxShare:           0.15,
		TargetSavingsRate:  0.20,
		MaxTips:            6,
	}
}

type Advisor struct {
	benchmarks Benchmarks
}

func NewAdvisor(benchmarks Benchmarks) *Advisor {
	return &Advisor{benchmarks: benchmarks}
}

// Advise returns at most MaxTips tips for the analyzed record, persona
// flavor last. Category names are matched case-insensitively.
func (a *Advisor) Advise(
	rec domain.IncomeExpenseRecord,
	report domain.BudgetReport,
	persona domain.Persona,
) []string {
	b := a.benchmarks
	income := rec.Income

	var tips []string
	addIf := func(cond bool, tip string) {
		if cond {
			tips = append(tips, tip)
		}
	}

	if income > 0 {
		addIf(categoryAmount(rec.Expenses, "rent") > b.RentShare*income,
			fmt.Sprintf("Rent >%s of income - consider renegotiating, sharing, or relocating.", pct(b.RentShare)))
		addIf(categoryAmount(rec.Expenses, "transport") > b.TransportShare*income,
			fmt.Sprintf("Transport >%s - explore passes, pooling, or WFH days.", pct(b.TransportShare)))
		addIf(categoryAmount(rec.Expenses, "dining") > b.DiningShare*income,
			fmt.Sprintf("Dining >%s - set a weekly cap and meal-prep twice a week.", pct(b.DiningShare)))
		addIf(categoryAmount(rec.Expenses, "subscriptions") > b.SubscriptionsShare*income,
			fmt.Sprintf("Subscriptions >%s - cancel duplicates or annualize for discounts.", pct(b.SubscriptionsShare)))
		addIf(categoryAmount(rec.Expenses, "taxes") > b.TaxShare*income,
			fmt.Sprintf("Taxes >%s - review eligible deductions and confirm your tax regime.", pct(b.TaxShare)))
	}
	addIf(report.SavingsRate.Defined && report.SavingsRate.Value < b.TargetSavingsRate,
		fmt.Sprintf("Increase savings rate toward %s (50/30/20 rule). Automate transfers on payday.", pct(b.TargetSavingsRate)))
	addIf(report.Surplus < 0,
		"Negative surplus - pause wants for a month and sell one unused item to plug the gap.")

	switch persona {
	case domain.PersonaStudent:
		tips = append(tips, "Student tip: use student IDs for transit and streaming discounts and library resources.")
	case domain.PersonaProfessional:
		tips = append(tips, "Pro tip: set up a salary auto-sweep into a liquid fund for idle cash.")
	}

	if b.MaxTips > 0 && len(tips) > b.MaxTips {
		tips = tips[:b.MaxTips]
	}
	return tips
}

func categoryAmount(expenses map[string]float64, name string) float64 {
	for category, amount := range expenses {
		if strings.EqualFold(category, name) {
			return amount
		}
	}
	return 0
}

func pct(share float64) string {
	return fmt.Sprintf("%g%%", share*100)
}
