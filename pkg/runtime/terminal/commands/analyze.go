package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/de-tools/budget-bee/pkg/adapters"
	"github.com/de-tools/budget-bee/pkg/models/domain"
	"github.com/de-tools/budget-bee/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// Analyzer is the slice of the budget service the CLI needs.
type Analyzer interface {
	Analyze(rec domain.IncomeExpenseRecord) (domain.BudgetReport, error)
}

// Adviser contributes tips to the analyze command's output. Optional.
type Adviser interface {
	Advise(rec domain.IncomeExpenseRecord, report domain.BudgetReport, persona domain.Persona) []string
}

type AnalyzeCmd struct {
	income        float64
	expenses      []string
	liquidSavings float64
	persona       string
	currency      string
	analyzer      Analyzer
	adviser       Adviser
	reporter      *export.Reporter
}

func NewAnalyzeCmd(analyzer Analyzer, adviser Adviser, reporter *export.Reporter, currency string) *cobra.Command {
	ac := &AnalyzeCmd{analyzer: analyzer, adviser: adviser, reporter: reporter, currency: currency}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a month of income and expenses",
		RunE:  ac.run,
	}

	// Define flags
	cmd.Flags().Float64Var(&ac.income, "income", 0, "Monthly income")
	cmd.Flags().StringArrayVar(&ac.expenses, "expense", nil, "Expense as category=amount (repeatable)")
	cmd.Flags().Float64Var(&ac.liquidSavings, "liquid-savings", 0, "Liquid savings balance for the runway estimate")
	cmd.Flags().StringVar(&ac.persona, "persona", "", "Persona for tips (student, professional)")

	// Mark required flags
	_ = cmd.MarkFlagRequired("income")
	_ = cmd.MarkFlagRequired("expense")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	expenses, err := parseExpenses(ac.expenses)
	if err != nil {
		return err
	}

	rec := domain.IncomeExpenseRecord{
		Income:   ac.income,
		Expenses: expenses,
	}
	if cmd.Flags().Changed("liquid-savings") {
		rec.LiquidSavings = &ac.liquidSavings
	}

	report, err := ac.analyzer.Analyze(rec)
	if err != nil {
		return fmt.Errorf("failed to analyze budget: %w", err)
	}

	presentation := adapters.MapBudgetReportToPresentation(report, ac.currency)
	if ac.adviser != nil {
		tips := ac.adviser.Advise(rec, report, domain.Persona(ac.persona))
		if len(tips) > 0 {
			var details []domain.ReportDetail
			for _, tip := range tips {
				details = append(details, domain.ReportDetail{Name: "Tip", Value: tip})
			}
			presentation.Sections = append(presentation.Sections, domain.ReportSection{
				Title:   "Tips",
				Details: details,
			})
		}
	}

	return ac.reporter.Handle(presentation)
}

func parseExpenses(pairs []string) (map[string]float64, error) {
	expenses := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		category, raw, found := strings.Cut(pair, "=")
		if !found || category == "" {
			return nil, fmt.Errorf("invalid expense %q, expected category=amount", pair)
		}
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount in expense %q: %w", pair, err)
		}
		if _, exists := expenses[category]; exists {
			return nil, fmt.Errorf("duplicate expense category %q", category)
		}
		expenses[category] = amount
	}
	return expenses, nil
}
