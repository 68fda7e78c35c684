// Package narrative phrases computed results as prose. A text-generation
// capability may be attached; when it is absent or fails, a fixed templated
// explanation is returned instead. The numbers always come from the engine.
package narrative

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/de-tools/budget-bee/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Generator produces free text from a prompt. Implementations are expected
// to be optional at runtime.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	generator Generator // nil when enrichment is not configured
}

// NewService accepts a nil generator; the service then always falls back to
// its templates.
func NewService(generator Generator) *Service {
	return &Service{generator: generator}
}

var budgetTmpl = template.Must(template.New("budget").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(strings.TrimSpace(`
You spent {{printf "%.2f" .TotalExpenses}} this month{{if .SavingsRate.Defined}}, leaving a surplus of {{printf "%.2f" .Surplus}} ({{printf "%.1f" .SavingsRatePct}}% of income){{else}} with no income recorded{{end}}.
{{- if .EmergencyFundMonths.Defined}} Your emergency fund covers about {{printf "%.1f" .EmergencyFundMonths.Value}} months of expenses.{{end}}
{{- if .RedFlags}} Watch out: {{join .RedFlags " "}}{{end}}
`)))

var goalTmpl = template.Must(template.New("goal").Parse(strings.TrimSpace(`
You have {{.MonthsRemaining}} months to reach your goal, which requires saving {{printf "%.2f" .RequiredMonthlySaving}} per month.
{{- if .Feasible}} Your current surplus covers this - you are on track.{{else}} You are short {{printf "%.2f" .Shortfall}} per month; trim expenses or extend the deadline.{{end}}
`)))

// DescribeBudget renders prose for an analyzed budget.
func (s *Service) DescribeBudget(ctx context.Context, report domain.BudgetReport) string {
	fallback := renderBudget(report)
	prompt := fmt.Sprintf(
		"Rephrase this budget summary as two friendly sentences without changing any number:\n%s", fallback)
	return s.enrich(ctx, prompt, fallback)
}

// DescribeGoal renders prose for a computed goal plan.
func (s *Service) DescribeGoal(ctx context.Context, plan domain.GoalPlan) string {
	fallback := renderGoal(plan)
	prompt := fmt.Sprintf(
		"Rephrase this savings plan as two friendly sentences without changing any number:\n%s", fallback)
	return s.enrich(ctx, prompt, fallback)
}

// enrich tries the generator and falls back on any failure. Generation
// errors degrade richness, never correctness, so they are only logged.
func (s *Service) enrich(ctx context.Context, prompt, fallback string) string {
	if s.generator == nil {
		return fallback
	}
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("text generation failed, using templated narrative")
		return fallback
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fallback
	}
	return text
}

func renderBudget(report domain.BudgetReport) string {
	data := struct {
		domain.BudgetReport
		SavingsRatePct float64
	}{BudgetReport: report, SavingsRatePct: report.SavingsRate.Value * 100}

	var sb strings.Builder
	if err := budgetTmpl.Execute(&sb, data); err != nil {
		return fmt.Sprintf("Total expenses %.2f, surplus %.2f.", report.TotalExpenses, report.Surplus)
	}
	return sb.String()
}

func renderGoal(plan domain.GoalPlan) string {
	var sb strings.Builder
	if err := goalTmpl.Execute(&sb, plan); err != nil {
		return fmt.Sprintf("Save %.2f per month for %d months.", plan.RequiredMonthlySaving, plan.MonthsRemaining)
	}
	return sb.String()
}
