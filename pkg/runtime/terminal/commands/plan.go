package commands

import (
	"fmt"
	"time"

	"github.com/de-tools/budget-bee/pkg/adapters"
	"github.com/de-tools/budget-bee/pkg/models/domain"
	"github.com/de-tools/budget-bee/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// Planner is the slice of the goal service the CLI needs.
type Planner interface {
	Plan(req domain.GoalRequest) (domain.GoalPlan, error)
}

type PlanCmd struct {
	target         float64
	months         int
	date           string
	currentSavings float64
	surplus        float64
	currency       string
	planner        Planner
	reporter       *export.Reporter
}

func NewPlanCmd(planner Planner, reporter *export.Reporter, currency string) *cobra.Command {
	pc := &PlanCmd{planner: planner, reporter: reporter, currency: currency}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan the monthly saving for a goal",
		RunE:  pc.run,
	}

	// Define flags
	cmd.Flags().Float64Var(&pc.target, "target", 0, "Target amount to save")
	cmd.Flags().IntVar(&pc.months, "months", 0, "Months until the deadline")
	cmd.Flags().StringVar(&pc.date, "date", "", "Deadline date (YYYY-MM-DD), overrides --months")
	cmd.Flags().Float64Var(&pc.currentSavings, "current-savings", 0, "Amount already saved toward the goal")
	cmd.Flags().Float64Var(&pc.surplus, "surplus", 0, "Current monthly surplus")

	// Mark required flags
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("surplus")
	cmd.MarkFlagsOneRequired("months", "date")

	return cmd
}

func (pc *PlanCmd) run(cmd *cobra.Command, args []string) error {
	deadline := domain.DeadlineIn(pc.months)
	if pc.date != "" {
		date, err := time.Parse("2006-01-02", pc.date)
		if err != nil {
			return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", pc.date)
		}
		deadline = domain.DeadlineAt(date)
	}

	plan, err := pc.planner.Plan(domain.GoalRequest{
		TargetAmount:   pc.target,
		Deadline:       deadline,
		CurrentSavings: pc.currentSavings,
		MonthlySurplus: pc.surplus,
	})
	if err != nil {
		return fmt.Errorf("failed to plan goal: %w", err)
	}

	return pc.reporter.Handle(adapters.MapGoalPlanToPresentation(plan, pc.currency))
}
