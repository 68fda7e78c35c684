package main

import (
	"fmt"
	"os"

	"github.com/de-tools/budget-bee/pkg/runtime/terminal"
	"github.com/de-tools/budget-bee/pkg/services/advisor"
	"github.com/de-tools/budget-bee/pkg/services/budget"
	"github.com/de-tools/budget-bee/pkg/services/goal"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Analyzer: budget.NewAnalyzer(budget.DefaultThresholds()),
		Planner:  goal.NewPlanner(),
		Adviser:  advisor.NewAdvisor(advisor.DefaultBenchmarks()),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
