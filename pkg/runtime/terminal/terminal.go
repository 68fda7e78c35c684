package terminal

import (
	"io"
	"os"

	"github.com/de-tools/budget-bee/pkg/runtime/terminal/commands"
	"github.com/de-tools/budget-bee/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	analyzer commands.Analyzer
	planner  commands.Planner
	adviser  commands.Adviser
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Analyzer commands.Analyzer
	Planner  commands.Planner
	Adviser  commands.Adviser
	Currency string
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Currency == "" {
		opts.Currency = "USD"
	}

	cli := &CLI{
		analyzer: opts.Analyzer,
		planner:  opts.Planner,
		adviser:  opts.Adviser,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd(opts.Currency)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(currency string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgetbee",
		Short: "Personal finance analysis tool",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.analyzer, cli.adviser, cli.reporter, currency))
	cmd.AddCommand(commands.NewPlanCmd(cli.planner, cli.reporter, currency))

	return cmd
}
