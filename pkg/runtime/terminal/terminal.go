package terminal

import (
	"io"
	"os"

	"github.com/de-tools/liquidity-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/liquidity-atlas/pkg/runtime/terminal/export"

	"github.com/de-tools/liquidity-atlas/pkg/services/forecast"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	registry forecast.Registry
	reporter *export.Reporter
	summary  *Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry forecast.Registry
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		registry: opts.Registry,
		reporter: export.NewReporter(opts.Output),
		summary:  NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liquidity",
		Short: "Cash flow forecasting tool",
	}

	cmd.AddCommand(commands.NewForecastCmd(cli.registry, cli.reporter, cli.summary))
	cmd.AddCommand(commands.NewCategoriesCmd())
	cmd.AddCommand(commands.NewProfilesCmd(cli.registry))
	cmd.AddCommand(commands.NewSeedCmd(cli.registry))

	return cmd
}
