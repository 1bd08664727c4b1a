package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"stockfolio/renderer"
)

type metricsCmd struct{}

func (*metricsCmd) Name() string     { return "metrics" }
func (*metricsCmd) Synopsis() string { return "show portfolio-level cost, value and return" }
func (*metricsCmd) Usage() string {
	return `sfo metrics

  Shows the total cost basis, market value, unrealized profit or loss and
  overall return at last known prices. Read-only.
`
}

func (*metricsCmd) SetFlags(f *flag.FlagSet) {}

func (c *metricsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.MetricsMarkdown(p.Metrics(), cfg.Currency))
	return subcommands.ExitSuccess
}
