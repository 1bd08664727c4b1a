package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"stockfolio/renderer"
)

type viewCmd struct{}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "show the holdings table" }
func (*viewCmd) Usage() string {
	return `sfo view

  Shows every position with quantity, average buy price, current price,
  market value and return. Read-only: the portfolio file is not touched.
`
}

func (*viewCmd) SetFlags(f *flag.FlagSet) {}

func (c *viewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.HoldingsMarkdown(p, cfg.Currency))
	return subcommands.ExitSuccess
}
