package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite the portfolio file in canonical form"
}
func (*fmtCmd) Usage() string {
	return `sfo fmt

  Reads the portfolio file with the tolerant parser and writes it back in
  canonical form: one position per line, single spaces, full-precision
  prices. Lines that cannot be understood are dropped, with a warning.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}
	if err := savePortfolio(p); err != nil {
		return fail(err)
	}
	fmt.Printf("Formatted %s: %d positions.\n", portfolioPath(), p.Len())
	return subcommands.ExitSuccess
}
