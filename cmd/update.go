package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"stockfolio"
	"stockfolio/renderer"
)

type updateCmd struct {
	symbol string
	price  string
	all    bool
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "record new market prices, one symbol or all" }
func (*updateCmd) Usage() string {
	return `sfo update -s <symbol> [-p <price>]
sfo update -all

  Records the current market price of a held symbol. Quantity and average
  buy price stay as they are. Without -p the price is prompted for.

  With -all, walks every position and prompts for a price. Press enter to
  keep the old price; an answer that is not a positive number is rejected
  with a warning and the walk continues with the next symbol.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol")
	f.StringVar(&c.price, "p", "", "Current price per share")
	f.BoolVar(&c.all, "all", false, "Prompt for a new price for every position")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.all {
		if c.symbol != "" || c.price != "" {
			fmt.Fprintln(os.Stderr, "Error: -all cannot be combined with -s or -p.")
			return subcommands.ExitUsageError
		}
		return c.executeAll()
	}

	if c.symbol == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	sym, err := stockfolio.NormalizeSymbol(c.symbol)
	if err != nil {
		return fail(err)
	}

	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}

	raw := c.price
	if raw == "" {
		pos, held := p.Find(sym)
		if !held {
			return fail(fmt.Errorf("%w: %s", stockfolio.ErrNotFound, sym))
		}
		fmt.Printf("%s (current %s): ", pos.Symbol, pos.CurrentPrice)
		line, ok := stockfolio.NewLineReader(os.Stdin).ReadLine()
		if !ok || line == "" {
			fmt.Fprintln(os.Stderr, "Error: no price entered.")
			return subcommands.ExitUsageError
		}
		raw = line
	}
	price, err := stockfolio.ParsePrice(raw)
	if err != nil {
		return fail(err)
	}
	pos, err := p.SetPrice(sym, price)
	if err != nil {
		return fail(err)
	}
	if err := savePortfolio(p); err != nil {
		return fail(err)
	}

	fmt.Printf("Updated %s to %s.\n", pos.Symbol, pos.CurrentPrice)
	return subcommands.ExitSuccess
}

// executeAll runs the interactive pass over every position, prompting on
// stdout and reading stdin one line per symbol.
func (c *updateCmd) executeAll() subcommands.ExitStatus {
	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}

	report := promptAllPrices(p, stockfolio.NewLineReader(os.Stdin))

	if err := savePortfolio(p); err != nil {
		return fail(err)
	}
	printMarkdown(renderer.BulkReportMarkdown(report, cfg.Currency))
	return subcommands.ExitSuccess
}

// promptAllPrices drives the bulk update against an interactive line
// source. The shell reuses it for its own menu entry.
func promptAllPrices(p *stockfolio.Portfolio, lines *stockfolio.LineReader) stockfolio.BulkReport {
	return p.UpdateAllPrices(func(symbol string) (string, bool) {
		pos, _ := p.Find(symbol)
		fmt.Printf("%s (current %s): ", symbol, pos.CurrentPrice)
		return lines.ReadLine()
	})
}
