package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"stockfolio"
)

type buyCmd struct {
	symbol   string
	quantity string
	price    string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase shares to open or add to a position" }
func (*buyCmd) Usage() string {
	return `sfo buy -s <symbol> -q <quantity> -p <price>

  Purchases shares. A new symbol opens a position; buying more of a held
  symbol recomputes the average buy price as the quantity-weighted mean
  of all purchases. The trade price becomes the current price.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol")
	f.StringVar(&c.quantity, "q", "", "Number of shares (whole number)")
	f.StringVar(&c.price, "p", "", "Price paid per share")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.quantity == "" || c.price == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	qty, err := stockfolio.ParseQuantity(c.quantity)
	if err != nil {
		return fail(err)
	}
	price, err := stockfolio.ParsePrice(c.price)
	if err != nil {
		return fail(err)
	}

	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}
	pos, err := p.Buy(c.symbol, qty, price)
	if err != nil {
		return fail(err)
	}
	if err := savePortfolio(p); err != nil {
		return fail(err)
	}

	fmt.Printf("Bought %d %s at %s. Now holding %d shares, average buy price %s.\n",
		qty, pos.Symbol, price, pos.Quantity, pos.AvgBuyPrice)
	return subcommands.ExitSuccess
}
