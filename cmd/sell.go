package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"stockfolio"
)

type sellCmd struct {
	symbol   string
	quantity string
	price    string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares to trim or close a position" }
func (*sellCmd) Usage() string {
	return `sfo sell -s <symbol> -q <quantity> -p <price>

  Sells shares of a held symbol. The average buy price is untouched; the
  trade price becomes the current price. Selling the full held quantity
  closes the position and removes it from the portfolio.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol")
	f.StringVar(&c.quantity, "q", "", "Number of shares (whole number)")
	f.StringVar(&c.price, "p", "", "Price received per share")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	res, err := p.Sell(c.symbol, qty, price)
	if err != nil {
		return fail(err)
	}
	if err := savePortfolio(p); err != nil {
		return fail(err)
	}

	if res.Closed {
		fmt.Printf("Sold %d %s at %s. Position closed.\n", qty, res.Position.Symbol, price)
	} else {
		fmt.Printf("Sold %d %s at %s. Still holding %d shares.\n",
			qty, res.Position.Symbol, price, res.Position.Quantity)
	}
	return subcommands.ExitSuccess
}
