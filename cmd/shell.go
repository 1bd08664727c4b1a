package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	figure "github.com/common-nighthawk/go-figure"
	"github.com/google/subcommands"

	"stockfolio"
	"stockfolio/docs"
	"stockfolio/renderer"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "interactive menu session" }
func (*shellCmd) Usage() string {
	return `sfo shell

  Runs a menu-driven session. The portfolio is loaded once at start and
  always saved on exit, whether you leave with the exit option or close
  the input. The menu also offers explicit save and load mid-session.
`
}

func (*shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}

	fmt.Println(figure.NewFigure("sfo", "", true).String())
	fmt.Printf("Tracking %s (%d positions).\n", portfolioPath(), p.Len())

	s := &shellSession{p: p, lines: stockfolio.NewLineReader(os.Stdin)}
	s.run()

	// The exit save. Always runs, even when the session already saved
	// explicitly, so quitting can never lose an edit.
	if err := savePortfolio(s.p); err != nil {
		return fail(err)
	}
	fmt.Printf("Portfolio saved to %s (%d entries). Goodbye.\n", portfolioPath(), s.p.Len())
	return subcommands.ExitSuccess
}

// shellSession holds the in-memory portfolio while the menu loops. All
// edits stay in memory; persisting is the caller's job, once, at the end.
type shellSession struct {
	p     *stockfolio.Portfolio
	lines *stockfolio.LineReader
}

func (s *shellSession) run() {
	for {
		fmt.Println()
		fmt.Println("1) View  2) Buy  3) Sell  4) Update Prices")
		fmt.Println("5) Metrics  6) Save  7) Load  8) Help  0) Exit")

		choice, ok := s.prompt("Choice: ")
		if !ok {
			fmt.Println()
			return
		}
		switch choice {
		case "1":
			printMarkdown(renderer.HoldingsMarkdown(s.p, cfg.Currency))
		case "2":
			s.buy()
		case "3":
			s.sell()
		case "4":
			s.update()
		case "5":
			printMarkdown(renderer.MetricsMarkdown(s.p.Metrics(), cfg.Currency))
		case "6":
			s.save()
		case "7":
			s.load()
		case "8":
			s.help()
		case "0":
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

// save writes the portfolio out without leaving the session.
func (s *shellSession) save() {
	if err := savePortfolio(s.p); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Portfolio saved to %s (%d entries).\n", portfolioPath(), s.p.Len())
}

// load re-reads the portfolio file, replacing the in-memory state with
// whatever is on disk. Unsaved edits are discarded.
func (s *shellSession) load() {
	path := portfolioPath()
	p, stats, err := stockfolio.LoadFile(path, cfg.Capacity)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	s.p = p
	if stats.NoSavedState {
		fmt.Printf("No saved portfolio found (%s).\n", path)
		return
	}
	fmt.Printf("Loaded %d entries from %s.\n", stats.Loaded, path)
}

func (s *shellSession) help() {
	doc, err := docs.Topic("shell")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	printMarkdown(doc)
}

// prompt prints a label and reads one trimmed line. ok is false once the
// input is closed.
func (s *shellSession) prompt(label string) (string, bool) {
	fmt.Print(label)
	line, ok := s.lines.ReadLine()
	if !ok {
		return "", false
	}
	return line, true
}

// readTrade collects the symbol, quantity and price for a trade. Any
// parse failure aborts the flow back to the menu.
func (s *shellSession) readTrade() (symbol string, qty int64, price stockfolio.Money, ok bool) {
	raw, ok := s.prompt("Symbol: ")
	if !ok {
		return "", 0, stockfolio.Money{}, false
	}
	symbol = raw

	raw, ok = s.prompt("Quantity: ")
	if !ok {
		return "", 0, stockfolio.Money{}, false
	}
	qty, err := stockfolio.ParseQuantity(raw)
	if err != nil {
		fmt.Println("Error:", err)
		return "", 0, stockfolio.Money{}, false
	}

	raw, ok = s.prompt("Price: ")
	if !ok {
		return "", 0, stockfolio.Money{}, false
	}
	price, err = stockfolio.ParsePrice(raw)
	if err != nil {
		fmt.Println("Error:", err)
		return "", 0, stockfolio.Money{}, false
	}
	return symbol, qty, price, true
}

func (s *shellSession) buy() {
	symbol, qty, price, ok := s.readTrade()
	if !ok {
		return
	}
	pos, err := s.p.Buy(symbol, qty, price)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Bought %d %s. Now holding %d shares, average buy price %s.\n",
		qty, pos.Symbol, pos.Quantity, pos.AvgBuyPrice)
}

func (s *shellSession) sell() {
	symbol, qty, price, ok := s.readTrade()
	if !ok {
		return
	}
	res, err := s.p.Sell(symbol, qty, price)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if res.Closed {
		fmt.Printf("Sold %d %s. Position closed.\n", qty, res.Position.Symbol)
	} else {
		fmt.Printf("Sold %d %s. Still holding %d shares.\n", qty, res.Position.Symbol, res.Position.Quantity)
	}
}

func (s *shellSession) update() {
	mode, ok := s.prompt("Update a (s)ingle symbol or (a)ll? ")
	if !ok {
		return
	}
	switch mode {
	case "a", "A":
		report := promptAllPrices(s.p, s.lines)
		printMarkdown(renderer.BulkReportMarkdown(report, cfg.Currency))
	case "s", "S":
		symbol, ok := s.prompt("Symbol: ")
		if !ok {
			return
		}
		raw, ok := s.prompt("Price: ")
		if !ok {
			return
		}
		price, err := stockfolio.ParsePrice(raw)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		pos, err := s.p.SetPrice(symbol, price)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		fmt.Printf("Updated %s to %s.\n", pos.Symbol, pos.CurrentPrice)
	default:
		fmt.Println("Please answer s or a.")
	}
}
