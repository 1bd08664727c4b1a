// Package cmd implements the CLI application to track a stock portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"stockfolio"
	"stockfolio/config"
)

// Register wires every subcommand into the commander. A main package
// calls Register() once, then Execute() on the user-selected verb.
func Register(c *subcommands.Commander, conf *config.Config) {
	cfg = conf

	c.Register(&buyCmd{}, "trading")
	c.Register(&sellCmd{}, "trading")
	c.Register(&updateCmd{}, "trading")

	c.Register(&viewCmd{}, "reports")
	c.Register(&metricsCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&fmtCmd{}, "portfolio file")

	c.Register(&shellCmd{}, "interactive")
	c.Register(&topicCmd{}, "documentation")
}

// As a CLI application the lifecycle is one verb per process, so shared
// state lives in a couple of package variables instead of being threaded
// through every command.
var cfg *config.Config

var fileFlag = flag.String("file", "", "Path to the portfolio file (overrides SFO_FILE)")

// portfolioPath resolves the portfolio location: flag first, then
// environment, then the default.
func portfolioPath() string {
	if *fileFlag != "" {
		return *fileFlag
	}
	return cfg.File
}

// openPortfolio loads the portfolio file, surfacing whatever the tolerant
// decode had to skip. Every verb starts here; a verb that mutates ends
// with savePortfolio.
func openPortfolio() (*stockfolio.Portfolio, error) {
	path := portfolioPath()
	p, stats, err := stockfolio.LoadFile(path, cfg.Capacity)
	if err != nil {
		return nil, err
	}
	if stats.NoSavedState {
		log.Info().Str("file", path).Msg("no saved portfolio, starting empty")
	}
	if stats.Malformed > 0 {
		log.Warn().Str("file", path).Int("lines", stats.Malformed).Msg("skipped malformed lines")
	}
	for _, sym := range stats.Overflow {
		log.Warn().Str("file", path).Str("symbol", sym).Msg("dropped position over the capacity ceiling")
	}
	log.Debug().Str("file", path).Int("positions", p.Len()).Msg("portfolio loaded")
	return p, nil
}

// savePortfolio writes the portfolio back to the resolved path.
func savePortfolio(p *stockfolio.Portfolio) error {
	path := portfolioPath()
	if err := stockfolio.SaveFile(path, p); err != nil {
		return err
	}
	log.Debug().Str("file", path).Int("positions", p.Len()).Msg("portfolio saved")
	return nil
}

// printMarkdown renders a markdown document for the terminal. If the
// fancy renderer cannot be built the raw markdown is still perfectly
// readable, so it is printed as-is.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}

// fail reports an operation error on stderr and picks the exit status:
// bad input is a usage problem, everything else a plain failure.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, stockfolio.ErrValidation) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
