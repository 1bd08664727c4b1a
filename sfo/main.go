package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"stockfolio/cmd"
	"stockfolio/config"
)

func main() {
	// Shell completion runs before anything else: when invoked by the
	// shell's completion hook, this call prints candidates and exits.
	completion().Complete("sfo")

	cfg := config.MustLoad()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander, cfg)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	trade := &complete.Command{
		Flags: map[string]complete.Predictor{
			"s": predict.Nothing,
			"q": predict.Nothing,
			"p": predict.Nothing,
		},
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"buy":  trade,
			"sell": trade,
			"update": {Flags: map[string]complete.Predictor{
				"s":   predict.Nothing,
				"p":   predict.Nothing,
				"all": predict.Nothing,
			}},
			"view":    {},
			"metrics": {},
			"fmt":     {},
			"export": {Flags: map[string]complete.Predictor{
				"o": predict.Files("*"),
			}},
			"topic": {Args: predict.Set{"readme", "format", "operations", "prices", "shell", "*"}},
			"shell": {},
		},
		Flags: map[string]complete.Predictor{
			"file": predict.Files("*"),
		},
	}
}
