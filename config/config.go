// Package config loads the process configuration from the environment,
// with an optional .env file for development setups.
package config

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries everything the sfo binary needs to know before the
// first command runs. Every field has a default, so a bare environment
// works out of the box.
type Config struct {
	// File is where the portfolio is loaded from and saved to. The
	// -file flag overrides it per invocation.
	File string `env:"SFO_FILE" envDefault:"portfolio.txt"`
	// Capacity is the ceiling on held positions. Zero or negative values
	// fall back to the built-in default at store construction.
	Capacity int `env:"SFO_CAPACITY" envDefault:"100"`
	// Currency is the ISO 4217 code used for display only; stored
	// amounts are currency-less.
	Currency string `env:"SFO_CURRENCY" envDefault:"USD"`
	// LogLevel tunes diagnostic output on stderr: trace, debug, info,
	// warn, error.
	LogLevel string `env:"SFO_LOG_LEVEL" envDefault:"warn"`
}

// MustLoad reads the configuration or exits. Called once at startup,
// before any command gets to run.
func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("parse config error: %s", err)
	}
	return cfg
}
