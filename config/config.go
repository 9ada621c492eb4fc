// Package config loads the bids tool settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix of every environment variable read by Load, e.g. BIDSORT_CSV_PATH.
const Prefix = "BIDSORT"

// Config holds the tool configuration.
type Config struct {
	CSVPath  string `envconfig:"CSV_PATH" default:"eBid_Monthly_Sales.csv"`
	Strip    string `envconfig:"STRIP" default:"$"`
	Currency string `envconfig:"CURRENCY" default:"USD"`
	Sheet    string `envconfig:"SHEET"`
	Verbose  bool   `envconfig:"VERBOSE" default:"false"`
}

// Load reads the configuration from environment variables, after loading
// the optional dotenv files (".env" when none is given). Variables already
// set in the environment win over the files.
func Load(dotenv ...string) (*Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load dotenv file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// StripRune returns the character stripped from amounts.
func (c *Config) StripRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Strip)
	return r
}

func (c *Config) validate() error {
	if c.CSVPath == "" {
		return fmt.Errorf("%s_CSV_PATH must not be empty", Prefix)
	}
	if !utf8.ValidString(c.Strip) || utf8.RuneCountInString(c.Strip) != 1 {
		return fmt.Errorf("%s_STRIP must be a single character, got %q", Prefix, c.Strip)
	}
	if c.Currency == "" {
		return fmt.Errorf("%s_CURRENCY must not be empty", Prefix)
	}
	return nil
}
