// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/danielhkuo/quickly-rank/models"
	"github.com/danielhkuo/quickly-rank/rcv"
)

type Config struct {
	Files        []string
	Details      bool
	Flow         bool
	RoundMode    string
	Workers      int
	DatabaseURL  string
	DatabaseType string
}

// ParseFlags validates flags and collects the CSV files to tabulate.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quickly-rank", flag.ContinueOnError)

	fs.BoolVar(&cfg.Details, "details", false, "Print round-by-round counts instead of just winners")
	fs.BoolVar(&cfg.Flow, "flow", false, "Print vote-flow JSON for each race")
	fs.StringVar(&cfg.RoundMode, "round-mode", "", "Threshold rounding: ceiling, add_one_floor, or fractional")
	fs.IntVar(&cfg.Workers, "w", 0, "Number of tabulation workers (0 = one per CPU)")

	// Persistence (can be CLI args or env)
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (omit to skip persistence)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Files = fs.Args()
	if len(cfg.Files) == 0 {
		return Config{}, errors.New("at least one CSV file required")
	}

	// Fall back to environment variables
	if cfg.RoundMode == "" {
		cfg.RoundMode = os.Getenv("ROUND_MODE")
		if cfg.RoundMode == "" {
			cfg.RoundMode = rcv.RoundAddOneFloor.String()
		}
	}
	if _, err := rcv.ParseRoundMode(cfg.RoundMode); err != nil {
		return Config{}, err
	}

	if cfg.Workers == 0 {
		if workersStr := os.Getenv("WORKERS"); workersStr != "" {
			workers, err := strconv.Atoi(workersStr)
			if err != nil {
				return Config{}, errors.New("invalid WORKERS env variable")
			}
			cfg.Workers = workers
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = models.DBTypeSQLite
		}
	}

	return cfg, nil
}
