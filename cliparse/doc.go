// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Positional arguments are the CSV files to tabulate; at least one is
required.

# Config Fields

  - Files: CSV exports to tabulate (required, positional)
  - Details: print round-by-round counts instead of just winners
  - Flow: print vote-flow JSON for each race
  - RoundMode: threshold rounding rule (default: add_one_floor)
  - Workers: tabulation workers (default: one per CPU)
  - DatabaseURL: connection string (optional; omit to skip persistence)
  - DatabaseType: sqlite or postgres (default: sqlite)

# CLI Flags

	-details      Round-by-round output
	-flow         Vote-flow JSON output
	-round-mode   ceiling, add_one_floor, or fractional
	-w            Worker count
	-d            Database URL
	-t            Database type

# Environment Variables

Flags fall back to environment variables:

	ROUND_MODE    → -round-mode
	WORKERS       → -w
	DATABASE_URL  → -d
	DATABASE_TYPE → -t

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - no CSV files are given
  - the round mode is not one of the three known rules
  - WORKERS is set but not an integer

The database URL is optional: without one the program tabulates and
prints results but persists nothing.
*/
package cliparse
