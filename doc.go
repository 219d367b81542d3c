// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Rank tabulator.

Quickly Rank counts ranked-choice elections with the single transferable
vote: ballots rank candidates, winners must reach a vote threshold, and
surplus and eliminated votes transfer to each ballot's next choice until
every seat is filled.

# Running

Point the tabulator at one or more Google Form CSV exports:

	go run . votes.csv

Or with round-by-round output and persistence:

	go run . -details -d "file:results.db" votes.csv

# Configuration

Optional settings:

  - ROUND_MODE (-round-mode): threshold rounding (default: add_one_floor)
  - WORKERS (-w): tabulation workers (default: one per CPU)
  - DATABASE_URL (-d): where to persist results (default: none)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

Plus the output flags -details (per-round counts) and -flow (vote-flow
JSON).

# Architecture

The pipeline is a chain of small packages:

  - transform: Google Form CSV → ballots
  - rcv: the transferable-vote engine (pure, deterministic)
  - runner: tabulates independent races concurrently
  - report: human-readable summaries and vote-flow data
  - db: immutable result snapshots (SQLite or PostgreSQL)
  - models: shared types and sentinel errors
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
