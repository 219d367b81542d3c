// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rcv

import (
	"fmt"
	"math"

	"github.com/danielhkuo/quickly-rank/models"
)

// RoundMode selects how the fractional vote threshold is rounded.
//
// The raw threshold is total_votes / (num_winners + 1).
type RoundMode int

const (
	// RoundCeiling rounds a fractional threshold up to the next integer.
	// Used by published FairVote worked examples, though it admits ties
	// when the raw threshold is already an integer.
	RoundCeiling RoundMode = iota + 1

	// RoundAddOneFloor rounds the threshold down and adds one. This is
	// the Droop quota and the default: with 100 votes and one seat the
	// threshold is 51, not 50.
	RoundAddOneFloor

	// RoundFractional keeps the fractional threshold and requires
	// threshold + Epsilon votes. Most precise, but produces fractional
	// vote totals in nearly every race.
	RoundFractional
)

// Epsilon is the margin added to a RoundFractional threshold, and the
// relative tolerance used for vote-conservation checks.
const Epsilon = 1e-5

// ParseRoundMode maps a CLI-friendly mode name to its RoundMode.
func ParseRoundMode(s string) (RoundMode, error) {
	switch s {
	case "ceiling":
		return RoundCeiling, nil
	case "add_one_floor":
		return RoundAddOneFloor, nil
	case "fractional":
		return RoundFractional, nil
	}
	return 0, fmt.Errorf("unknown round mode %q", s)
}

func (m RoundMode) String() string {
	switch m {
	case RoundCeiling:
		return "ceiling"
	case RoundAddOneFloor:
		return "add_one_floor"
	case RoundFractional:
		return "fractional"
	}
	return fmt.Sprintf("RoundMode(%d)", int(m))
}

// VotesNeeded computes the vote threshold a candidate must reach to win
// a seat. totalWeight is the summed weight of ballots carrying at least
// one preference; the threshold is computed once per race and never
// changes as ballots exhaust.
func VotesNeeded(totalWeight float64, numWinners int, mode RoundMode) (float64, error) {
	if numWinners <= 0 {
		return 0, fmt.Errorf("num_winners must be positive, got %d: %w", numWinners, models.ErrDegenerateRace)
	}
	if totalWeight <= 0 {
		return 0, fmt.Errorf("no valid ballot weight: %w", models.ErrDegenerateRace)
	}

	raw := totalWeight / float64(numWinners+1)
	switch mode {
	case RoundCeiling:
		return math.Ceil(raw), nil
	case RoundAddOneFloor:
		return math.Floor(raw) + 1, nil
	case RoundFractional:
		return raw + Epsilon, nil
	}
	return 0, fmt.Errorf("round mode is not a known value: %d", int(mode))
}
