// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

var (
	// ErrMalformedBallot marks a ballot referencing an out-of-range
	// candidate identifier or duplicating a nonzero identifier. Raised
	// during validation, before any round is tabulated.
	ErrMalformedBallot = errors.New("malformed ballot")

	// ErrDegenerateRace marks a race that cannot be tabulated: zero
	// valid vote weight, fewer than one seat, or more seats than
	// candidates. Raised during validation, before any round is
	// tabulated.
	ErrDegenerateRace = errors.New("degenerate race")

	// ErrInvariant marks a vote-conservation failure inside the engine.
	// It signals a tabulation bug, not bad input; the affected race is
	// aborted with no partial result.
	ErrInvariant = errors.New("tabulation invariant violated")
)
