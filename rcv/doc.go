// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package rcv implements single-transferable-vote (STV) tabulation for
single- and multi-winner ranked-choice races.

# Entry Point

	result, err := rcv.Tabulate(raceData, rcv.RoundAddOneFloor)

Tabulate validates its input eagerly, computes the vote threshold once,
then iterates rounds until every seat is filled. The result lists each
round's tally, status changes, and vote transfers, plus the winners in
order of election.

# Threshold

The threshold (quota) is total_valid_votes / (num_winners + 1), rounded
per RoundMode:

	RoundCeiling      ceil(raw)
	RoundAddOneFloor  floor(raw) + 1   (Droop quota, the default)
	RoundFractional   raw + Epsilon

It is fixed for the whole race; ballots exhausting later never lower it.

# Rounds

Each round, in order:

 1. Tally every ballot to its highest-ranked active candidate, or to
    the exhausted bucket.
 2. Elect every active candidate at or above the threshold.
 3. Transfer each winner's surplus: ballots keep threshold/total of
    their weight with the winner and forward the rest (Gregory-style
    fractional transfer).
 4. Stop when all seats are filled, or when the remaining active
    candidates exactly fill the remaining seats (elected en masse).
 5. Otherwise, if nobody was elected, eliminate the active candidate
    with the fewest votes and transfer its ballots at full weight.

# Determinism

All tie-breaks are fixed policy: processing order is descending vote
total with the lower candidate identifier first on equal totals, and
elimination picks the lowest total with the lower identifier first.
Identical input always produces an identical result.

# Purity

The package performs no I/O, holds no global state, and never mutates
its inputs, so independent races can be tabulated concurrently by the
caller (see package runner).
*/
package rcv
