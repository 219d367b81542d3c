// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"math"
	"testing"

	"github.com/danielhkuo/quickly-rank/models"
)

// Tolerances for comparing vote totals that went through fractional
// surplus transfers.
const (
	RelTol = 1e-5
	AbsTol = 1e-8
)

// Close reports whether two vote totals agree within tolerance.
func Close(a, b float64) bool {
	return math.Abs(a-b) <= AbsTol+RelTol*math.Abs(b)
}

// NewRaceData builds a RaceData literal for tests.
func NewRaceData(name string, numWinners int, names []string, ballots [][]int, votes []int) models.RaceData {
	return models.RaceData{
		Metadata: models.RaceMetadata{
			RaceName:   name,
			NumWinners: numWinners,
			Names:      names,
		},
		Ballots: ballots,
		Votes:   votes,
	}
}

// Round builds a RoundResult literal for tests. A nil transfers map
// means no weight moved this round.
func Round(count []float64, elected, eliminated []int, transfers map[int]map[int]float64) models.RoundResult {
	return models.RoundResult{
		Count:      count,
		Elected:    elected,
		Eliminated: eliminated,
		Transfers:  transfers,
	}
}

// AssertRaceEqual compares two race results round by round, within
// float tolerance on vote totals.
func AssertRaceEqual(t *testing.T, actual, desired *models.RaceResult) {
	t.Helper()

	if len(actual.Rounds) != len(desired.Rounds) {
		t.Fatalf("expected %d rounds, got %d", len(desired.Rounds), len(actual.Rounds))
	}
	for r := range desired.Rounds {
		AssertRoundEqual(t, r, actual.Rounds[r], desired.Rounds[r])
	}
	if len(desired.Winners) > 0 || len(actual.Winners) > 0 {
		AssertIntsEqual(t, "winners", actual.Winners, desired.Winners)
	}
}

// AssertRoundEqual compares one round snapshot against its expectation.
func AssertRoundEqual(t *testing.T, round int, actual, desired models.RoundResult) {
	t.Helper()

	if len(actual.Count) != len(desired.Count) {
		t.Fatalf("round %d: expected %d count slots, got %d", round, len(desired.Count), len(actual.Count))
	}
	for i := range desired.Count {
		if !Close(actual.Count[i], desired.Count[i]) {
			t.Errorf("round %d: count[%d] = %v, want %v", round, i, actual.Count[i], desired.Count[i])
		}
	}
	AssertIntsEqual(t, "elected", actual.Elected, desired.Elected)
	AssertIntsEqual(t, "eliminated", actual.Eliminated, desired.Eliminated)
	assertTransfersEqual(t, round, actual.Transfers, desired.Transfers)
}

// AssertIntsEqual compares two int slices, treating nil and empty as equal.
func AssertIntsEqual(t *testing.T, label string, actual, desired []int) {
	t.Helper()

	if len(actual) != len(desired) {
		t.Errorf("%s = %v, want %v", label, actual, desired)
		return
	}
	for i := range desired {
		if actual[i] != desired[i] {
			t.Errorf("%s = %v, want %v", label, actual, desired)
			return
		}
	}
}

func assertTransfersEqual(t *testing.T, round int, actual, desired map[int]map[int]float64) {
	t.Helper()

	for src := range actual {
		if _, ok := desired[src]; !ok {
			t.Errorf("round %d: unexpected transfers from %d: %v", round, src, actual[src])
		}
	}
	for src, want := range desired {
		got, ok := actual[src]
		if !ok {
			t.Errorf("round %d: missing transfers from %d, want %v", round, src, want)
			continue
		}
		for dst := range got {
			if _, ok := want[dst]; !ok {
				t.Errorf("round %d: unexpected transfer %d -> %d = %v", round, src, dst, got[dst])
			}
		}
		for dst, amount := range want {
			if !Close(got[dst], amount) {
				t.Errorf("round %d: transfer %d -> %d = %v, want %v", round, src, dst, got[dst], amount)
			}
		}
	}
}
