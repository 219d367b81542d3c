// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"strconv"
	"strings"
	"time"
)

// Storage backend constants
const (
	DBTypeSQLite   = "sqlite"
	DBTypePostgres = "postgres"
)

// ExhaustedSlot is the reserved candidate slot for ballots with no
// remaining active preference. Candidates are numbered starting at 1;
// slot 0 collects exhausted vote weight.
const ExhaustedSlot = 0

// ExhaustedLabel is the display name for the exhausted slot.
const ExhaustedLabel = "<exhausted>"

// RaceMetadata describes a single race: its display name, how many
// seats are to be filled, and the ordered candidate names. Candidate
// identifier i refers to Names[i-1].
type RaceMetadata struct {
	RaceName   string   `json:"race_name"`
	NumWinners int      `json:"num_winners"`
	Names      []string `json:"names"`
}

// CandidateName resolves a 1-based candidate identifier to its name.
// Slot 0 resolves to the exhausted label.
func (m RaceMetadata) CandidateName(cand int) string {
	if cand == ExhaustedSlot {
		return ExhaustedLabel
	}
	return m.Names[cand-1]
}

func (m RaceMetadata) String() string {
	var b strings.Builder
	b.WriteString("race: " + m.RaceName + "\n")
	b.WriteString("num_winners: " + strconv.Itoa(m.NumWinners) + "\n")
	b.WriteString("candidates: " + strings.Join(m.Names, ","))
	return b.String()
}

// RaceData is the full input to one tabulation: the race metadata plus
// weighted ballots. Ballots[i] is an ordering of candidate identifiers
// (1-based, zero meaning "no mark"); Votes[i] is how many identical
// physical ballots it represents. Ballots and Votes are parallel slices.
type RaceData struct {
	Metadata RaceMetadata `json:"metadata"`
	Ballots  [][]int      `json:"ballots"`
	Votes    []int        `json:"votes"`
}

// RoundResult is an immutable snapshot of a single tabulation round.
//
// Count holds the vote total per slot as tallied at the start of the
// round, with Count[0] being the exhausted bucket and Count[c] the
// total for candidate c. Elected and Eliminated list the candidates
// whose status changed during the round, in the order decided.
// Transfers records the vote weight moved during the round as a
// two-level map src -> dst -> amount, where dst 0 means the weight
// exhausted. Zero-amount movements are omitted.
type RoundResult struct {
	Count      []float64               `json:"count"`
	Elected    []int                   `json:"elected"`
	Eliminated []int                   `json:"eliminated"`
	Transfers  map[int]map[int]float64 `json:"transfers,omitempty"`
}

// RaceResult is the engine's output for one race: the metadata, the
// quota that was in force for every round, the ordered round snapshots,
// and the winners in order of election. Created once per tabulation and
// never mutated afterwards.
type RaceResult struct {
	Metadata    RaceMetadata  `json:"metadata"`
	VotesNeeded float64       `json:"votes_needed"`
	Rounds      []RoundResult `json:"rounds"`
	Winners     []int         `json:"winners"`
}

// WinnerNames resolves the winner identifiers in election order.
func (r RaceResult) WinnerNames() []string {
	names := make([]string, len(r.Winners))
	for i, w := range r.Winners {
		names[i] = r.Metadata.CandidateName(w)
	}
	return names
}

// ResultSnapshot is an immutable stored record of a completed tabulation.
type ResultSnapshot struct {
	ID         string     `json:"id"`
	RaceName   string     `json:"race_name"`
	NumWinners int        `json:"num_winners"`
	ComputedAt time.Time  `json:"computed_at"`
	Result     RaceResult `json:"result"`
}
