// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rcv

import (
	"fmt"
	"math"
	"sort"

	"github.com/danielhkuo/quickly-rank/models"
)

// Per-candidate status. Elected and eliminated are terminal.
const (
	statusActive     int8 = 0
	statusElected    int8 = 1
	statusEliminated int8 = -1
)

// ballotState tracks one weighted ballot through the rounds: its dense
// preference list, a pointer to the highest preference not yet ruled
// out, and the transferable weight it still carries.
type ballotState struct {
	prefs  []int
	pos    int
	weight float64
}

// current advances the pointer past candidates that are no longer
// active and returns the candidate this ballot supports, or
// ExhaustedSlot if no active preference remains.
func (b *ballotState) current(status []int8) int {
	for b.pos < len(b.prefs) && status[b.prefs[b.pos]] != statusActive {
		b.pos++
	}
	if b.pos == len(b.prefs) {
		return models.ExhaustedSlot
	}
	return b.prefs[b.pos]
}

// Tabulate runs single-transferable-vote tabulation for one race.
//
// Each round tallies ballots to their highest-ranked active candidate,
// elects every active candidate at or above the threshold (surplus
// weight transferring fractionally to lower preferences), and otherwise
// eliminates the candidate with the fewest votes (full weight
// transferring). When the remaining active candidates exactly fill the
// remaining seats they are elected without clearing the threshold.
// Ties are broken deterministically: candidates are processed in
// descending vote total, lower identifier first on equal totals, and
// elimination picks the lowest total, lower identifier first.
//
// All input validation happens before the first round; once running the
// tabulation always completes, in at most one round per candidate. The
// returned result is independent of the input and never mutated.
func Tabulate(data models.RaceData, mode RoundMode) (*models.RaceResult, error) {
	numCands := len(data.Metadata.Names)
	numWinners := data.Metadata.NumWinners

	if numWinners > numCands {
		return nil, fmt.Errorf("num_winners %d exceeds %d candidates: %w",
			numWinners, numCands, models.ErrDegenerateRace)
	}
	if len(data.Ballots) != len(data.Votes) {
		return nil, fmt.Errorf("%d ballots but %d vote counts: %w",
			len(data.Ballots), len(data.Votes), models.ErrMalformedBallot)
	}
	for i, v := range data.Votes {
		if v < 0 {
			return nil, fmt.Errorf("ballot %d: negative vote count %d: %w",
				i, v, models.ErrMalformedBallot)
		}
	}

	prefs, err := StandardizeBallots(data.Ballots, numCands)
	if err != nil {
		return nil, err
	}

	// Empty ballots sit in the exhausted bucket from round 0 and do not
	// count toward the threshold.
	var totalAll, totalValid float64
	ballots := make([]ballotState, len(prefs))
	for i, p := range prefs {
		w := float64(data.Votes[i])
		ballots[i] = ballotState{prefs: p, weight: w}
		totalAll += w
		if len(p) > 0 {
			totalValid += w
		}
	}

	votesNeeded, err := VotesNeeded(totalValid, numWinners, mode)
	if err != nil {
		return nil, err
	}

	status := make([]int8, numCands+1)
	retained := make([]float64, numCands+1)

	result := &models.RaceResult{
		Metadata:    data.Metadata,
		VotesNeeded: votesNeeded,
	}

	electedCount := 0
	for electedCount < numWinners {
		// Tally. Elected candidates hold their retained threshold
		// weight; everything else sits on a ballot or is exhausted.
		counts := make([]float64, numCands+1)
		for c := 1; c <= numCands; c++ {
			if status[c] == statusElected {
				counts[c] = retained[c]
			}
		}
		for i := range ballots {
			b := &ballots[i]
			counts[b.current(status)] += b.weight
		}

		var sum float64
		for _, v := range counts {
			sum += v
		}
		if !closeEnough(sum, totalAll) {
			return nil, fmt.Errorf("round %d count total %v does not equal original votes %v: %w",
				len(result.Rounds), sum, totalAll, models.ErrInvariant)
		}

		round := models.RoundResult{Count: counts}

		// Election check: everyone at or above the threshold wins a
		// seat this round, processed highest total first.
		var elected []int
		for c := 1; c <= numCands; c++ {
			if status[c] == statusActive && counts[c] >= votesNeeded {
				elected = append(elected, c)
			}
		}
		if len(elected) > 0 {
			sortByCount(elected, counts)
			for _, c := range elected {
				status[c] = statusElected
				electedCount++
			}
			// Surplus transfer: each winner keeps exactly the
			// threshold; its ballots forward the rest.
			for _, c := range elected {
				transfer(&round, c, votesNeeded/counts[c], ballots, status, retained)
			}
			round.Elected = elected
			result.Winners = append(result.Winners, elected...)
		}

		if electedCount == numWinners {
			result.Rounds = append(result.Rounds, round)
			break
		}

		// Remaining active candidates exactly fill the remaining
		// seats: elect them all without clearing the threshold.
		var active []int
		for c := 1; c <= numCands; c++ {
			if status[c] == statusActive {
				active = append(active, c)
			}
		}
		if electedCount+len(active) == numWinners {
			sortByCount(active, counts)
			for _, c := range active {
				status[c] = statusElected
				electedCount++
			}
			round.Elected = append(round.Elected, active...)
			result.Winners = append(result.Winners, active...)
			result.Rounds = append(result.Rounds, round)
			break
		}

		// Elimination round: fewest votes goes, full weight transfers.
		if len(round.Elected) == 0 {
			loser := 0
			for c := 1; c <= numCands; c++ {
				if status[c] == statusActive && (loser == 0 || counts[c] < counts[loser]) {
					loser = c
				}
			}
			status[loser] = statusEliminated
			round.Eliminated = []int{loser}
			transfer(&round, loser, 0, ballots, status, retained)
		}

		result.Rounds = append(result.Rounds, round)
	}

	return result, nil
}

// transfer moves vote weight off candidate c. Each ballot currently
// assigned to c keeps the fraction keep with c (retained threshold
// weight for a winner, zero for a loser) and carries the remainder to
// its next active preference, or to the exhausted bucket. Nonzero
// movements are recorded in the round's transfer map.
func transfer(round *models.RoundResult, c int, keep float64, ballots []ballotState, status []int8, retained []float64) {
	for i := range ballots {
		b := &ballots[i]
		if b.pos == len(b.prefs) || b.prefs[b.pos] != c {
			continue
		}
		kept := b.weight * keep
		moved := b.weight - kept
		retained[c] += kept
		b.weight = moved

		dst := b.current(status)
		if moved != 0 {
			if round.Transfers == nil {
				round.Transfers = make(map[int]map[int]float64)
			}
			if round.Transfers[c] == nil {
				round.Transfers[c] = make(map[int]float64)
			}
			round.Transfers[c][dst] += moved
		}
	}
}

// sortByCount orders candidates by descending vote total, breaking ties
// in favor of the lower identifier. This is the fixed tie-break policy
// for both election processing order and final winner order.
func sortByCount(cands []int, counts []float64) {
	sort.Slice(cands, func(i, j int) bool {
		if counts[cands[i]] != counts[cands[j]] {
			return counts[cands[i]] > counts[cands[j]]
		}
		return cands[i] < cands[j]
	})
}

// closeEnough reports whether two vote totals agree within Epsilon
// relative tolerance, absorbing float drift from fractional transfers.
func closeEnough(a, b float64) bool {
	return math.Abs(a-b) <= 1e-8+Epsilon*math.Abs(b)
}
