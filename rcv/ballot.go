// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rcv

import (
	"fmt"
	"sort"

	"github.com/danielhkuo/quickly-rank/models"
)

// StandardizeBallots validates raw ballots against the candidate count
// and returns dense copies with all zero ("no mark") entries removed.
// Only relative order is meaningful, so a ballot with gaps normalizes to
// the same preference list as one without. Standardizing an already
// dense ballot is a no-op. The inputs are never mutated.
//
// A ballot entry outside [0, numCands], or a nonzero entry appearing
// more than once in the same ballot, fails with ErrMalformedBallot.
func StandardizeBallots(ballots [][]int, numCands int) ([][]int, error) {
	out := make([][]int, len(ballots))
	for i, ballot := range ballots {
		seen := make([]bool, numCands+1)
		prefs := make([]int, 0, len(ballot))
		for _, cand := range ballot {
			if cand < 0 || cand > numCands {
				return nil, fmt.Errorf("ballot %d: candidate %d out of range [0, %d]: %w",
					i, cand, numCands, models.ErrMalformedBallot)
			}
			if cand == models.ExhaustedSlot {
				continue
			}
			if seen[cand] {
				return nil, fmt.Errorf("ballot %d: duplicated candidate %d: %w",
					i, cand, models.ErrMalformedBallot)
			}
			seen[cand] = true
			prefs = append(prefs, cand)
		}
		out[i] = prefs
	}
	return out, nil
}

// PreferenceOrder converts per-candidate rank values into an ordered
// preference list. ranks[i] is the rank a voter assigned to candidate
// i+1, with zero meaning unranked. Non-contiguous rank values are fine;
// only relative order matters. Candidates sharing a rank value are
// ordered by identifier, lowest first.
func PreferenceOrder(ranks []int) []int {
	type entry struct{ rank, cand int }
	entries := make([]entry, 0, len(ranks))
	for i, r := range ranks {
		if r != 0 {
			entries = append(entries, entry{rank: r, cand: i + 1})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].rank != entries[j].rank {
			return entries[i].rank < entries[j].rank
		}
		return entries[i].cand < entries[j].cand
	})

	prefs := make([]int, len(entries))
	for i, e := range entries {
		prefs[i] = e.cand
	}
	return prefs
}
