// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-rank/models"
)

// Summary renders the one-line winner view of a race.
func Summary(result models.RaceResult) string {
	return fmt.Sprintf("race: %s\nwinner(s): %s",
		result.Metadata.RaceName, strings.Join(result.WinnerNames(), ", "))
}

// Details renders the race header followed by every round's totals.
// Candidates elected in a round are marked with "+", eliminated with
// "-", matching the order totals appear in the Count vector (exhausted
// bucket first).
func Details(result models.RaceResult) string {
	var b strings.Builder
	b.WriteString(result.Metadata.String())
	b.WriteString("\n\n")

	for rnd, round := range result.Rounds {
		fmt.Fprintf(&b, "Round %d:\n", rnd)
		for slot, count := range round.Count {
			fmt.Fprintf(&b, " %s: %s", result.Metadata.CandidateName(slot), FormatCount(count))
			if containsInt(round.Elected, slot) {
				b.WriteString(" +")
			}
			if containsInt(round.Eliminated, slot) {
				b.WriteString(" -")
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// FormatCount renders a vote total with thousands grouping and up to
// five decimals, enough to show fractional-transfer remainders without
// float noise.
func FormatCount(count float64) string {
	return humanize.CommafWithDigits(count, 5)
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
