// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"sort"

	"github.com/danielhkuo/quickly-rank/models"
)

// FlowNode is one node of a vote-flow (Sankey) diagram: one candidate
// slot in one round. Node identifiers are implicit: the node for slot s
// in round r has index r*(numCandidates+1) + s, with slot 0 being the
// exhausted bucket.
type FlowNode struct {
	Round int    `json:"round"`
	Slot  int    `json:"slot"`
	Label string `json:"label"`
}

// FlowLink is a weighted edge between nodes in consecutive rounds:
// votes moving from one candidate to another, or votes a candidate
// keeps for itself. Hidden marks links a renderer should suppress when
// exhausted ballots are not displayed.
type FlowLink struct {
	Round  int     `json:"round"`
	Source int     `json:"source"`
	Target int     `json:"target"`
	Value  float64 `json:"value"`
	Hidden bool    `json:"hidden,omitempty"`
}

// FlowData is everything a downstream renderer needs to draw the
// round-by-round vote flow of one race. Rendering itself is a
// presentation concern and lives outside this repository.
type FlowData struct {
	RaceName string     `json:"race_name"`
	Nodes    []FlowNode `json:"nodes"`
	Links    []FlowLink `json:"links"`
}

// residual below this is float noise from fractional transfers, not a
// real self-link.
const minLinkValue = 1e-9

// BuildFlowData converts a race result into Sankey nodes and links.
// There is one node per (round, slot) pair; links connect consecutive
// rounds using the recorded transfers, plus a self-link for whatever
// each slot did not pass on. With hideExhausted set, exhausted-bucket
// nodes lose their label and links into the bucket are marked hidden.
func BuildFlowData(result models.RaceResult, hideExhausted bool) FlowData {
	numSlots := len(result.Metadata.Names) + 1
	data := FlowData{RaceName: result.Metadata.RaceName}

	for rnd := range result.Rounds {
		for slot := 0; slot < numSlots; slot++ {
			label := result.Metadata.CandidateName(slot)
			if hideExhausted && slot == models.ExhaustedSlot {
				label = ""
			}
			data.Nodes = append(data.Nodes, FlowNode{Round: rnd, Slot: slot, Label: label})
		}
	}

	for rnd := 0; rnd < len(result.Rounds)-1; rnd++ {
		round := result.Rounds[rnd]
		for src := 0; src < numSlots; src++ {
			srcLeft := round.Count[src]
			for _, tgt := range sortedTargets(round.Transfers[src]) {
				value := round.Transfers[src][tgt]
				data.Links = append(data.Links, FlowLink{
					Round:  rnd,
					Source: rnd*numSlots + src,
					Target: (rnd+1)*numSlots + tgt,
					Value:  value,
					Hidden: hideExhausted && tgt == models.ExhaustedSlot,
				})
				srcLeft -= value
			}
			if srcLeft > minLinkValue {
				data.Links = append(data.Links, FlowLink{
					Round:  rnd,
					Source: rnd*numSlots + src,
					Target: (rnd+1)*numSlots + src,
					Value:  srcLeft,
					Hidden: hideExhausted && src == models.ExhaustedSlot,
				})
			}
		}
	}
	return data
}

func sortedTargets(transfers map[int]float64) []int {
	targets := make([]int, 0, len(transfers))
	for tgt := range transfers {
		targets = append(targets, tgt)
	}
	sort.Ints(targets)
	return targets
}
