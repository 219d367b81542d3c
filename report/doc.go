// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report renders race results for people and for downstream
visualization tools.

# Text Views

Summary gives the one-line winner view:

	race: Springfield City Council
	winner(s): Ned, Edna

Details adds the race header and every round's totals, with "+" and
"-" marking the round's elections and eliminations.

# Flow Data

BuildFlowData extracts the node/link structure of a Sankey diagram:
one node per candidate per round, links carrying vote transfers between
consecutive rounds plus self-links for retained votes. The output is
JSON-tagged for whatever renders it; drawing diagrams is out of scope
for this repository.
*/
package report
