// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types and error taxonomy shared by the
tabulation engine and its collaborators.

# Candidate Numbering

Candidates are identified by 1-based indices into RaceMetadata.Names.
Index 0 (ExhaustedSlot) is reserved for ballot entries with no mark and
for the exhausted-vote bucket in round counts. A RoundResult.Count slice
therefore has len(Names)+1 entries.

# Input Types

  - RaceMetadata: race name, seats to fill, ordered candidate names
  - RaceData: metadata plus parallel Ballots/Votes slices; Votes[i] is
    the number of identical physical ballots represented by Ballots[i]

# Output Types

  - RoundResult: immutable per-round snapshot (counts, elect/eliminate
    events in decided order, transfer map src -> dst -> amount)
  - RaceResult: metadata, fixed quota, ordered rounds, winners in order
    of election
  - ResultSnapshot: a stored, timestamped RaceResult

# Errors

	ErrMalformedBallot  bad candidate identifier or duplicate ranking
	ErrDegenerateRace   zero vote weight, seats < 1, or seats > candidates
	ErrInvariant        vote conservation failed mid-tabulation (engine bug)

All input validation happens eagerly before tabulation begins, so the
first two errors are never produced after round 0 starts.
*/
package models
