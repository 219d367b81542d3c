// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package transform converts Google Form results CSV exports into the
weighted ballot format the tabulation engine consumes.

# CSV Layout

One header row, then one row per ballot. Column headers carry the race
title, an optional seat count, and one candidate each:

	Mayor [Abe], Mayor [Betty], City Council (4 winners) [Chris], ...

Adjacent columns with the same title belong to the same race, so a
single form (and a single CSV) can hold several races side by side.
Columns that do not match the pattern (such as the form's Timestamp)
are skipped and end the current race's column run.

# Ballot Cells

Each cell holds the rank a voter gave that candidate: a plain number
("2"), an ordinal ("2nd"), or blank for unranked. Rank values may have
gaps; only their relative order matters. A reserved "weight" column
multiplies the whole row.

# Output

ParseGoogleFormCSV returns one RaceData per race. Rows with identical
preference orders are merged into a single weighted ballot and sorted,
so parsing is deterministic and the engine never iterates one object
per voter.

Only this documented layout is supported; arbitrary spreadsheet formats
are out of scope.
*/
package transform
