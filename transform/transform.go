// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package transform

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/danielhkuo/quickly-rank/models"
	"github.com/danielhkuo/quickly-rank/rcv"
)

// A Google Form column header is the race title, an optional seat-count
// parenthetical, then one candidate in brackets:
//
//	What is your favorite season? [Spring]
//	City Council (4 winners) [Darth Vader]
//
// Without the parenthetical the race is single-winner.
var questionPattern = regexp.MustCompile(
	`^(?P<question>.*?)(?:\s+\((?P<num_winners>\d+)\s+winners?\))?\s*? \[(?P<option>.*)\]$`)

var numberPattern = regexp.MustCompile(`\d+`)

// WeightColumn is the reserved header for a per-row ballot multiplier.
const WeightColumn = "weight"

// HeaderRace is one race recognized in a CSV header row: its metadata
// plus the half-open column range [Start, End) holding its candidates.
type HeaderRace struct {
	Metadata models.RaceMetadata
	Start    int
	End      int
}

// ParseHeader scans a CSV header row for races. Adjacent columns whose
// titles match form one race; any non-matching column ends the current
// race's column run.
func ParseHeader(header []string) []HeaderRace {
	var races []HeaderRace
	open := false

	for i, col := range header {
		m := questionPattern.FindStringSubmatch(col)
		if m == nil {
			open = false
			continue
		}

		question := strings.TrimSpace(m[1])
		option := strings.TrimSpace(m[3])
		numWinners := 1
		if m[2] != "" {
			numWinners, _ = strconv.Atoi(m[2])
		}

		if open && races[len(races)-1].Metadata.RaceName == question {
			last := &races[len(races)-1]
			last.Metadata.Names = append(last.Metadata.Names, option)
			last.End = i + 1
			continue
		}
		races = append(races, HeaderRace{
			Metadata: models.RaceMetadata{
				RaceName:   question,
				NumWinners: numWinners,
				Names:      []string{option},
			},
			Start: i,
			End:   i + 1,
		})
		open = true
	}
	return races
}

// ParseGoogleFormCSV parses race and ballot data from a Google Form
// results CSV. The first row is the header (see ParseHeader); every
// following row is one ballot, ranking each race's candidates with
// numbers ("2") or ordinals ("2nd"), blanks meaning unranked. Gaps in
// rank values are fine; only relative order matters. An optional
// "weight" column multiplies a row's ballot count.
//
// Rows with identical preference orders are merged into one weighted
// ballot, and each race's ballots are sorted for deterministic output.
func ParseGoogleFormCSV(r io.Reader) ([]models.RaceData, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv has no header row")
	}
	header := records[0]
	rows := records[1:]

	weights, err := rowWeights(header, rows)
	if err != nil {
		return nil, err
	}

	var races []models.RaceData
	for _, hr := range ParseHeader(header) {
		numCands := len(hr.Metadata.Names)

		// Deduplicate identical preference orders into weighted ballots.
		votes := make(map[string]int)
		prefsByKey := make(map[string][]int)
		for rowIdx, row := range rows {
			ranks := make([]int, numCands)
			for col := hr.Start; col < hr.End; col++ {
				rank, err := coerceRank(row[col])
				if err != nil {
					return nil, fmt.Errorf("row %d, column %q: %w", rowIdx+1, header[col], err)
				}
				ranks[col-hr.Start] = rank
			}

			// Pad to a fixed width so identical orders share a key.
			ballot := make([]int, numCands)
			copy(ballot, rcv.PreferenceOrder(ranks))

			key := ballotKey(ballot)
			votes[key] += weights[rowIdx]
			prefsByKey[key] = ballot
		}

		keys := make([]string, 0, len(votes))
		for k := range votes {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		data := models.RaceData{Metadata: hr.Metadata}
		for _, k := range keys {
			data.Ballots = append(data.Ballots, prefsByKey[k])
			data.Votes = append(data.Votes, votes[k])
		}
		races = append(races, data)
	}
	return races, nil
}

// rowWeights resolves each row's ballot multiplier from the optional
// weight column, defaulting to one.
func rowWeights(header []string, rows [][]string) ([]int, error) {
	weightCol := -1
	for i, col := range header {
		if col == WeightColumn {
			weightCol = i
			break
		}
	}

	weights := make([]int, len(rows))
	for i, row := range rows {
		weights[i] = 1
		if weightCol < 0 {
			continue
		}
		w, err := strconv.Atoi(strings.TrimSpace(row[weightCol]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad weight %q: %w", i+1, row[weightCol], models.ErrMalformedBallot)
		}
		if w < 0 {
			return nil, fmt.Errorf("row %d: negative weight %d: %w", i+1, w, models.ErrMalformedBallot)
		}
		weights[i] = w
	}
	return weights, nil
}

// coerceRank extracts the rank number from one CSV cell. Accepts plain
// integers and ordinals ("3", "3rd"); a blank cell means unranked.
func coerceRank(cell string) (int, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, nil
	}
	numbers := numberPattern.FindAllString(cell, -1)
	if len(numbers) != 1 {
		return 0, fmt.Errorf("could not determine rank from %q: %w", cell, models.ErrMalformedBallot)
	}
	return strconv.Atoi(numbers[0])
}

// ballotKey encodes a padded preference list for deduplication. Keys
// sort in the same order as the underlying int slices.
func ballotKey(ballot []int) string {
	var b strings.Builder
	for _, cand := range ballot {
		fmt.Fprintf(&b, "%08d,", cand)
	}
	return b.String()
}
