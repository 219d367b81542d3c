// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package transform

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-rank/models"
)

func rm(name string, numWinners int, names ...string) models.RaceMetadata {
	return models.RaceMetadata{RaceName: name, NumWinners: numWinners, Names: names}
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   []HeaderRace
	}{
		{
			name:   "single column",
			header: []string{"Q0 [A00]"},
			want:   []HeaderRace{{rm("Q0", 1, "A00"), 0, 1}},
		},
		{
			name:   "leading non-race column",
			header: []string{"T", "Q0 [A00]", "Q0 [A01]"},
			want:   []HeaderRace{{rm("Q0", 1, "A00", "A01"), 1, 3}},
		},
		{
			name:   "two columns",
			header: []string{"Q0 [A00]", "Q0 [A01]"},
			want:   []HeaderRace{{rm("Q0", 1, "A00", "A01"), 0, 2}},
		},
		{
			name:   "two adjacent races",
			header: []string{"Q0 [A00]", "Q0 [A01]", "Q1 [A10]", "Q1 [A11]"},
			want: []HeaderRace{
				{rm("Q0", 1, "A00", "A01"), 0, 2},
				{rm("Q1", 1, "A10", "A11"), 2, 4},
			},
		},
		{
			name:   "races separated by other columns",
			header: []string{"T", "Q0 [A00]", "Q0 [A01]", "T", "Q1 [A10]", "Q1 [A11]", "T"},
			want: []HeaderRace{
				{rm("Q0", 1, "A00", "A01"), 1, 3},
				{rm("Q1", 1, "A10", "A11"), 4, 6},
			},
		},
		{
			name:   "multi-winner parenthetical",
			header: []string{"Q0 (2 winners) [A00]", "Q0 (2 winners) [A01]", "Q0 (2 winners) [A02]"},
			want:   []HeaderRace{{rm("Q0", 2, "A00", "A01", "A02"), 0, 3}},
		},
		{
			name:   "trailing space is not a race",
			header: []string{"Q0 [A00] "},
			want:   nil,
		},
		{
			name:   "missing space is not a race",
			header: []string{"Q0[A00]"},
			want:   nil,
		},
		{
			name:   "extra spaces before bracket",
			header: []string{"Q0  [A00]"},
			want:   []HeaderRace{{rm("Q0", 1, "A00"), 0, 1}},
		},
		{
			name:   "extra spaces in parenthetical",
			header: []string{"Q0 (2  winners) [A00]"},
			want:   []HeaderRace{{rm("Q0", 2, "A00"), 0, 1}},
		},
		{
			name:   "extra spaces around parenthetical",
			header: []string{"Q0  (2 winners)  [A00]"},
			want:   []HeaderRace{{rm("Q0", 2, "A00"), 0, 1}},
		},
		{
			name:   "single winner spelled out",
			header: []string{"Mayor (1 winner) [Luke Skywalker]"},
			want:   []HeaderRace{{rm("Mayor", 1, "Luke Skywalker"), 0, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseHeader(tt.header)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseHeader(%v) = %+v, want %+v", tt.header, got, tt.want)
			}
		})
	}
}

const seasonsHeader = "What is your favorite season? [Spring]," +
	"What is your favorite season? [Summer]," +
	"What is your favorite season? [Autumn]," +
	"What is your favorite season? [Winter]"

var seasonsMetadata = rm("What is your favorite season?", 1, "Spring", "Summer", "Autumn", "Winter")

func TestParseGoogleFormCSV(t *testing.T) {
	csvData := seasonsHeader + "\n" +
		"1st,,,\n" +
		"1st,3rd,2nd,4th\n" +
		",1st,,\n" +
		"4th,1st,2nd,3rd\n" +
		"4th,1st,2nd,3rd\n" +
		"2nd,4th,1st,3rd\n" +
		"4th,2nd,1st,3rd\n" +
		"4th,2nd,1st,3rd\n"

	actual, err := ParseGoogleFormCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatal(err)
	}

	expected := []models.RaceData{
		{
			Metadata: seasonsMetadata,
			Ballots: [][]int{
				{1, 0, 0, 0},
				{1, 3, 2, 4},
				{2, 0, 0, 0},
				{2, 3, 4, 1},
				{3, 1, 4, 2},
				{3, 2, 4, 1},
			},
			Votes: []int{1, 1, 1, 2, 1, 2},
		},
	}
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("ParseGoogleFormCSV = %+v, want %+v", actual, expected)
	}
}

func TestParseGoogleFormCSV_Weighted(t *testing.T) {
	csvData := seasonsHeader + ",weight\n" +
		"1st,,,,3\n" +
		"1st,3rd,2nd,4th,1\n" +
		",1st,,,2\n" +
		"4th,1st,2nd,3rd,3\n" +
		"2nd,4th,1st,3rd,4\n" +
		"4th,2nd,1st,3rd,3\n"

	actual, err := ParseGoogleFormCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatal(err)
	}

	expected := []models.RaceData{
		{
			Metadata: seasonsMetadata,
			Ballots: [][]int{
				{1, 0, 0, 0},
				{1, 3, 2, 4},
				{2, 0, 0, 0},
				{2, 3, 4, 1},
				{3, 1, 4, 2},
				{3, 2, 4, 1},
			},
			Votes: []int{3, 1, 2, 3, 4, 3},
		},
	}
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("ParseGoogleFormCSV = %+v, want %+v", actual, expected)
	}
}

func TestParseGoogleFormCSV_PlainIntegerRanks(t *testing.T) {
	csvData := seasonsHeader + "\n4,2,1,3\n"

	actual, err := ParseGoogleFormCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatal(err)
	}

	expected := []models.RaceData{
		{
			Metadata: seasonsMetadata,
			Ballots:  [][]int{{3, 2, 4, 1}},
			Votes:    []int{1},
		},
	}
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("ParseGoogleFormCSV = %+v, want %+v", actual, expected)
	}
}

func TestParseGoogleFormCSV_MultipleRaces(t *testing.T) {
	csvData := "Timestamp,Mayor [Abe],Mayor [Betty],Police Chief [Alice],Police Chief [Bob]\n" +
		"2024-01-01,1,2,2,1\n" +
		"2024-01-02,1st,2nd,,1st\n" +
		"2024-01-03,2nd,,1st,2nd\n"

	actual, err := ParseGoogleFormCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatal(err)
	}

	if len(actual) != 2 {
		t.Fatalf("expected 2 races, got %d", len(actual))
	}
	if actual[0].Metadata.RaceName != "Mayor" || actual[1].Metadata.RaceName != "Police Chief" {
		t.Errorf("race names = %q, %q", actual[0].Metadata.RaceName, actual[1].Metadata.RaceName)
	}

	wantMayor := models.RaceData{
		Metadata: rm("Mayor", 1, "Abe", "Betty"),
		Ballots:  [][]int{{1, 0}, {1, 2}},
		Votes:    []int{1, 2},
	}
	if !reflect.DeepEqual(actual[0], wantMayor) {
		t.Errorf("mayor race = %+v, want %+v", actual[0], wantMayor)
	}

	wantChief := models.RaceData{
		Metadata: rm("Police Chief", 1, "Alice", "Bob"),
		Ballots:  [][]int{{1, 2}, {2, 0}, {2, 1}},
		Votes:    []int{1, 1, 1},
	}
	if !reflect.DeepEqual(actual[1], wantChief) {
		t.Errorf("police chief race = %+v, want %+v", actual[1], wantChief)
	}
}

func TestParseGoogleFormCSV_BadCells(t *testing.T) {
	tests := []struct {
		name string
		cell string
	}{
		{name: "two numbers", cell: "1st2nd"},
		{name: "float rank", cell: "0.5"},
		{name: "no number", cell: "first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csvData := "Q [A],Q [B]\n" + tt.cell + ",2\n"
			_, err := ParseGoogleFormCSV(strings.NewReader(csvData))
			if !errors.Is(err, models.ErrMalformedBallot) {
				t.Errorf("error = %v, want ErrMalformedBallot", err)
			}
		})
	}
}

func TestParseGoogleFormCSV_BadWeight(t *testing.T) {
	csvData := "Q [A],Q [B],weight\n1,2,heavy\n"
	if _, err := ParseGoogleFormCSV(strings.NewReader(csvData)); !errors.Is(err, models.ErrMalformedBallot) {
		t.Errorf("error = %v, want ErrMalformedBallot", err)
	}

	csvData = "Q [A],Q [B],weight\n1,2,-1\n"
	if _, err := ParseGoogleFormCSV(strings.NewReader(csvData)); !errors.Is(err, models.ErrMalformedBallot) {
		t.Errorf("error = %v, want ErrMalformedBallot", err)
	}
}

func TestParseGoogleFormCSV_Empty(t *testing.T) {
	if _, err := ParseGoogleFormCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}
