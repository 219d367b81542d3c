// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rcv

import (
	"errors"
	"reflect"
	"testing"

	"github.com/danielhkuo/quickly-rank/models"
)

func TestStandardizeBallots(t *testing.T) {
	tests := []struct {
		name    string
		ballots [][]int
		want    [][]int
	}{
		{
			name:    "trailing zeros stripped",
			ballots: [][]int{{1, 0, 0}, {1, 2, 0}, {1, 2, 3}},
			want:    [][]int{{1}, {1, 2}, {1, 2, 3}},
		},
		{
			name:    "ragged lengths",
			ballots: [][]int{{1, 0, 0}, {1, 2}, {1, 2, 3}},
			want:    [][]int{{1}, {1, 2}, {1, 2, 3}},
		},
		{
			name:    "interior zeros stripped",
			ballots: [][]int{{0, 2, 0, 1}},
			want:    [][]int{{2, 1}},
		},
		{
			name:    "empty ballot kept as degenerate",
			ballots: [][]int{{0, 0}, {}},
			want:    [][]int{{}, {}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StandardizeBallots(tt.ballots, 3)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d ballots, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if len(got[i]) != len(tt.want[i]) {
					t.Errorf("ballot %d = %v, want %v", i, got[i], tt.want[i])
					continue
				}
				for j := range tt.want[i] {
					if got[i][j] != tt.want[i][j] {
						t.Errorf("ballot %d = %v, want %v", i, got[i], tt.want[i])
						break
					}
				}
			}
		})
	}
}

// Standardizing already dense ballots changes nothing.
func TestStandardizeBallots_Idempotent(t *testing.T) {
	ballots := [][]int{{3, 1, 2}, {2}, {1, 3}}

	once, err := StandardizeBallots(ballots, 3)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := StandardizeBallots(once, 3)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second pass changed ballots: %v vs %v", once, twice)
	}
	if !reflect.DeepEqual(once, ballots) {
		t.Errorf("dense ballots altered: %v", once)
	}
}

func TestStandardizeBallots_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		ballots [][]int
	}{
		{name: "out of range", ballots: [][]int{{1, 0, 0}, {1, 2, 3}}},
		{name: "negative", ballots: [][]int{{1, -1}}},
		{name: "duplicate", ballots: [][]int{{1, 0, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := StandardizeBallots(tt.ballots, 2)
			if !errors.Is(err, models.ErrMalformedBallot) {
				t.Errorf("error = %v, want ErrMalformedBallot", err)
			}
		})
	}
}

func TestPreferenceOrder(t *testing.T) {
	tests := []struct {
		name  string
		ranks []int
		want  []int
	}{
		{name: "full ranking", ranks: []int{2, 3, 1}, want: []int{3, 1, 2}},
		{name: "gaps allowed", ranks: []int{2, 0, 5, 4}, want: []int{1, 4, 3}},
		{name: "unranked", ranks: []int{0, 0, 0}, want: []int{}},
		{name: "tied ranks order by identifier", ranks: []int{1, 2, 1}, want: []int{1, 3, 2}},
		{name: "non-contiguous equals dense", ranks: []int{10, 20, 30}, want: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PreferenceOrder(tt.ranks)
			if len(got) != len(tt.want) {
				t.Fatalf("PreferenceOrder(%v) = %v, want %v", tt.ranks, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("PreferenceOrder(%v) = %v, want %v", tt.ranks, got, tt.want)
				}
			}
		})
	}
}
