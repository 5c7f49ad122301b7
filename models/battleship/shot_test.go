package battleship

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUpdateFleetGrid(t *testing.T) {
	tests := []struct {
		name          string
		row, col      int
		fleet         Grid
		ships         Manifest
		hits          []int
		expectedFleet Grid
		expectedHits  []int
		expectedSunk  bool
		expectedMsg   string
	}{
		{
			name:          "hit without sinking",
			row:           0,
			col:           1,
			fleet:         grid(".a", ".a"),
			ships:         manifest("a", 2),
			hits:          []int{0},
			expectedFleet: grid(".A", ".a"),
			expectedHits:  []int{1},
		},
		{
			name:          "second ship in manifest",
			row:           0,
			col:           3,
			fleet:         grid(".a.b", ".ccb", "...."),
			ships:         manifest("abc", 1, 2, 2),
			hits:          []int{0, 0, 0},
			expectedFleet: grid(".a.B", ".ccb", "...."),
			expectedHits:  []int{0, 1, 0},
		},
		{
			name:          "hit sinks ship",
			row:           1,
			col:           3,
			fleet:         grid(".a.B", ".ccb", "...."),
			ships:         manifest("abc", 1, 2, 2),
			hits:          []int{0, 1, 0},
			expectedFleet: grid(".a.B", ".ccB", "...."),
			expectedHits:  []int{0, 2, 0},
			expectedSunk:  true,
			expectedMsg:   "The size 2 b ship has been sunk!\n",
		},
		{
			name:          "size one ship",
			row:           0,
			col:           0,
			fleet:         grid("a"),
			ships:         manifest("a", 1),
			hits:          []int{0},
			expectedFleet: grid("A"),
			expectedHits:  []int{1},
			expectedSunk:  true,
			expectedMsg:   "The size 1 a ship has been sunk!\n",
		},
		{
			name:          "already hit cell",
			row:           0,
			col:           0,
			fleet:         grid("A"),
			ships:         manifest("a", 1),
			hits:          []int{1},
			expectedFleet: grid("A"),
			expectedHits:  []int{1},
		},
		{
			name:          "empty cell",
			row:           0,
			col:           1,
			fleet:         grid("a."),
			ships:         manifest("a", 1),
			hits:          []int{0},
			expectedFleet: grid("a."),
			expectedHits:  []int{0},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			sunk := UpdateFleetGrid(&out, test.row, test.col, test.fleet, test.ships, test.hits)

			if sunk != test.expectedSunk {
				t.Fatalf("expected sunk: %t\tgot: %t", test.expectedSunk, sunk)
			}
			if diff := cmp.Diff(test.expectedFleet, test.fleet); diff != "" {
				t.Fatalf("fleet grid mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.expectedHits, test.hits); diff != "" {
				t.Fatalf("hits mismatch (-want +got):\n%s", diff)
			}
			if out.String() != test.expectedMsg {
				t.Fatalf("expected message: %q\tgot: %q", test.expectedMsg, out.String())
			}
		})
	}
}

func TestUpdateFleetGridRepeatedShot(t *testing.T) {
	fleet := grid("aa")
	ships := manifest("a", 2)
	hits := ships.NewHits()
	var out bytes.Buffer

	UpdateFleetGrid(&out, 0, 0, fleet, ships, hits)
	UpdateFleetGrid(&out, 0, 0, fleet, ships, hits)
	if hits[0] != 1 {
		t.Fatalf("expected hits: %d\tgot: %d", 1, hits[0])
	}

	UpdateFleetGrid(&out, 0, 1, fleet, ships, hits)
	UpdateFleetGrid(&out, 0, 1, fleet, ships, hits)
	if hits[0] != 2 {
		t.Fatalf("expected hits: %d\tgot: %d", 2, hits[0])
	}
	if n := bytes.Count(out.Bytes(), []byte("has been sunk")); n != 1 {
		t.Fatalf("expected exactly one sunk message, got: %d", n)
	}
}

func TestUpdateTargetGrid(t *testing.T) {
	fleet := grid("aabd", "...d", "c...", "c...")
	target := NewTargetGrid(4)

	UpdateTargetGrid(0, 1, target, fleet)
	UpdateTargetGrid(1, 1, target, fleet)
	UpdateTargetGrid(1, 1, target, fleet)
	fleet[0][0] = 'A'
	UpdateTargetGrid(0, 0, target, fleet)

	expected := grid("XX--", "-M--", "----", "----")
	if diff := cmp.Diff(expected, target); diff != "" {
		t.Fatalf("target grid mismatch (-want +got):\n%s", diff)
	}
}

func TestIsWin(t *testing.T) {
	tests := []struct {
		name     string
		sizes    []int
		hits     []int
		expected bool
	}{
		{name: "all sunk", sizes: []int{5, 4, 3, 2, 1}, hits: []int{5, 4, 3, 2, 1}, expected: true},
		{name: "several short", sizes: []int{5, 2, 2, 3, 1}, hits: []int{4, 2, 1, 2, 1}, expected: false},
		{name: "same totals other order", sizes: []int{5, 3, 2, 4, 1}, hits: []int{5, 4, 3, 2, 1}, expected: false},
		{name: "one short", sizes: []int{2, 3}, hits: []int{2, 2}, expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ships := NewManifest(make([]byte, len(test.sizes)), test.sizes)
			if got := IsWin(ships, test.hits); got != test.expected {
				t.Fatalf("expected: %t\tgot: %t", test.expected, got)
			}
		})
	}
}

func TestIsValidCell(t *testing.T) {
	tests := []struct {
		row, col, gridSize int
		expected           bool
	}{
		{2, 3, 6, true},
		{1, 5, 4, false},
		{7, 6, 8, true},
		{0, 0, 1, true},
		{4, 0, 4, false},
		{-1, 0, 4, false},
		{0, -1, 4, false},
		{0, 0, 11, false},
	}

	for _, test := range tests {
		if got := IsValidCell(test.row, test.col, test.gridSize); got != test.expected {
			t.Fatalf("IsValidCell(%d, %d, %d) expected: %t\tgot: %t", test.row, test.col, test.gridSize, test.expected, got)
		}
	}
}

func TestIsNotGivenChar(t *testing.T) {
	g := grid("abd..", "..e..", "c....", "c....", ".....")

	if !IsNotGivenChar(1, 2, g, 'a') {
		t.Fatal("cell (1, 2) is e, not a")
	}
	if IsNotGivenChar(0, 1, g, 'b') {
		t.Fatal("cell (0, 1) is b")
	}
}
