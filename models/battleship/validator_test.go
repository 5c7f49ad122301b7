package battleship

import "testing"

func grid(rows ...string) Grid {
	g := make(Grid, len(rows))
	for i, row := range rows {
		g[i] = []byte(row)
	}
	return g
}

func manifest(chars string, sizes ...int) Manifest {
	return NewManifest([]byte(chars), sizes)
}

func TestValidateFleetGrid(t *testing.T) {
	tests := []struct {
		name     string
		fleet    Grid
		ships    Manifest
		expected bool
	}{
		{
			name:     "horizontal ship",
			fleet:    grid("aa."),
			ships:    manifest("a", 2),
			expected: true,
		},
		{
			name:     "non contiguous ship",
			fleet:    grid("a.a"),
			ships:    manifest("a", 2),
			expected: false,
		},
		{
			name:     "vertical and horizontal ships",
			fleet:    grid(".a.b", ".a.b", ".a.."),
			ships:    manifest("ab", 3, 2),
			expected: true,
		},
		{
			name:     "three ships",
			fleet:    grid("aa.b", "...b", "ccc."),
			ships:    manifest("abc", 2, 2, 3),
			expected: true,
		},
		{
			name:     "ship count mismatch",
			fleet:    grid("da.b", "d..b", "ccc."),
			ships:    manifest("abcd", 2, 2, 3, 1),
			expected: false,
		},
		{
			name:     "bent ship",
			fleet:    grid("aa..", ".a..", "....", "...."),
			ships:    manifest("a", 3),
			expected: false,
		},
		{
			name:     "diagonal ship",
			fleet:    grid("a..", ".a.", "..a"),
			ships:    manifest("a", 3),
			expected: false,
		},
		{
			name:     "single cell ship",
			fleet:    grid("...", ".b.", "..."),
			ships:    manifest("b", 1),
			expected: true,
		},
		{
			name:     "ship missing from grid",
			fleet:    grid("...", "...", "..."),
			ships:    manifest("a", 1),
			expected: false,
		},
		{
			name:     "later valid ship does not hide earlier bad ship",
			fleet:    grid("a.a.", "....", "bb..", "...."),
			ships:    manifest("ab", 2, 2),
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ValidateFleetGrid(test.fleet, test.ships); got != test.expected {
				t.Fatalf("expected: %t\tgot: %t\n%s", test.expected, got, test.fleet)
			}
		})
	}
}

func TestValidateCharacterCount(t *testing.T) {
	tests := []struct {
		name     string
		fleet    Grid
		ships    Manifest
		expected bool
	}{
		{
			name:     "counts match",
			fleet:    grid(".ab", "..b", "...", "ddd"),
			ships:    manifest("abd", 1, 2, 3),
			expected: true,
		},
		{
			name:     "counts match four ships",
			fleet:    grid(".abc", "..bc", "...c", "ddd."),
			ships:    manifest("abcd", 1, 2, 3, 3),
			expected: true,
		},
		{
			name:     "too many cells",
			fleet:    grid("aabc", "..bc", "..bc", "ddd."),
			ships:    manifest("abcd", 1, 2, 3, 3),
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ValidateCharacterCount(test.fleet, test.ships); got != test.expected {
				t.Fatalf("expected: %t\tgot: %t", test.expected, got)
			}
		})
	}
}

func TestValidateShipPositions(t *testing.T) {
	tests := []struct {
		name     string
		fleet    Grid
		ships    Manifest
		expected bool
	}{
		{
			name:     "row and column",
			fleet:    grid(".b.", ".b.", "aaa"),
			ships:    manifest("ab", 3, 2),
			expected: true,
		},
		{
			name:     "all columns",
			fleet:    grid(".a.b", ".a.b", ".a.."),
			ships:    manifest("ab", 3, 2),
			expected: true,
		},
		{
			name:     "two runs of the same ship",
			fleet:    grid("aa.a", "....", "...."),
			ships:    manifest("a", 3),
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ValidateShipPositions(test.fleet, test.ships); got != test.expected {
				t.Fatalf("expected: %t\tgot: %t", test.expected, got)
			}
		})
	}
}

func TestHasShip(t *testing.T) {
	fleet := grid(".....", "abd..", "..e..", "c....")

	if !HasShip(fleet, 'd', 1) {
		t.Fatal("expected ship d of size 1")
	}
	if HasShip(fleet, 'd', 2) {
		t.Fatal("ship d has size 1, not 2")
	}
	if HasShip(fleet, 'z', 1) {
		t.Fatal("ship z is not on the grid")
	}
}
