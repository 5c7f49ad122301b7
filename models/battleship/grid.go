package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-grid/internal/error"
)

const MaxGridSize int = 10

// Cell states. Ship cells on a fleet grid use lowercase
// letters, and the uppercase form once they are hit.
const (
	Empty   byte = '.'
	Unknown byte = '-'
	Hit     byte = 'X'
	Miss    byte = 'M'
)

type Coordinates struct {
	Row int
	Col int
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

// Grid is a square row-major grid of cell characters.
type Grid [][]byte

// Creates a new grid with every cell set to fill
func NewGrid(gridSize int, fill byte) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]byte, gridSize)
		for j := range grid[i] {
			grid[i][j] = fill
		}
	}
	return grid
}

func NewFleetGrid(gridSize int) Grid {
	return NewGrid(gridSize, Empty)
}

func NewTargetGrid(gridSize int) Grid {
	return NewGrid(gridSize, Unknown)
}

func (g Grid) Size() int {
	return len(g)
}

// Validate checks that g is a non-empty square grid no larger than
// MaxGridSize. Every other grid function assumes this.
func (g Grid) Validate() error {
	if len(g) == 0 {
		return cerr.ErrGridEmpty()
	}
	if len(g) > MaxGridSize {
		return cerr.ErrGridTooLarge(len(g), MaxGridSize)
	}
	for i, row := range g {
		if len(row) != len(g) {
			return cerr.ErrGridNotSquare(i, len(row), len(g))
		}
	}
	return nil
}

// Count returns how many cells hold char.
func (g Grid) Count(char byte) int {
	count := 0
	for _, row := range g {
		for _, cell := range row {
			if cell == char {
				count++
			}
		}
	}
	return count
}

// Positions returns the coordinates of every cell holding char,
// in row-major order.
func (g Grid) Positions(char byte) []Coordinates {
	var coords []Coordinates
	for r, row := range g {
		for c, cell := range row {
			if cell == char {
				coords = append(coords, NewCoordinates(r, c))
			}
		}
	}
	return coords
}

func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// IsValidCell reports whether (row, col) lies inside a square
// grid of gridSize. Grids larger than MaxGridSize have no valid cells.
func IsValidCell(row, col, gridSize int) bool {
	if gridSize > MaxGridSize {
		return false
	}
	return row >= 0 && row < gridSize && col >= 0 && col < gridSize
}

func IsNotGivenChar(row, col int, grid Grid, char byte) bool {
	return grid[row][col] != char
}

func isShipChar(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isHitShipChar(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func toUpper(c byte) byte {
	return c - 'a' + 'A'
}
