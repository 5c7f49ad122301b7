package battleship

import (
	"fmt"
	"io"
)

// UpdateFleetGrid resolves a shot at (row, col) on the fleet grid.
// A live ship cell is turned to its uppercase form and the ship's hit
// counter goes up by one; when that hit sinks the ship, the sunk message
// is written to w and true is returned. Empty and already hit cells are
// left untouched.
func UpdateFleetGrid(w io.Writer, row, col int, fleet Grid, ships Manifest, hits []int) bool {
	cell := fleet[row][col]
	if !isShipChar(cell) {
		return false
	}

	idx := ships.Index(cell)
	if idx < 0 {
		return false
	}

	fleet[row][col] = toUpper(cell)
	hits[idx]++

	if ships.IsShipSunk(idx, hits) {
		PrintSunkMessage(w, ships.Sizes[idx], ships.Characters[idx])
		return true
	}
	return false
}

// UpdateTargetGrid sets the target cell at (row, col) to Miss or Hit
// depending on the fleet cell under it.
func UpdateTargetGrid(row, col int, target, fleet Grid) {
	if fleet[row][col] == Empty {
		target[row][col] = Miss
		return
	}
	target[row][col] = Hit
}

// IsWin reports whether every ship in the manifest has been sunk.
func IsWin(ships Manifest, hits []int) bool {
	for i := range ships.Sizes {
		if hits[i] != ships.Sizes[i] {
			return false
		}
	}
	return true
}

func PrintSunkMessage(w io.Writer, shipSize int, shipChar byte) {
	fmt.Fprintf(w, "The size %d %c ship has been sunk!\n", shipSize, shipChar)
}
