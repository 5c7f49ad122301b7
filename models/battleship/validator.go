package battleship

// ValidateFleetGrid reports whether fleet is a legal layout for ships:
// every ship has exactly its declared number of cells, and each ship
// sits in one straight contiguous run.
func ValidateFleetGrid(fleet Grid, ships Manifest) bool {
	return ValidateCharacterCount(fleet, ships) && ValidateShipPositions(fleet, ships)
}

// ValidateCharacterCount reports whether every ship character appears
// in fleet exactly as many times as its declared size.
func ValidateCharacterCount(fleet Grid, ships Manifest) bool {
	for i, char := range ships.Characters {
		if fleet.Count(char) != ships.Sizes[i] {
			return false
		}
	}
	return true
}

// ValidateShipPositions reports whether each ship is contained in
// consecutive cells of a single row or a single column. Every ship is
// checked on its own and all of them must pass.
func ValidateShipPositions(fleet Grid, ships Manifest) bool {
	for _, char := range ships.Characters {
		if !isStraightRun(fleet.Positions(char)) {
			return false
		}
	}
	return true
}

// HasShip reports whether the ship drawn with char appears with the
// given size, completely in one row or completely in one column.
func HasShip(fleet Grid, char byte, size int) bool {
	coords := fleet.Positions(char)
	return len(coords) == size && isStraightRun(coords)
}

// coords must be in row-major order, as returned by Grid.Positions.
func isStraightRun(coords []Coordinates) bool {
	if len(coords) == 0 {
		return false
	}

	first := coords[0]
	sameRow, sameCol := true, true
	for _, c := range coords[1:] {
		if c.Row != first.Row {
			sameRow = false
		}
		if c.Col != first.Col {
			sameCol = false
		}
	}

	last := coords[len(coords)-1]
	switch {
	case sameRow:
		return last.Col-first.Col+1 == len(coords)
	case sameCol:
		return last.Row-first.Row+1 == len(coords)
	default:
		return false
	}
}
