package battleship

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-grid/internal/error"
)

// ReadShipData reads the ship characters from the next line of r and
// the ship sizes from the line after it. Only the format is checked;
// use Manifest.Validate for the rest.
func ReadShipData(r *bufio.Reader) (Manifest, error) {
	charLine, err := readLine(r)
	if err != nil {
		return Manifest{}, err
	}
	sizeLine, err := readLine(r)
	if err != nil {
		return Manifest{}, err
	}

	charFields := strings.Fields(charLine)
	characters := make([]byte, len(charFields))
	for i, field := range charFields {
		if len(field) != 1 {
			return Manifest{}, cerr.ErrShipCharNotSingle(field)
		}
		characters[i] = field[0]
	}

	sizeFields := strings.Fields(sizeLine)
	sizes := make([]int, len(sizeFields))
	for i, field := range sizeFields {
		size, err := strconv.Atoi(field)
		if err != nil {
			return Manifest{}, cerr.ErrShipSizeNotInt(field)
		}
		sizes[i] = size
	}

	return NewManifest(characters, sizes), nil
}

// ReadFleetGrid reads the rest of r as a fleet grid, one row per
// non-blank line. Cells may be written back to back ("aa..") or
// separated by whitespace ("a a . .").
func ReadFleetGrid(r *bufio.Reader) (Grid, error) {
	var grid Grid

	for {
		line, err := readLine(r)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		row := []byte(strings.Join(strings.Fields(line), ""))
		if len(row) == 0 {
			continue
		}
		grid = append(grid, row)
	}

	if err := grid.Validate(); err != nil {
		return nil, err
	}
	return grid, nil
}

// readLine returns the next line without its line ending. A final
// line with no newline is returned as is; io.EOF is only returned
// once nothing is left.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
