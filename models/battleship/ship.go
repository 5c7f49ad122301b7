package battleship

import (
	cerr "github.com/saeidalz13/battleship-grid/internal/error"
)

const (
	MinShipSize int = 1
	MaxShipSize int = 10
)

// Manifest declares the ships of a game. Index i of Characters
// and Sizes describe the same ship.
type Manifest struct {
	Characters []byte
	Sizes      []int
}

func NewManifest(characters []byte, sizes []int) Manifest {
	return Manifest{
		Characters: characters,
		Sizes:      sizes,
	}
}

func (m Manifest) Len() int {
	return len(m.Characters)
}

// Index returns the manifest index of the ship drawn with char
// (lower or upper case), or -1.
func (m Manifest) Index(char byte) int {
	if isHitShipChar(char) {
		char = char - 'A' + 'a'
	}
	for i, c := range m.Characters {
		if c == char {
			return i
		}
	}
	return -1
}

// NewHits returns a zeroed hit counter aligned with the manifest.
func (m Manifest) NewHits() []int {
	return make([]int, m.Len())
}

func (m Manifest) IsShipSunk(idx int, hits []int) bool {
	return hits[idx] == m.Sizes[idx]
}

// Validate checks the preconditions the grid functions assume of a manifest.
func (m Manifest) Validate() error {
	if len(m.Characters) != len(m.Sizes) {
		return cerr.ErrManifestLengthMismatch(len(m.Characters), len(m.Sizes))
	}

	seen := make(map[byte]bool, m.Len())
	for i, char := range m.Characters {
		if !isShipChar(char) {
			return cerr.ErrShipCharInvalid(char)
		}
		if seen[char] {
			return cerr.ErrShipCharDuplicated(char)
		}
		seen[char] = true

		if m.Sizes[i] < MinShipSize || m.Sizes[i] > MaxShipSize {
			return cerr.ErrShipSizeOutOfBound(char, m.Sizes[i])
		}
	}
	return nil
}
