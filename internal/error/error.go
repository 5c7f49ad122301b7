package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrShotFailed = "shot operation failed"
)

var (
	ErrInvalidFleetGrid = errors.New("fleet grid does not match the ship manifest")
	ErrInvalidManifest  = errors.New("invalid ship manifest")
	ErrInvalidGrid      = errors.New("invalid grid")
	ErrGameFinished     = errors.New("game is already finished")
)

func ErrManifestLengthMismatch(chars, sizes int) error {
	return fmt.Errorf("%w: %d ship characters but %d ship sizes", ErrInvalidManifest, chars, sizes)
}

func ErrShipSizeOutOfBound(char byte, size int) error {
	return fmt.Errorf("%w: ship %q has size %d", ErrInvalidManifest, char, size)
}

func ErrShipCharInvalid(char byte) error {
	return fmt.Errorf("%w: ship character must be a lowercase letter, got %q", ErrInvalidManifest, char)
}

func ErrShipCharDuplicated(char byte) error {
	return fmt.Errorf("%w: ship character %q declared more than once", ErrInvalidManifest, char)
}

func ErrShipSizeNotInt(value string) error {
	return fmt.Errorf("%w: ship size is not an integer:\t%s", ErrInvalidManifest, value)
}

func ErrShipCharNotSingle(value string) error {
	return fmt.Errorf("%w: ship character must be a single character:\t%s", ErrInvalidManifest, value)
}

func ErrGridEmpty() error {
	return fmt.Errorf("%w: no grid rows found", ErrInvalidGrid)
}

func ErrGridNotSquare(row, rowLen, size int) error {
	return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidGrid, row, rowLen, size)
}

func ErrGridTooLarge(size, max int) error {
	return fmt.Errorf("%w: grid size %d exceeds the maximum of %d", ErrInvalidGrid, size, max)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("incoming row or col is out of game grid bound\trow: %d\tcol: %d", x, y)
}

func ErrAttackPositionAlreadyFilled(x, y int) error {
	return fmt.Errorf("current position in target grid already taken\trow: %d\tcol: %d", x, y)
}

func ErrInvalidShotRequest(req string) error {
	return fmt.Errorf("shot request must be two integers 'row col':\t%q", req)
}
