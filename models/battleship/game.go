package battleship

import (
	"fmt"
	"io"

	cerr "github.com/saeidalz13/battleship-grid/internal/error"

	"github.com/google/uuid"
)

const (
	PositionStateMiss = -1
	PositionStateHit  = 1
)

type ShotResult struct {
	Coordinates
	PositionState int
	// Character of the ship sunk by this shot, zero otherwise
	SunkShip byte
	IsWin    bool
}

type Game struct {
	isFinished bool
	shotsFired int
	Uuid       string
	Fleet      Grid
	Target     Grid
	Ships      Manifest
	Hits       []int
}

// NewGame checks the manifest and the fleet layout before any shot
// is accepted. The fleet grid is owned by the game from here on.
func NewGame(fleet Grid, ships Manifest) (*Game, error) {
	if err := ships.Validate(); err != nil {
		return nil, err
	}
	if err := fleet.Validate(); err != nil {
		return nil, err
	}
	if !ValidateFleetGrid(fleet, ships) {
		return nil, cerr.ErrInvalidFleetGrid
	}

	return &Game{
		Uuid:   uuid.NewString(),
		Fleet:  fleet,
		Target: NewTargetGrid(fleet.Size()),
		Ships:  ships,
		Hits:   ships.NewHits(),
	}, nil
}

// Fire resolves one shot. Sunk messages are written to w.
func (g *Game) Fire(w io.Writer, row, col int) (ShotResult, error) {
	if g.isFinished {
		return ShotResult{}, cerr.ErrGameFinished
	}
	if !IsValidCell(row, col, g.Fleet.Size()) {
		return ShotResult{}, cerr.ErrXorYOutOfGridBound(row, col)
	}
	if g.Target[row][col] != Unknown {
		return ShotResult{}, cerr.ErrAttackPositionAlreadyFilled(row, col)
	}

	g.shotsFired++
	result := ShotResult{Coordinates: NewCoordinates(row, col)}

	shipChar := g.Fleet[row][col]
	if UpdateFleetGrid(w, row, col, g.Fleet, g.Ships, g.Hits) {
		result.SunkShip = shipChar
	}
	UpdateTargetGrid(row, col, g.Target, g.Fleet)

	if g.Target[row][col] == Hit {
		result.PositionState = PositionStateHit
	} else {
		result.PositionState = PositionStateMiss
	}

	if IsWin(g.Ships, g.Hits) {
		result.IsWin = true
		g.FinishGame()
	}
	return result, nil
}

func (g *Game) FinishGame() {
	g.isFinished = true
}

func (g *Game) IsFinished() bool {
	return g.isFinished
}

func (g *Game) ShotsFired() int {
	return g.shotsFired
}

func (g *Game) SunkenShips() int {
	sunk := 0
	for i := range g.Ships.Sizes {
		if g.Ships.IsShipSunk(i, g.Hits) {
			sunk++
		}
	}
	return sunk
}

func (g *Game) String() string {
	return fmt.Sprintf("game %s: %d/%d ships sunk after %d shots", g.Uuid, g.SunkenShips(), g.Ships.Len(), g.shotsFired)
}
