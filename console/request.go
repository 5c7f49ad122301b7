package console

import (
	"bytes"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-grid/internal/error"
	mb "github.com/saeidalz13/battleship-grid/models/battleship"
)

// Every line read from the player is a request
type Request struct {
	payload string
}

func NewRequest(payload string) *Request {
	return &Request{payload: strings.TrimSpace(payload)}
}

func (r *Request) IsEmpty() bool {
	return r.payload == ""
}

func (r *Request) IsQuit() bool {
	return r.payload == "q" || r.payload == "quit"
}

func (r *Request) coordinates() (int, int, error) {
	fields := strings.Fields(strings.ReplaceAll(r.payload, ",", " "))
	if len(fields) != 2 {
		return 0, 0, cerr.ErrInvalidShotRequest(r.payload)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, cerr.ErrInvalidShotRequest(r.payload)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, cerr.ErrInvalidShotRequest(r.payload)
	}
	return row, col, nil
}

// HandleShot fires at the coordinates of the request. A request that
// cannot be resolved comes back with Error set and leaves the game as is.
func (r *Request) HandleShot(game *mb.Game) Message[RespShot] {
	row, col, err := r.coordinates()
	if err != nil {
		resp := NewMessage[RespShot](CodeInvalidRequest)
		resp.AddError(err.Error(), "enter a shot as 'row col' or 'q' to quit")
		return resp
	}

	var sunkMsg bytes.Buffer
	result, err := game.Fire(&sunkMsg, row, col)
	if err != nil {
		resp := NewMessage[RespShot](CodeShot)
		resp.AddError(err.Error(), cerr.ConstErrShotFailed)
		return resp
	}

	payload := RespShot{
		Row:           result.Row,
		Col:           result.Col,
		PositionState: result.PositionState,
		SunkMessage:   strings.TrimSpace(sunkMsg.String()),
		IsWin:         result.IsWin,
		TargetGrid:    game.Target.String(),
	}
	if result.SunkShip != 0 {
		payload.SunkShip = string(result.SunkShip)
	}

	resp := NewMessage[RespShot](CodeShot)
	resp.AddPayload(payload)
	return resp
}
