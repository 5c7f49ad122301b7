package console

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/saeidalz13/battleship-grid/db/sqlc"
	mb "github.com/saeidalz13/battleship-grid/models/battleship"
	"github.com/sqlc-dev/pqtype"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

// RequestProcessor plays a single game: it reads one shot request per
// line, resolves it and writes the reply to the output.
type RequestProcessor struct {
	game       *mb.Game
	out        io.Writer
	output     string
	analytics  *sqlc.AnalyticsManager
	serverInet pqtype.Inet
}

type Option func(*RequestProcessor) error

func NewRequestProcessor(game *mb.Game, out io.Writer, optFuncs ...Option) (*RequestProcessor, error) {
	rp := &RequestProcessor{
		game:   game,
		out:    out,
		output: OutputText,
	}
	for _, opt := range optFuncs {
		if err := opt(rp); err != nil {
			return nil, err
		}
	}
	return rp, nil
}

func WithOutput(output string) Option {
	return func(rp *RequestProcessor) error {
		if output != OutputText && output != OutputJSON {
			return fmt.Errorf("invalid output format: %s", output)
		}
		rp.output = output
		return nil
	}
}

// WithAnalytics records the finished game through am, keyed by serverInet.
func WithAnalytics(am *sqlc.AnalyticsManager, serverInet pqtype.Inet) Option {
	return func(rp *RequestProcessor) error {
		rp.analytics = am
		rp.serverInet = serverInet
		return nil
	}
}

// Run processes requests from in until the fleet is sunk, the player
// quits or in is exhausted.
func (rp *RequestProcessor) Run(ctx context.Context, in io.Reader) error {
	startMsg := NewMessage[RespStartGame](CodeStartGame)
	startMsg.AddPayload(RespStartGame{
		GameUuid:   rp.game.Uuid,
		GridSize:   rp.game.Fleet.Size(),
		Ships:      string(rp.game.Ships.Characters),
		TargetGrid: rp.game.Target.String(),
	})
	if err := rp.write(startMsg); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)

requestLoop:
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		req := NewRequest(scanner.Text())
		switch {
		case req.IsEmpty():
			continue requestLoop

		case req.IsQuit():
			break requestLoop
		}

		resp := req.HandleShot(rp.game)
		if err := rp.write(resp); err != nil {
			return err
		}

		// Invalid shots do not end the game
		if resp.Error != nil {
			continue requestLoop
		}

		if resp.Payload.IsWin {
			break requestLoop
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	rp.game.FinishGame()
	endMsg := NewMessage[RespEndGame](CodeEndGame)
	endMsg.AddPayload(RespEndGame{
		GameUuid:    rp.game.Uuid,
		Won:         mb.IsWin(rp.game.Ships, rp.game.Hits),
		ShotsFired:  rp.game.ShotsFired(),
		SunkenShips: rp.game.SunkenShips(),
		Ships:       rp.game.Ships.Len(),
	})
	if err := rp.write(endMsg); err != nil {
		return err
	}

	rp.recordGame(ctx, endMsg.Payload)
	return nil
}

// Analytics are best effort; a failure is logged and the game result stands.
func (rp *RequestProcessor) recordGame(ctx context.Context, result RespEndGame) {
	if rp.analytics == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
	defer cancel()

	err := rp.analytics.RecordGame(ctx, sqlc.CreateGameResultParams{
		GameUuid:    result.GameUuid,
		ServerIp:    rp.serverInet,
		Ships:       int32(result.Ships),
		SunkenShips: int32(result.SunkenShips),
		ShotsFired:  int32(result.ShotsFired),
		Won:         result.Won,
	})
	if err != nil {
		log.Println(err)
	}
}

func (rp *RequestProcessor) write(msg interface{}) error {
	if rp.output == OutputJSON {
		return json.NewEncoder(rp.out).Encode(msg)
	}

	_, err := io.WriteString(rp.out, render(msg))
	return err
}

func render(msg interface{}) string {
	switch m := msg.(type) {
	case Message[RespStartGame]:
		return fmt.Sprintf("Game %s: %d ships on a %dx%d grid. Enter shots as 'row col', 'q' to quit.\n%s",
			m.Payload.GameUuid, len(m.Payload.Ships), m.Payload.GridSize, m.Payload.GridSize, m.Payload.TargetGrid)

	case Message[RespShot]:
		if m.Error != nil {
			return fmt.Sprintf("error: %s\n", m.Error.ErrorDetails)
		}

		state := "miss"
		if m.Payload.PositionState == mb.PositionStateHit {
			state = "hit"
		}
		text := fmt.Sprintf("%s (%d, %d)\n", state, m.Payload.Row, m.Payload.Col)
		if m.Payload.SunkMessage != "" {
			text += m.Payload.SunkMessage + "\n"
		}
		return text + m.Payload.TargetGrid

	case Message[RespEndGame]:
		if m.Payload.Won {
			return fmt.Sprintf("You sank the whole fleet in %d shots!\n", m.Payload.ShotsFired)
		}
		return fmt.Sprintf("Game over: %d of %d ships sunk after %d shots.\n",
			m.Payload.SunkenShips, m.Payload.Ships, m.Payload.ShotsFired)

	default:
		return fmt.Sprintf("%v\n", msg)
	}
}
