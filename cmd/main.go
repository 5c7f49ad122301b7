package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/saeidalz13/battleship-grid/console"
	"github.com/saeidalz13/battleship-grid/db"
	"github.com/saeidalz13/battleship-grid/db/sqlc"
	"github.com/saeidalz13/battleship-grid/internal"
	mb "github.com/saeidalz13/battleship-grid/models/battleship"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalln(err)
	}
}

// run owns every resource main opens, so its deferred closes happen
// before main exits on an error.
func run(args []string, in io.Reader, out io.Writer) error {
	if os.Getenv("STAGE") != "prod" {
		// a missing .env is fine outside of prod, the shell env is used as is
		if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = "dev"
	}
	if stage != "dev" && stage != "prod" {
		return errors.New("stage must be either dev or prod")
	}

	gameFile := os.Getenv("GAME_FILE")
	if len(args) > 0 {
		gameFile = args[0]
	}
	if gameFile == "" {
		return errors.New("usage: battleship <game file> (or set GAME_FILE)")
	}

	game, err := loadGame(gameFile)
	if err != nil {
		return err
	}
	log.Printf("game %s loaded from %s\n", game.Uuid, gameFile)

	opts := []console.Option{}
	if output := os.Getenv("OUTPUT"); output != "" {
		opts = append(opts, console.WithOutput(output))
	}
	if dbUrl := os.Getenv("DATABASE_URL"); dbUrl != "" {
		conn, driverName := db.MustConnectToDb(dbUrl)
		defer conn.Close()
		log.Println("analytics enabled, driver:", driverName)

		dbManager := sqlc.NewDbManager(sqlc.New(conn))
		opts = append(opts, console.WithAnalytics(dbManager.Analytics, internal.ServerInet()))
	}

	rp, err := console.NewRequestProcessor(game, out, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rp.Run(ctx, in); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Println("game interrupted")
			return nil
		}
		return err
	}
	return nil
}

func loadGame(path string) (*mb.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	ships, err := mb.ReadShipData(r)
	if err != nil {
		return nil, err
	}
	fleet, err := mb.ReadFleetGrid(r)
	if err != nil {
		return nil, err
	}

	return mb.NewGame(fleet, ships)
}
