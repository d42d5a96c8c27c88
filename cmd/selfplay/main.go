package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"minimax-chess/engine"
	"minimax-chess/rules"
	"minimax-chess/san"
)

func main() {
	fenFlag := flag.String("fen", rules.FENStartPos, "starting position")
	white := flag.String("white", "medium", "difficulty for White")
	black := flag.String("black", "easy", "difficulty for Black")
	maxPlies := flag.Int("plies", 200, "stop after this many half-moves")
	seed := flag.Uint64("seed", 1, "root shuffle seed")
	verbose := flag.Bool("v", false, "log each search")
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("could not build logger: %v", err)
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()

	gameID := uuid.NewString()
	logger = logger.With(zap.String("game_id", gameID))

	start, err := rules.ParseFEN(*fenFlag)
	if err != nil {
		log.Fatalf("invalid fen: %v", err)
	}
	game := start.Clone()

	players := [2]*engine.Searcher{
		rules.White: engine.NewSearcher(engine.WithDifficulty(engine.ParseDifficulty(*white)),
			engine.WithSeed(*seed), engine.WithLogger(logger.With(zap.String("side", "white")))),
		rules.Black: engine.NewSearcher(engine.WithDifficulty(engine.ParseDifficulty(*black)),
			engine.WithSeed(*seed+1), engine.WithLogger(logger.With(zap.String("side", "black")))),
	}

	for ply := 0; ply < *maxPlies; ply++ {
		m, ok := players[game.Turn()].SelectMove(game)
		if !ok {
			break
		}
		if !game.MakeMove(m.From, m.To, m.Promotion) {
			log.Fatalf("engine produced illegal move %s in %s", m, game.FEN())
		}
	}

	moves, err := san.History(start, game)
	if err != nil {
		log.Fatalf("rendering moves: %v", err)
	}

	fmt.Printf("[Game %q]\n[FEN %q]\n", gameID, start.FEN())
	fmt.Println(transcript(start, moves))
	fmt.Printf("result: %s after %d plies, captured white=%v black=%v\n",
		game.Status(), game.MoveCount(), game.Captured(rules.White), game.Captured(rules.Black))
	fmt.Println("final:", game.FEN())
}

// transcript numbers the SAN moves, continuing from the start position's move number.
func transcript(start *rules.Game, moves []string) string {
	var sb strings.Builder
	number := start.FullMoveNumber()
	turn := start.Turn()
	for i, m := range moves {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if turn == rules.White {
			fmt.Fprintf(&sb, "%d. ", number)
		} else if i == 0 {
			fmt.Fprintf(&sb, "%d... ", number)
		}
		sb.WriteString(m)
		if turn == rules.Black {
			number++
		}
		turn = turn.Other()
	}
	return sb.String()
}
