package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/25lmmc1065/chess-game/engine"
	"github.com/25lmmc1065/chess-game/experiments"
	"github.com/25lmmc1065/chess-game/game"
	"github.com/25lmmc1065/chess-game/meta"
)

func main() {
	mode := flag.String("mode", "play", "play, selfplay or bench")
	depth := flag.Int("depth", meta.SEARCH_DEPTH, "search depth in plies")
	color := flag.String("color", "white", "side the human plays in play mode")
	fen := flag.String("fen", "", "starting position in FEN (default: standard)")
	timer := flag.Int("timer", meta.MOVE_TIME_LIMIT_SECONDS, "per-move time limit in seconds for human players (0 disables)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	initial, err := startingPosition(*fen)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid starting position")
	}

	switch *mode {
	case "play":
		play(initial, *depth, *color, time.Duration(*timer)*time.Second)
	case "selfplay":
		selfPlay(initial, *depth)
	case "bench":
		experiments.RunDepthExperiment()
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

func startingPosition(fen string) (game.State, error) {
	if fen == "" {
		return game.NewPosition(), nil
	}
	return game.PositionFromFEN(fen)
}

func play(initial game.State, depth int, color string, timeLimit time.Duration) {
	human := engine.NewHumanAgent("human", os.Stdin, os.Stdout, timeLimit)
	machine := engine.NewMinimaxAgent(depth)

	var white, black engine.Agent
	switch strings.ToLower(color) {
	case "white", "w":
		white, black = human, machine
	case "black", "b":
		white, black = machine, human
	default:
		log.Fatal().Str("color", color).Msg("unknown color")
	}

	var e *engine.Engine
	e = engine.LocalEngine(initial, white, black, engine.WithDisplay(func(s game.State) {
		fmt.Print(s.Board().Draw())
		printCaptured(e)
	}))
	human.WithHistory(e.History)

	fmt.Print(initial.Board().Draw())
	outcome, _, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	printResult(e, outcome)
}

func selfPlay(initial game.State, depth int) {
	white := engine.NewMinimaxAgent(depth)
	black := engine.NewMinimaxAgent(depth)

	e := engine.LocalEngine(initial, white, black, engine.WithDisplay(func(s game.State) {
		fmt.Print(s.Board().Draw())
	}))
	outcome, gameMetrics, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}

	var nodes int64
	for _, mm := range gameMetrics {
		nodes += mm.Nodes
	}
	fmt.Printf("searched %d nodes over %d plies\n", nodes, len(gameMetrics))
	printResult(e, outcome)
}

func printCaptured(e *engine.Engine) {
	white := e.Captured(chess.White)
	black := e.Captured(chess.Black)
	if len(white)+len(black) == 0 {
		return
	}
	fmt.Printf("captured: white %s | black %s\n", pieceString(white), pieceString(black))
}

func pieceString(pieces []chess.Piece) string {
	if len(pieces) == 0 {
		return "-"
	}
	var b strings.Builder
	for _, piece := range pieces {
		b.WriteString(piece.String())
	}
	return b.String()
}

func printResult(e *engine.Engine, outcome engine.Outcome) {
	if outcome.Draw() {
		fmt.Printf("Game drawn by %s after %d plies.\n", outcome.Method, len(e.History()))
		return
	}
	fmt.Printf("%s wins by %s after %d plies.\n", outcome.Winner.Name(), outcome.Method, len(e.History()))
}
