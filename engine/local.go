package engine

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"

	"github.com/25lmmc1065/chess-game/game"
	"github.com/25lmmc1065/chess-game/meta"
)

// Engine runs a local game between two agents until a result is reached or
// the ply limit fires.
type Engine struct {
	state    game.State
	agents   map[chess.Color]Agent
	maxPlies int
	display  func(s game.State)

	history  []string
	captured map[chess.Color][]chess.Piece
}

type engineOption func(e *Engine)

func WithMaxPlies(n int) engineOption {
	return func(e *Engine) {
		e.maxPlies = n
	}
}

// WithDisplay registers a callback invoked after every applied move.
func WithDisplay(fn func(s game.State)) engineOption {
	return func(e *Engine) {
		e.display = fn
	}
}

func LocalEngine(initial game.State, white, black Agent, options ...engineOption) *Engine {
	if initial == nil {
		panic("engine: need an initial state")
	}
	if white == nil || black == nil {
		panic("engine: need two agents")
	}
	e := &Engine{
		state:    initial,
		agents:   map[chess.Color]Agent{chess.White: white, chess.Black: black},
		maxPlies: meta.MAX_PLIES,
		captured: map[chess.Color][]chess.Piece{},
	}
	for _, option := range options {
		option(e)
	}
	if e.maxPlies <= 0 {
		panic("engine: ply limit must be positive")
	}
	return e
}

// Run executes the game loop until the game ends, an agent resigns or times
// out, or the ply limit is reached.
func (e *Engine) Run() (Outcome, GameMetrics, error) {
	log.Info().
		Str("white", e.agents[chess.White].Name()).
		Str("black", e.agents[chess.Black].Name()).
		Msg("game started")

	var gameMetrics GameMetrics
	for ply := 1; !e.state.GameOver() && ply <= e.maxPlies; ply++ {
		turn := e.state.Turn()
		agent := e.agents[turn]

		move, metrics, err := agent.ChooseMove(e.state)
		switch {
		case errors.Is(err, ErrResigned):
			log.Info().Str("player", turn.Name()).Msg("player resigned")
			return Outcome{Winner: turn.Other(), Method: MethodResignation}, gameMetrics, nil
		case errors.Is(err, ErrTimeout):
			log.Info().Str("player", turn.Name()).Msg("move time limit exceeded")
			return Outcome{Winner: turn.Other(), Method: MethodTimeout}, gameMetrics, nil
		case err != nil:
			return Outcome{}, gameMetrics, fmt.Errorf("agent %s: %w", agent.Name(), err)
		}
		if move == nil {
			break
		}

		san := e.state.SAN(move)
		e.recordCapture(move)
		e.history = append(e.history, san)
		gameMetrics = append(gameMetrics, MoveMetrics{
			Ply:           ply,
			Player:        turn,
			SearchMetrics: metrics,
		})

		e.state = e.state.Play(move)
		log.Info().
			Int("ply", ply).
			Str("player", turn.Name()).
			Str("move", san).
			Msg("move played")
		if e.display != nil {
			e.display(e.state)
		}
	}

	outcome := e.outcome()
	log.Info().
		Str("winner", outcome.Winner.Name()).
		Str("method", outcome.Method).
		Msg("game over")
	return outcome, gameMetrics, nil
}

func (e *Engine) outcome() Outcome {
	switch {
	case e.state.Checkmate():
		// The side to move has no escape, so the side that just moved won.
		return Outcome{Winner: e.state.Turn().Other(), Method: MethodCheckmate}
	case e.state.Stalemate():
		return Outcome{Winner: chess.NoColor, Method: MethodStalemate}
	case e.state.InsufficientMaterial():
		return Outcome{Winner: chess.NoColor, Method: MethodInsufficient}
	}
	return Outcome{Winner: chess.NoColor, Method: MethodMoveLimit}
}

// recordCapture must run against the state the move is about to be applied
// to; afterwards the victim is gone from the board.
func (e *Engine) recordCapture(m *chess.Move) {
	board := e.state.Board()
	victim := board.Piece(m.S2())
	if victim == chess.NoPiece && m.HasTag(chess.EnPassant) {
		// The captured pawn stands on the destination file at the origin rank.
		sq := chess.Square(int(m.S1())/8*8 + int(m.S2())%8)
		victim = board.Piece(sq)
	}
	if victim == chess.NoPiece {
		return
	}
	e.captured[victim.Color()] = append(e.captured[victim.Color()], victim)
}

// State returns the current position.
func (e *Engine) State() game.State {
	return e.state
}

// History returns the moves played so far in SAN.
func (e *Engine) History() []string {
	return e.history
}

// Captured returns the pieces of the given color that have been captured.
func (e *Engine) Captured(color chess.Color) []chess.Piece {
	return e.captured[color]
}
