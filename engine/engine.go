package engine

import (
	"errors"

	"github.com/notnil/chess"

	"github.com/25lmmc1065/chess-game/game"
	"github.com/25lmmc1065/chess-game/searcher"
)

// Sentinel errors an Agent may return from ChooseMove. The engine maps both
// to a loss for the side that produced them.
var (
	ErrResigned = errors.New("engine: player resigned")
	ErrTimeout  = errors.New("engine: move time limit exceeded")
)

// Agent produces a move for the side to play in a state. Returning a nil
// move with a nil error means the agent found no legal move; the engine
// scores the position as it stands.
type Agent interface {
	Name() string
	ChooseMove(s game.State) (*chess.Move, searcher.SearchMetrics, error)
}

// Methods a game can end by.
const (
	MethodCheckmate    = "checkmate"
	MethodStalemate    = "stalemate"
	MethodInsufficient = "insufficient material"
	MethodResignation  = "resignation"
	MethodTimeout      = "timeout"
	MethodMoveLimit    = "move limit"
)

// Outcome is the result of a finished game. Winner is chess.NoColor for
// draws and move-limit stops.
type Outcome struct {
	Winner chess.Color
	Method string
}

func (o Outcome) Draw() bool {
	return o.Winner == chess.NoColor
}

// MoveMetrics ties one move's search diagnostics to its place in the game.
type MoveMetrics struct {
	Ply    int
	Player chess.Color
	searcher.SearchMetrics
}

type GameMetrics []MoveMetrics
