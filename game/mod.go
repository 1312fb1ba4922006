package game

import "github.com/notnil/chess"

// StateHash identifies a position for caching and bookkeeping.
type StateHash uint64

// State is the capability surface the search core consumes from the rules
// engine. Implementations are immutable - Play always returns a new copy and
// never mutates the receiver, so a speculative move needs no explicit undo.
type State interface {
	// Turn returns the color to move next.
	Turn() chess.Color
	// LegalMoves enumerates the legal moves in a stable order for a given
	// position value. The order itself is unspecified.
	LegalMoves() []*chess.Move
	// Play applies a legal move and returns the resulting state. Applying a
	// move that did not come from LegalMoves is a caller error.
	Play(m *chess.Move) State
	// Board exposes the piece placement for evaluation.
	Board() *chess.Board
	// PieceCount returns the number of pieces on the board (both sides),
	// used for game-phase detection.
	PieceCount() int

	// Terminal predicates, decomposed so the evaluator can score them.
	Checkmate() bool
	Stalemate() bool
	InsufficientMaterial() bool
	GameOver() bool

	// InCheck reports whether the side to move is currently in check.
	InCheck() bool
	// IsCapture reports whether a move captures a piece (including en
	// passant).
	IsCapture(m *chess.Move) bool
	// GivesCheck reports whether a move leaves the opponent in check. Only
	// meaningful for moves obtained from LegalMoves, which the rules engine
	// tags during generation.
	GivesCheck(m *chess.Move) bool

	// SAN renders a move in standard algebraic notation for this position.
	SAN(m *chess.Move) string
	// FEN serializes the position.
	FEN() string
	Hash() StateHash
}
