package searcher

import (
	"github.com/notnil/chess"

	"github.com/25lmmc1065/chess-game/game"
)

type option func(m *Minimax)

// Minimax is a fixed-depth, two-sided minimax search with alpha-beta
// pruning. It is purely synchronous: once started a search runs to
// completion at the configured depth, with no cancellation or yield points.
type Minimax struct {
	depth       int
	collector   Collector
	lastMetrics SearchMetrics
}

func WithDepth(depth int) option {
	return func(m *Minimax) {
		m.depth = depth
	}
}

func WithCollector(c Collector) option {
	return func(m *Minimax) {
		m.collector = c
	}
}

func NewMinimax(options ...option) *Minimax {
	m := &Minimax{
		depth:     DefaultDepth,
		collector: NewNoCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.depth < 0 {
		panic("searcher: depth must not be negative")
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// FindBestMove searches to the configured depth over the full score window
// and returns the chosen move. The second return is false when the position
// has no legal moves; interpreting that (forced loss or draw) is up to the
// caller. The maximizing flag selects which side's interest the search
// serves: true maximizes the white-positive score.
func (m *Minimax) FindBestMove(s game.State, maximizing bool) (*chess.Move, bool) {
	m.collector.Start(m.depth)
	_, move := m.Search(s, m.depth, -ScoreInfinity, ScoreInfinity, maximizing)
	m.lastMetrics = m.collector.Complete()
	return move, move != nil
}

// LastMetrics returns diagnostics for the most recent FindBestMove call.
func (m *Minimax) LastMetrics() SearchMetrics {
	return m.lastMetrics
}

// Search runs minimax with alpha-beta pruning from s. It returns the best
// reachable score and the move achieving it; the move is nil at leaves. The
// first move reaching the extremal score is kept: a later sibling with an
// equal score never replaces it, so the chosen move is reproducible for a
// given move order. A negative depth or an inverted window is a caller
// error.
func (m *Minimax) Search(s game.State, depth, alpha, beta int, maximizing bool) (int, *chess.Move) {
	if depth < 0 {
		panic("searcher: negative search depth")
	}
	if alpha > beta {
		panic("searcher: inverted alpha-beta window")
	}
	m.collector.AddNode()

	if depth == 0 || s.GameOver() {
		return Evaluate(s), nil
	}

	moves := s.LegalMoves()
	if len(moves) == 0 {
		// Unreachable if GameOver is correct; fall back to a static score.
		return Evaluate(s), nil
	}
	moves = OrderMoves(s, moves)

	var best *chess.Move
	if maximizing {
		maxEval := -ScoreInfinity
		for _, move := range moves {
			score, _ := m.Search(s.Play(move), depth-1, alpha, beta, false)
			if score > maxEval {
				maxEval = score
				best = move
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				m.collector.AddCutoff()
				break
			}
		}
		return maxEval, best
	}

	minEval := ScoreInfinity
	for _, move := range moves {
		score, _ := m.Search(s.Play(move), depth-1, alpha, beta, true)
		if score < minEval {
			minEval = score
			best = move
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			m.collector.AddCutoff()
			break
		}
	}
	return minEval, best
}
