package searcher

import (
	"sort"

	"github.com/notnil/chess"

	"github.com/25lmmc1065/chess-game/game"
)

type scoredMove struct {
	move     *chess.Move
	priority int
}

// OrderMoves sorts candidate moves so the most forcing ones are searched
// first: captures ranked by MVV-LVA (most valuable victim, least valuable
// attacker), then checking moves, then quiet moves. The sort is stable, so
// equal-priority moves keep their enumeration order. Ordering only affects
// pruning efficiency, never the search result's score. The input slice is
// left untouched.
func OrderMoves(s game.State, moves []*chess.Move) []*chess.Move {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, priority: movePriority(s, m)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].priority > scored[j].priority
	})
	ordered := make([]*chess.Move, len(moves))
	for i, sm := range scored {
		ordered[i] = sm.move
	}
	return ordered
}

func movePriority(s game.State, m *chess.Move) int {
	priority := 0
	if s.IsCapture(m) {
		priority += captureBonus
		board := s.Board()
		victim := board.Piece(m.S2())
		attacker := board.Piece(m.S1())
		// En passant leaves the destination square empty, so only the flat
		// capture bonus applies.
		if victim != chess.NoPiece && attacker != chess.NoPiece {
			priority += pieceValues[victim.Type()] - pieceValues[attacker.Type()]/10
		}
	}
	if s.GivesCheck(m) {
		priority += checkBonus
	}
	return priority
}
