package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/25lmmc1065/chess-game/game"
)

func TestOrderMovesCapturesFirst(t *testing.T) {
	p := mustPosition(t, "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")

	ordered := OrderMoves(p, p.LegalMoves())

	require.NotEmpty(t, ordered)
	require.True(t, p.IsCapture(ordered[0]), "a capture must be searched first, got %s", ordered[0])
}

func TestOrderMovesMostValuableVictimFirst(t *testing.T) {
	// The d4 pawn can take either the c5 pawn or the e5 queen.
	p := mustPosition(t, "k7/8/8/2p1q3/3P4/8/8/K7 w - - 0 1")

	ordered := OrderMoves(p, p.LegalMoves())

	require.Equal(t, "d4e5", ordered[0].String(), "taking the queen must rank above taking the pawn")
}

func TestOrderMovesChecksBeforeQuietMoves(t *testing.T) {
	// The rook checks two ways, along the eighth rank and along the a-file.
	p := mustPosition(t, "k7/8/8/8/8/8/1R6/K7 w - - 0 1")

	ordered := OrderMoves(p, p.LegalMoves())

	require.True(t, len(ordered) > 2)
	require.True(t, p.GivesCheck(ordered[0]), "checking moves must rank first, got %s", ordered[0])
	require.True(t, p.GivesCheck(ordered[1]), "checking moves must rank first, got %s", ordered[1])
	for _, m := range ordered[2:] {
		require.False(t, p.GivesCheck(m), "quiet move %s ordered above a check", m)
	}
}

func TestOrderMovesStableForEqualPriorities(t *testing.T) {
	p := game.NewPosition()
	moves := p.LegalMoves()

	// Every opening move is quiet and non-checking, so the enumeration
	// order must survive the sort.
	ordered := OrderMoves(p, moves)

	require.Equal(t, moves, ordered)
}

func TestOrderMovesLeavesInputUntouched(t *testing.T) {
	p := mustPosition(t, "k7/8/8/2p1q3/3P4/8/8/K7 w - - 0 1")
	moves := p.LegalMoves()
	original := make([]string, len(moves))
	for i, m := range moves {
		original[i] = m.String()
	}

	OrderMoves(p, moves)

	for i, m := range moves {
		require.Equal(t, original[i], m.String())
	}
}
