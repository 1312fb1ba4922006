package searcher

import (
	"github.com/notnil/chess"

	"github.com/25lmmc1065/chess-game/game"
)

// Material values in centipawns, indexed by piece type.
var pieceValues = map[chess.PieceType]int{
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   20000,
}

// Piece-square tables, indexed by square (A1 = 0) from white's perspective.
// Black squares are mirrored vertically before lookup.

var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMiddlegameTable = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEndgameTable = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

// Evaluate scores a position in centipawns from white's perspective: positive
// favors white. Checkmate scores ±MateScore against the side to move; dead
// draws score 0. Otherwise the score is material plus piece-square values
// plus a mobility bonus for the side to move. Evaluate never mutates the
// state.
func Evaluate(s game.State) int {
	if s.Checkmate() {
		if s.Turn() == chess.White {
			return -MateScore
		}
		return MateScore
	}
	if s.Stalemate() || s.InsufficientMaterial() {
		return 0
	}

	pieces := s.Board().SquareMap()
	count := s.PieceCount()
	score := 0
	for sq, piece := range pieces {
		value := pieceValues[piece.Type()] + pieceSquareValue(piece, sq, count)
		if piece.Color() == chess.White {
			score += value
		} else {
			score -= value
		}
	}

	mobility := mobilityWeight * len(s.LegalMoves())
	if s.Turn() == chess.White {
		score += mobility
	} else {
		score -= mobility
	}
	return score
}

func pieceSquareValue(piece chess.Piece, sq chess.Square, pieceCount int) int {
	idx := int(sq)
	if piece.Color() == chess.Black {
		idx ^= 56 // mirror vertically
	}
	switch piece.Type() {
	case chess.Pawn:
		return pawnTable[idx]
	case chess.Knight:
		return knightTable[idx]
	case chess.Bishop:
		return bishopTable[idx]
	case chess.Rook:
		return rookTable[idx]
	case chess.Queen:
		return queenTable[idx]
	case chess.King:
		if pieceCount <= endgamePieceCount {
			return kingEndgameTable[idx]
		}
		return kingMiddlegameTable[idx]
	}
	return 0
}
