package game

import (
	"fmt"
	"hash/fnv"

	"github.com/notnil/chess"

	"github.com/25lmmc1065/chess-game/utils"
)

// Position implements State on top of a notnil/chess position. Positions are
// immutable: Play returns a fresh Position and leaves the receiver untouched.
type Position struct {
	pos *chess.Position
}

// NewPosition returns the standard chess starting position.
func NewPosition() *Position {
	return &Position{pos: chess.NewGame().Position()}
}

// PositionFromFEN parses a FEN string into a Position.
func PositionFromFEN(text string) (*Position, error) {
	fen, err := chess.FEN(text)
	if err != nil {
		return nil, fmt.Errorf("parse fen: %w", err)
	}
	return &Position{pos: chess.NewGame(fen).Position()}, nil
}

func (p *Position) Turn() chess.Color {
	return p.pos.Turn()
}

func (p *Position) LegalMoves() []*chess.Move {
	return p.pos.ValidMoves()
}

func (p *Position) Play(m *chess.Move) State {
	return &Position{pos: p.pos.Update(m)}
}

func (p *Position) Board() *chess.Board {
	return p.pos.Board()
}

func (p *Position) PieceCount() int {
	return len(p.pos.Board().SquareMap())
}

func (p *Position) Checkmate() bool {
	return p.pos.Status() == chess.Checkmate
}

func (p *Position) Stalemate() bool {
	return p.pos.Status() == chess.Stalemate
}

// InsufficientMaterial reports the dead positions neither side can win from:
// bare kings, a lone minor piece, or same-colored bishops only.
func (p *Position) InsufficientMaterial() bool {
	knights, bishops := 0, 0
	lightBishops, darkBishops := 0, 0
	for sq, piece := range p.pos.Board().SquareMap() {
		switch piece.Type() {
		case chess.King:
		case chess.Knight:
			knights++
		case chess.Bishop:
			bishops++
			if (squareFile(sq)+squareRank(sq))%2 == 0 {
				darkBishops++
			} else {
				lightBishops++
			}
		default:
			// A pawn, rook or queen is always mating material.
			return false
		}
	}
	switch {
	case knights == 0 && bishops == 0:
		return true
	case knights == 1 && bishops == 0:
		return true
	case knights == 0 && (lightBishops == 0 || darkBishops == 0):
		return true
	}
	return false
}

func (p *Position) GameOver() bool {
	return p.Checkmate() || p.Stalemate() || p.InsufficientMaterial()
}

// InCheck reports whether the side to move's king is attacked.
func (p *Position) InCheck() bool {
	board := p.pos.Board()
	us := p.pos.Turn()
	for i := 0; i < 64; i++ {
		sq := chess.Square(i)
		piece := board.Piece(sq)
		if piece.Type() == chess.King && piece.Color() == us {
			return squareAttacked(board, sq, us.Other())
		}
	}
	return false
}

func (p *Position) IsCapture(m *chess.Move) bool {
	return m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant)
}

func (p *Position) GivesCheck(m *chess.Move) bool {
	return m.HasTag(chess.Check)
}

func (p *Position) SAN(m *chess.Move) string {
	return chess.AlgebraicNotation{}.Encode(p.pos, m)
}

func (p *Position) FEN() string {
	return p.pos.String()
}

func (p *Position) Hash() StateHash {
	hasher := fnv.New64a()
	hasher.Write([]byte(p.pos.String()))
	return StateHash(hasher.Sum64())
}

// ParseMove decodes a move in UCI or SAN notation and resolves it against the
// legal moves of this position.
func (p *Position) ParseMove(text string) (*chess.Move, error) {
	var uci chess.UCINotation
	if m, err := uci.Decode(p.pos, text); err == nil {
		legal := p.pos.ValidMoves()
		encoded := make([]string, len(legal))
		for i, move := range legal {
			encoded[i] = move.String()
		}
		if i := utils.FindIndex(encoded, m.String()); i >= 0 {
			return legal[i], nil
		}
		return nil, fmt.Errorf("illegal move %q", text)
	}
	m, err := chess.AlgebraicNotation{}.Decode(p.pos, text)
	if err != nil {
		return nil, fmt.Errorf("parse move %q: %w", text, err)
	}
	return m, nil
}

func squareFile(sq chess.Square) int { return int(sq) % 8 }
func squareRank(sq chess.Square) int { return int(sq) / 8 }

func squareAt(file, rank int) (chess.Square, bool) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, false
	}
	return chess.Square(rank*8 + file), true
}

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

var rookRays = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
var bishopRays = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// squareAttacked reports whether sq is attacked by any piece of color by.
func squareAttacked(board *chess.Board, sq chess.Square, by chess.Color) bool {
	file, rank := squareFile(sq), squareRank(sq)

	for _, d := range knightDeltas {
		if from, ok := squareAt(file+d[0], rank+d[1]); ok {
			if piece := board.Piece(from); piece.Type() == chess.Knight && piece.Color() == by {
				return true
			}
		}
	}
	for _, d := range kingDeltas {
		if from, ok := squareAt(file+d[0], rank+d[1]); ok {
			if piece := board.Piece(from); piece.Type() == chess.King && piece.Color() == by {
				return true
			}
		}
	}

	// A white pawn attacks from one rank below, a black pawn from one above.
	pawnRank := rank - 1
	if by == chess.Black {
		pawnRank = rank + 1
	}
	for _, df := range []int{-1, 1} {
		if from, ok := squareAt(file+df, pawnRank); ok {
			if piece := board.Piece(from); piece.Type() == chess.Pawn && piece.Color() == by {
				return true
			}
		}
	}

	if rayAttacked(board, file, rank, rookRays, chess.Rook, by) {
		return true
	}
	return rayAttacked(board, file, rank, bishopRays, chess.Bishop, by)
}

func rayAttacked(board *chess.Board, file, rank int, rays [4][2]int, slider chess.PieceType, by chess.Color) bool {
	for _, ray := range rays {
		for step := 1; ; step++ {
			sq, ok := squareAt(file+ray[0]*step, rank+ray[1]*step)
			if !ok {
				break
			}
			piece := board.Piece(sq)
			if piece == chess.NoPiece {
				continue
			}
			if piece.Color() == by && (piece.Type() == slider || piece.Type() == chess.Queen) {
				return true
			}
			break
		}
	}
	return false
}
