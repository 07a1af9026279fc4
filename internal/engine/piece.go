package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// Direction tables shared by the step and sliding generators.
var (
	knightOffsets = [][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	bishopDirs    = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs      = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	queenDirs     = append(append([][2]int{}, rookDirs...), bishopDirs...)
)

// PseudoLegalMoves returns the destinations the piece's movement pattern
// allows on the given board, without testing whether the mover's king is
// left in check. Castling is not included; see PossibleMoves.
func PseudoLegalMoves(q chess.Query, p chess.Piece) []chess.Coord {
	switch p.Kind {
	case chess.Pawn:
		return pawnMoves(q, p)
	case chess.Knight:
		return stepMoves(q, p, knightOffsets)
	case chess.Bishop:
		return slidingMoves(q, p, bishopDirs)
	case chess.Rook:
		return slidingMoves(q, p, rookDirs)
	case chess.Queen:
		return slidingMoves(q, p, queenDirs)
	case chess.King:
		return stepMoves(q, p, queenDirs)
	}
	return nil
}

// stepMoves handles single-jump pieces (knight, king).
func stepMoves(q chess.Query, p chess.Piece, offsets [][2]int) []chess.Coord {
	var moves []chess.Coord
	for _, off := range offsets {
		to := p.Pos.Move(off[0], off[1])
		if q.IsEmpty(to) || q.IsEnemyOccupied(to, p.Colour) {
			moves = append(moves, to)
		}
	}
	return moves
}
