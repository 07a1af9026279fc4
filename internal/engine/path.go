package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// slidingMoves casts a ray along each direction. A ray ends on the first
// occupied square, which is included only if it holds an enemy piece.
func slidingMoves(q chess.Query, p chess.Piece, dirs [][2]int) []chess.Coord {
	var moves []chess.Coord
	for _, dir := range dirs {
		for i := 1; i < chess.BoardSize; i++ {
			to := p.Pos.Move(dir[0]*i, dir[1]*i)
			if q.IsEmpty(to) {
				moves = append(moves, to)
				continue
			}
			if q.IsEnemyOccupied(to, p.Colour) {
				moves = append(moves, to)
			}
			break // Blocked or off the board
		}
	}
	return moves
}
