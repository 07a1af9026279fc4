package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// pawnMoves generates pawn pushes and diagonal captures. En passant is not
// generated.
func pawnMoves(q chess.Query, p chess.Piece) []chess.Coord {
	dir := q.ForwardDirection(p.Colour)
	var moves []chess.Coord

	front := p.Pos.Move(0, dir)
	if q.IsEmpty(front) {
		moves = append(moves, front)
		// Double push from the starting rank
		if p.Pos.Row == chess.PawnStartRow(p.Colour) {
			front2 := p.Pos.Move(0, 2*dir)
			if q.IsEmpty(front2) {
				moves = append(moves, front2)
			}
		}
	}

	// Captures, left then right
	for _, dc := range []int{-1, 1} {
		diag := p.Pos.Move(dc, dir)
		if q.IsEnemyOccupied(diag, p.Colour) {
			moves = append(moves, diag)
		}
	}
	return moves
}

// isPromotion reports whether moving p to the destination promotes it.
func isPromotion(p chess.Piece, to chess.Coord) bool {
	return p.Kind == chess.Pawn && to.Row == chess.PromotionRow(p.Colour)
}
