package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// PossibleMoves splits the pseudo-legal destinations of the piece at pos
// into legal ones and ones rejected because they leave the mover's king in
// check. For a king, validated castling targets are appended to legal.
// Both slices are nil if pos is empty.
func PossibleMoves(board *chess.Board, pos chess.Coord) (legal, illegal []chess.Coord) {
	piece, ok := board.Get(pos)
	if !ok {
		return nil, nil
	}

	for _, to := range PseudoLegalMoves(board, piece) {
		if tryMove(board, pos, to, piece.Colour) {
			legal = append(legal, to)
		} else {
			illegal = append(illegal, to)
		}
	}

	if piece.Kind == chess.King {
		legal = append(legal, castlingTargets(board, piece)...)
	}
	return legal, illegal
}

// LegalMoves returns the legal destinations of the piece at pos.
func LegalMoves(board *chess.Board, pos chess.Coord) []chess.Coord {
	legal, _ := PossibleMoves(board, pos)
	return legal
}

// AllLegalMoves returns every piece of the colour that has at least one
// legal move, in board order from rank 8 to rank 1 and file a to h.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.PossibleMoves {
	var all []chess.PossibleMoves
	for _, p := range board.Pieces(colour) {
		if to := LegalMoves(board, p.Pos); len(to) > 0 {
			all = append(all, chess.PossibleMoves{Piece: p, To: to})
		}
	}
	return all
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, p := range board.Pieces(colour) {
		for _, to := range PseudoLegalMoves(board, p) {
			if tryMove(board, p.Pos, to, colour) {
				return true
			}
		}
	}
	// Castling is skipped: any castling option implies a legal one-step
	// king move toward the rook.
	return false
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, from, to chess.Coord, colour chess.Colour) bool {
	testBoard := board.Copy()
	OverrideMove(testBoard, from, to)
	return UpdateCheck(testBoard, colour) != colour
}
