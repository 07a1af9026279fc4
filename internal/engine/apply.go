package engine

import (
	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/errors"
)

// PromotionFunc asks the caller which piece a pawn reaching the far rank
// becomes. Returning false discards the whole move.
type PromotionFunc func(colour chess.Colour, at chess.Coord) (chess.PieceKind, bool)

// MoveResult describes a committed move.
type MoveResult struct {
	// The moved piece in its new position (the new piece after promotion).
	Piece chess.Piece

	// The captured piece, if any.
	Captured *chess.Piece

	Castled  bool
	Promoted chess.PieceKind

	// OpponentHasNoReplies is set when the side that did not move has no
	// legal move left: checkmate or stalemate. Use Status to tell them apart.
	OpponentHasNoReplies bool
}

// MovePieceFromTo validates and applies a move. On error the board is
// unchanged and the error wraps errors.ErrIllegalMove or
// errors.ErrPromotionDiscarded inside an *errors.MoveError.
// A nil promote always promotes to a queen.
func MovePieceFromTo(board *chess.Board, from, to chess.Coord, promote PromotionFunc) (MoveResult, error) {
	piece, ok := board.Get(from)
	if !ok {
		return MoveResult{}, moveError(errors.ErrIllegalMove, from, to, piece, "no piece at source")
	}
	if !containsCoord(LegalMoves(board, from), to) {
		return MoveResult{}, moveError(errors.ErrIllegalMove, from, to, piece, "destination not legal")
	}

	promotion := chess.NoPiece
	if !isCastle(piece, from, to) {
		if target, occupied := board.Get(to); occupied && target.Colour == piece.Colour {
			return MoveResult{}, moveError(errors.ErrIllegalMove, from, to, piece, "destination occupied by own piece")
		}
		if isPromotion(piece, to) {
			kind, err := choosePromotion(promote, piece, from, to)
			if err != nil {
				return MoveResult{}, err
			}
			promotion = kind
		}
	}

	result := commitMove(board, from, to, promotion)
	result.OpponentHasNoReplies = !HasLegalMoves(board, piece.Colour.Opposite())
	return result, nil
}

// commitMove applies an already validated move and recomputes check.
func commitMove(board *chess.Board, from, to chess.Coord, promotion chess.PieceKind) MoveResult {
	piece, _ := board.Get(from)
	var result MoveResult

	switch {
	case isCastle(piece, from, to):
		applyCastle(board, from, to)
		result.Castled = true
	case promotion != chess.NoPiece:
		result.Captured = capturedAt(board, to)
		promotePawn(board, from, to, promotion)
		result.Promoted = promotion
	default:
		result.Captured = capturedAt(board, to)
		OverrideMove(board, from, to)
	}

	UpdateCheck(board, piece.Colour)
	result.Piece, _ = board.Get(to)
	return result
}

// OverrideMove moves the piece at from to to unconditionally, capturing
// whatever stands there. It does not test legality or recompute check and
// is meant for simulations. It returns false if from is empty.
func OverrideMove(board *chess.Board, from, to chess.Coord) bool {
	piece, ok := board.Get(from)
	if !ok {
		return false
	}
	board.Capture(to)
	board.Remove(from)
	piece.HasMoved = true
	board.Set(to, piece)
	return true
}

// promotePawn replaces the pawn with a new piece of the chosen kind.
// The pawn is discarded, not recorded as captured.
func promotePawn(board *chess.Board, from, to chess.Coord, kind chess.PieceKind) {
	pawn, _ := board.Get(from)
	board.Capture(to)
	board.Remove(from)

	promoted := chess.NewPiece(kind, pawn.Colour, to)
	promoted.HasMoved = true
	board.Set(to, promoted)
}

// choosePromotion asks promote for the new piece kind before anything on
// the board changes.
func choosePromotion(promote PromotionFunc, pawn chess.Piece, from, to chess.Coord) (chess.PieceKind, error) {
	if promote == nil {
		return chess.Queen, nil
	}
	kind, ok := promote(pawn.Colour, to)
	if !ok {
		return chess.NoPiece, moveError(errors.ErrPromotionDiscarded, from, to, pawn, "")
	}
	if !kind.IsPromotionChoice() {
		return chess.NoPiece, moveError(errors.ErrIllegalMove, from, to, pawn, "invalid promotion piece "+kind.String())
	}
	return kind, nil
}

// capturedAt returns a copy of the piece at pos, or nil if it is empty.
func capturedAt(board *chess.Board, pos chess.Coord) *chess.Piece {
	p, ok := board.Get(pos)
	if !ok {
		return nil
	}
	return &p
}

func moveError(err error, from, to chess.Coord, piece chess.Piece, reason string) error {
	moveErr := &errors.MoveError{
		Err:    err,
		From:   from.String(),
		To:     to.String(),
		Reason: reason,
	}
	if !piece.IsEmpty() {
		moveErr.Piece = piece.String()
	}
	return moveErr
}
