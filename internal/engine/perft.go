package engine

import (
	"context"
	"sort"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/worker"
)

var promotionKinds = []chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// rootMove is one legal move, with the promotion piece expanded.
type rootMove struct {
	from, to  chess.Coord
	promotion chess.PieceKind
}

// expandMoves lists every legal move of colour, one entry per promotion choice.
func expandMoves(board *chess.Board, colour chess.Colour) []rootMove {
	var moves []rootMove
	for _, pm := range AllLegalMoves(board, colour) {
		for _, to := range pm.To {
			if !isPromotion(pm.Piece, to) {
				moves = append(moves, rootMove{from: pm.Piece.Pos, to: to})
				continue
			}
			for _, kind := range promotionKinds {
				moves = append(moves, rootMove{from: pm.Piece.Pos, to: to, promotion: kind})
			}
		}
	}
	return moves
}

// Perft counts the leaf positions reachable from board in exactly depth
// plies with colour to move. The board is not modified.
func Perft(board *chess.Board, colour chess.Colour, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := expandMoves(board, colour)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := board.Copy()
		commitMove(child, m.from, m.to, m.promotion)
		nodes += Perft(child, colour.Opposite(), depth-1)
	}
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  string // e.g. "e2e4" or "a7a8q"
	Nodes uint64
}

// ParallelPerft runs Perft with root moves spread over a worker pool. Each
// root move is explored on its own copy of the board. It returns the total
// and the per-move counts sorted by move text.
func ParallelPerft(ctx context.Context, board *chess.Board, colour chess.Colour, depth, workers int) (uint64, []DivideEntry, error) {
	if depth <= 0 {
		return 1, nil, nil
	}

	moves := expandMoves(board, colour)
	pool := worker.NewPool(perftItem, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))
	pool.Start()

	go func() {
		for i, m := range moves {
			pool.Submit(worker.WorkItem{
				Board:     board.Copy(),
				Colour:    colour,
				From:      m.from,
				To:        m.to,
				Promotion: m.promotion,
				Depth:     depth,
				Index:     i,
			})
		}
		pool.Close()
	}()

	var total uint64
	divide := make([]DivideEntry, 0, len(moves))
	done := ctx.Done()
	for result := range pool.Results() {
		total += result.Nodes
		divide = append(divide, DivideEntry{Move: moveText(result.From, result.To, result.Promotion), Nodes: result.Nodes})
		select {
		case <-done:
			pool.Stop()
			done = nil
		default:
		}
	}

	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}

	sort.Slice(divide, func(i, j int) bool { return divide[i].Move < divide[j].Move })
	return total, divide, nil
}

// perftItem applies the root move to the item's private board and counts below it.
func perftItem(item worker.WorkItem) worker.ProcessResult {
	commitMove(item.Board, item.From, item.To, item.Promotion)
	return worker.ProcessResult{
		Index:     item.Index,
		From:      item.From,
		To:        item.To,
		Promotion: item.Promotion,
		Nodes:     Perft(item.Board, item.Colour.Opposite(), item.Depth-1),
	}
}

// moveText formats a move in long algebraic form.
func moveText(from, to chess.Coord, promotion chess.PieceKind) string {
	s := from.String() + to.String()
	if promotion != chess.NoPiece {
		s += string(PieceToFENChar(chess.Piece{Kind: promotion, Colour: chess.Black}))
	}
	return s
}
