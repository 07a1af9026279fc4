package chess

// Query is the read-only view of a board used by move generation.
type Query interface {
	IsEmpty(pos Coord) bool
	IsEnemyOccupied(pos Coord, colour Colour) bool
	IsValidPosition(pos Coord) bool
	PieceAt(pos Coord) (Piece, bool)
	ForwardDirection(colour Colour) int
}

// Board represents a chess board with all state needed for the rules engine.
type Board struct {
	// The board squares, indexed [row][col]. Row 0 is rank 8.
	Squares [BoardSize][BoardSize]Piece

	// Pieces captured so far, in capture order.
	Captured []Piece

	// The colour currently in check, or NoColour.
	Checked Colour
}

var _ Query = (*Board)(nil)

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{Checked: NoColour}
}

// Reset sets up the standard chess starting position and clears the
// captured pieces and check status.
func (b *Board) Reset() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		for _, colour := range []Colour{Black, White} {
			b.Set(Coord{col, BackRow(colour)}, NewPiece(backRank[col], colour, Coord{}))
			b.Set(Coord{col, PawnStartRow(colour)}, NewPiece(Pawn, colour, Coord{}))
		}
	}

	b.Captured = b.Captured[:0]
	b.Checked = NoColour
}

// Get returns the piece at pos. The boolean is false if the square is
// empty or off the board.
func (b *Board) Get(pos Coord) (Piece, bool) {
	if !pos.Valid() {
		return Piece{}, false
	}
	p := b.Squares[pos.Row][pos.Col]
	return p, !p.IsEmpty()
}

// Set places a piece at pos, stamping the piece with its new position.
// Setting an empty Piece clears the square.
func (b *Board) Set(pos Coord, piece Piece) {
	if !pos.Valid() {
		return
	}
	if !piece.IsEmpty() {
		piece.Pos = pos
	}
	b.Squares[pos.Row][pos.Col] = piece
}

// Remove clears the square at pos.
func (b *Board) Remove(pos Coord) {
	b.Set(pos, Piece{})
}

// Capture removes the piece at pos and records it as captured.
// It returns the captured piece, or false if the square was empty.
func (b *Board) Capture(pos Coord) (Piece, bool) {
	p, ok := b.Get(pos)
	if !ok {
		return Piece{}, false
	}
	b.Captured = append(b.Captured, p)
	b.Remove(pos)
	return p, true
}

// IsValidPosition reports whether pos lies on the board.
func (b *Board) IsValidPosition(pos Coord) bool {
	return pos.Valid()
}

// IsEmpty reports whether pos is on the board and unoccupied.
func (b *Board) IsEmpty(pos Coord) bool {
	if !pos.Valid() {
		return false
	}
	return b.Squares[pos.Row][pos.Col].IsEmpty()
}

// IsEnemyOccupied reports whether pos holds a piece of the opposite colour.
func (b *Board) IsEnemyOccupied(pos Coord, colour Colour) bool {
	p, ok := b.Get(pos)
	return ok && p.Colour != colour
}

// PieceAt is Get under the Query name.
func (b *Board) PieceAt(pos Coord) (Piece, bool) {
	return b.Get(pos)
}

// ForwardDirection returns the pawn advance direction for colour.
func (b *Board) ForwardDirection(colour Colour) int {
	return ForwardDirection(colour)
}

// FindKing returns the position of the colour's king.
func (b *Board) FindKing(colour Colour) (Coord, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if p.Kind == King && p.Colour == colour {
				return p.Pos, true
			}
		}
	}
	return Coord{}, false
}

// Pieces returns the colour's pieces in row-major order from rank 8 to
// rank 1, file a to h.
func (b *Board) Pieces(colour Colour) []Piece {
	var pieces []Piece
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if !p.IsEmpty() && p.Colour == colour {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.Captured = append([]Piece(nil), b.Captured...)
	return newBoard
}

// BoardState captures all mutable board state for save/restore operations.
// Captured pieces are append-only, so only the list length is recorded.
type BoardState struct {
	Squares     [BoardSize][BoardSize]Piece
	NumCaptured int
	Checked     Colour
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{
		Squares:     b.Squares,
		NumCaptured: len(b.Captured),
		Checked:     b.Checked,
	}
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.Squares = s.Squares
	if s.NumCaptured <= len(b.Captured) {
		b.Captured = b.Captured[:s.NumCaptured]
	}
	b.Checked = s.Checked
}
