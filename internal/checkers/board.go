package checkers

// Board is the 8x8 grid indexed as Squares[row][col].
type Board struct {
	Squares [BoardSize][BoardSize]Cell
}

// NewBoard creates a board with every playable square empty and every
// other square unplayable.
func NewBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// NewInitialBoard creates a board holding the standard starting layout.
func NewInitialBoard() *Board {
	b := &Board{}
	b.SetupInitialPosition()
	return b
}

// Clear removes every piece, restoring the playable/unplayable pattern.
func (b *Board) Clear() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if Sq(row, col).IsPlayable() {
				b.Squares[row][col] = EmptyCell
			} else {
				b.Squares[row][col] = UnplayableCell
			}
		}
	}
}

// SetupInitialPosition places twelve White pieces on rows 0-2 and twelve
// Black pieces on rows 5-7.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if !Sq(row, col).IsPlayable() {
				continue
			}
			switch {
			case row <= 2:
				b.Squares[row][col] = PieceCell(White, Regular)
			case row >= 5:
				b.Squares[row][col] = PieceCell(Black, Regular)
			}
		}
	}
}

// Get returns the cell at the square. Off-board squares read as unplayable.
func (b *Board) Get(sq Square) Cell {
	if !sq.InBounds() {
		return UnplayableCell
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set stores a cell at the square. Off-board and unplayable squares are
// left untouched.
func (b *Board) Set(sq Square, cell Cell) {
	if !sq.IsPlayable() {
		return
	}
	b.Squares[sq.Row][sq.Col] = cell
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// CountPieces returns how many pieces of the colour are on the board.
func (b *Board) CountPieces(colour Colour) int {
	n := 0
	for row := range b.Squares {
		for _, cell := range b.Squares[row] {
			if cell.BelongsTo(colour) {
				n++
			}
		}
	}
	return n
}

// CountRank returns how many pieces of the colour and rank are on the board.
func (b *Board) CountRank(colour Colour, rank Rank) int {
	n := 0
	for row := range b.Squares {
		for _, cell := range b.Squares[row] {
			if cell.BelongsTo(colour) && cell.Rank == rank {
				n++
			}
		}
	}
	return n
}
