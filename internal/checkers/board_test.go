package checkers

import "testing"

func TestNewBoard_Pattern(t *testing.T) {
	b := NewBoard()
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			cell := b.Get(Sq(row, col))
			if (row+col)%2 == 1 {
				if cell != EmptyCell {
					t.Errorf("NewBoard().Get(%d, %d) = %v, want Empty", row, col, cell)
				}
			} else if cell != UnplayableCell {
				t.Errorf("NewBoard().Get(%d, %d) = %v, want Unplayable", row, col, cell)
			}
		}
	}
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	if got := b.CountPieces(Black); got != 12 {
		t.Errorf("CountPieces(Black) = %d, want 12", got)
	}
	if got := b.CountPieces(White); got != 12 {
		t.Errorf("CountPieces(White) = %d, want 12", got)
	}

	tests := []struct {
		sq   Square
		want Cell
	}{
		{Sq(0, 1), PieceCell(White, Regular)},
		{Sq(1, 0), PieceCell(White, Regular)},
		{Sq(2, 7), PieceCell(White, Regular)},
		{Sq(3, 0), EmptyCell},
		{Sq(4, 7), EmptyCell},
		{Sq(5, 6), PieceCell(Black, Regular)},
		{Sq(7, 0), PieceCell(Black, Regular)},
		{Sq(0, 0), UnplayableCell},
		{Sq(4, 6), UnplayableCell},
	}
	for _, tt := range tests {
		if got := b.Get(tt.sq); got != tt.want {
			t.Errorf("Get(%v) = %v, want %v", tt.sq, got, tt.want)
		}
	}
}

func TestBoard_GetOffBoard(t *testing.T) {
	b := NewInitialBoard()
	for _, sq := range []Square{Sq(-1, 0), Sq(0, 8), Sq(8, 1), Sq(3, -2)} {
		if got := b.Get(sq); got != UnplayableCell {
			t.Errorf("Get(%v) = %v, want Unplayable", sq, got)
		}
	}
}

func TestBoard_SetIgnoresUnplayable(t *testing.T) {
	b := NewBoard()
	b.Set(Sq(0, 0), PieceCell(Black, King))
	b.Set(Sq(9, 9), PieceCell(Black, King))
	if got := b.CountPieces(Black); got != 0 {
		t.Errorf("CountPieces(Black) = %d after setting unplayable squares, want 0", got)
	}

	b.Set(Sq(3, 2), PieceCell(Black, King))
	if got := b.CountRank(Black, King); got != 1 {
		t.Errorf("CountRank(Black, King) = %d, want 1", got)
	}
}

func TestBoard_Copy(t *testing.T) {
	b := NewInitialBoard()
	c := b.Copy()
	c.Set(Sq(5, 0), EmptyCell)

	if b.Get(Sq(5, 0)) != PieceCell(Black, Regular) {
		t.Error("modifying the copy changed the original board")
	}
	if c.CountPieces(Black) != 11 {
		t.Errorf("copy CountPieces(Black) = %d, want 11", c.CountPieces(Black))
	}
}
