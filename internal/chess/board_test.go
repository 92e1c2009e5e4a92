package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.ToMove != White {
			t.Errorf("ToMove = %v; want White", b.ToMove)
		}
		if b.MoveNumber != 1 {
			t.Errorf("MoveNumber = %d; want 1", b.MoveNumber)
		}
		if b.WhiteKingMoved || b.BlackKingMoved {
			t.Error("king moved flags set on a new board")
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for sq := Square(0); sq < NumSquares; sq++ {
			if got := b.Get(sq); got != Empty {
				t.Errorf("Get(%v) = %v; want Empty", sq, got)
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	want := map[string]Piece{
		"A1": W(Rook), "B1": W(Knight), "C1": W(Bishop), "D1": W(Queen),
		"E1": W(King), "F1": W(Bishop), "G1": W(Knight), "H1": W(Rook),
		"A8": B(Rook), "B8": B(Knight), "C8": B(Bishop), "D8": B(Queen),
		"E8": B(King), "F8": B(Bishop), "G8": B(Knight), "H8": B(Rook),
	}
	for _, f := range "ABCDEFGH" {
		want[string(f)+"2"] = W(Pawn)
		want[string(f)+"7"] = B(Pawn)
	}

	b.Each(func(sq Square, got Piece) {
		wantPiece, ok := want[sq.String()]
		if !ok {
			wantPiece = Empty
		}
		if got != wantPiece {
			t.Errorf("%v = %v; want %v", sq, got, wantPiece)
		}
	})

	if b.ToMove != White || b.MoveNumber != 1 {
		t.Errorf("turn = %v/%d; want White/1", b.ToMove, b.MoveNumber)
	}
}

func TestSetupInitialPosition_Resets(t *testing.T) {
	b := NewBoard()
	b.Set(MustParseSquare("e4"), W(Queen))
	b.ToMove = Black
	b.MoveNumber = 30
	b.WhiteKingMoved = true

	b.SetupInitialPosition()

	if b.Get(MustParseSquare("e4")) != Empty {
		t.Error("e4 not cleared by SetupInitialPosition")
	}
	if b.ToMove != White || b.MoveNumber != 1 || b.WhiteKingMoved {
		t.Error("turn state not reset by SetupInitialPosition")
	}
}

func TestGetSet(t *testing.T) {
	b := NewBoard()
	sq := MustParseSquare("d5")

	b.Set(sq, B(Knight))
	if got := b.Get(sq); got != B(Knight) {
		t.Errorf("Get(d5) = %v; want black knight", got)
	}

	b.Set(NoSquare, W(King))
	if got := b.Get(NoSquare); got != Empty {
		t.Errorf("Get(NoSquare) = %v; want Empty", got)
	}
}

func TestFind(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	knights := b.Find(W(Knight))
	if len(knights) != 2 || knights[0] != B1 || knights[1] != G1 {
		t.Errorf("Find(white knight) = %v; want [B1 G1]", knights)
	}
	if got := b.Find(W(Pawn)); len(got) != 8 {
		t.Errorf("Find(white pawn) returned %d squares; want 8", len(got))
	}
}

func TestAdvanceTurn(t *testing.T) {
	b := NewBoard()

	b.AdvanceTurn()
	if b.ToMove != Black || b.MoveNumber != 1 {
		t.Errorf("after White: %v/%d; want Black/1", b.ToMove, b.MoveNumber)
	}

	b.AdvanceTurn()
	if b.ToMove != White || b.MoveNumber != 2 {
		t.Errorf("after Black: %v/%d; want White/2", b.ToMove, b.MoveNumber)
	}
	if !b.IsWhiteToMove() {
		t.Error("IsWhiteToMove() = false; want true")
	}
}

func TestKingMoved(t *testing.T) {
	b := NewBoard()
	b.SetKingMoved(Black)
	if !b.KingMoved(Black) || b.KingMoved(White) {
		t.Errorf("KingMoved = white %v black %v; want false true", b.KingMoved(White), b.KingMoved(Black))
	}
}

func TestCopy(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	c := b.Copy()
	c.Set(MustParseSquare("e2"), Empty)
	c.ToMove = Black

	if b.Get(MustParseSquare("e2")) != W(Pawn) {
		t.Error("modifying copy changed the original squares")
	}
	if b.ToMove != White {
		t.Error("modifying copy changed the original turn")
	}
}

func TestColouredPieces(t *testing.T) {
	for p := Pawn; p < NumPieceValues; p++ {
		for _, c := range []Colour{White, Black} {
			cp := MakeColouredPiece(c, p)
			if ExtractPiece(cp) != p || ExtractColour(cp) != c {
				t.Errorf("round trip of %v %v failed", c, p)
			}
			if cp == Empty {
				t.Errorf("%v %v encodes as Empty", c, p)
			}
		}
	}
}

func TestPieceStrings(t *testing.T) {
	if got := Knight.String(); got != "Knight" {
		t.Errorf("Knight.String() = %q", got)
	}
	if got := W(Queen).String(); got != "White Queen" {
		t.Errorf("W(Queen).String() = %q", got)
	}
	if got := Bishop.Letter(); got != 'B' {
		t.Errorf("Bishop.Letter() = %c", got)
	}
	if PieceFromLetter('N') != Knight || PieceFromLetter('x') != Empty {
		t.Error("PieceFromLetter mismatch")
	}
}
