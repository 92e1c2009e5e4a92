package parser

import (
	"errors"
	"testing"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	pgnerrors "github.com/lgbarn/pgn-replay-go/internal/errors"
)

func TestDecodeMove(t *testing.T) {
	tests := []struct {
		token     string
		class     chess.MoveClass
		piece     chess.Piece
		to        string
		fromFile  byte
		fromRank  byte
		promotion chess.Piece
	}{
		{"e4", chess.PawnMove, chess.Pawn, "e4", 0, 0, chess.Empty},
		{"E4", chess.PawnMove, chess.Pawn, "e4", 0, 0, chess.Empty},
		{"B4", chess.PawnMove, chess.Pawn, "b4", 0, 0, chess.Empty},
		{"e8=Q", chess.PawnMove, chess.Pawn, "e8", 0, 0, chess.Queen},
		{"a1N", chess.PawnMove, chess.Pawn, "a1", 0, 0, chess.Knight},
		{"exd5", chess.PawnCapture, chess.Pawn, "d5", 'e', 0, chess.Empty},
		{"bxa8=R", chess.PawnCapture, chess.Pawn, "a8", 'b', 0, chess.Rook},
		{"gxh1=Q+", chess.PawnCapture, chess.Pawn, "h1", 'g', 0, chess.Queen},
		{"Nf3", chess.PieceMove, chess.Knight, "f3", 0, 0, chess.Empty},
		{"Bxc6", chess.PieceMove, chess.Bishop, "c6", 0, 0, chess.Empty},
		{"Nbd7", chess.PieceMove, chess.Knight, "d7", 'b', 0, chess.Empty},
		{"R1e2", chess.PieceMove, chess.Rook, "e2", 0, '1', chess.Empty},
		{"Qh4xe1", chess.PieceMove, chess.Queen, "e1", 'h', '4', chess.Empty},
		{"Qh4#", chess.PieceMove, chess.Queen, "h4", 0, 0, chess.Empty},
		{"Kxf7!?", chess.PieceMove, chess.King, "f7", 0, 0, chess.Empty},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			m, err := DecodeMove(tt.token)
			if err != nil {
				t.Fatalf("DecodeMove(%q) error: %v", tt.token, err)
			}
			if m.Class != tt.class {
				t.Errorf("Class = %v; want %v", m.Class, tt.class)
			}
			if m.PieceToMove != tt.piece {
				t.Errorf("PieceToMove = %v; want %v", m.PieceToMove, tt.piece)
			}
			if want := chess.MustParseSquare(tt.to); m.To != want {
				t.Errorf("To = %v; want %v", m.To, want)
			}
			if m.FromFile != tt.fromFile || m.FromRank != tt.fromRank {
				t.Errorf("hints = %q/%q; want %q/%q", m.FromFile, m.FromRank, tt.fromFile, tt.fromRank)
			}
			if m.PromotedPiece != tt.promotion {
				t.Errorf("PromotedPiece = %v; want %v", m.PromotedPiece, tt.promotion)
			}
			if m.Text != tt.token {
				t.Errorf("Text = %q; want %q", m.Text, tt.token)
			}
			if m.From != chess.NoSquare {
				t.Errorf("From = %v; decoding must not resolve the origin", m.From)
			}
		})
	}
}

func TestDecodeMove_Castling(t *testing.T) {
	tests := []struct {
		token string
		want  chess.MoveClass
	}{
		{"O-O", chess.KingsideCastle},
		{"0-0", chess.KingsideCastle},
		{"O-O+", chess.KingsideCastle},
		{"O-O-O", chess.QueensideCastle},
		{"0-0-0", chess.QueensideCastle},
		{"O-O-O#", chess.QueensideCastle},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			m, err := DecodeMove(tt.token)
			if err != nil {
				t.Fatalf("DecodeMove(%q) error: %v", tt.token, err)
			}
			if m.Class != tt.want || !m.IsCastle() {
				t.Errorf("Class = %v; want %v", m.Class, tt.want)
			}
			if m.PieceToMove != chess.King {
				t.Errorf("PieceToMove = %v; want King", m.PieceToMove)
			}
		})
	}
}

func TestDecodeMove_Rejected(t *testing.T) {
	for _, token := range []string{
		"",
		"+",
		"e9",
		"i4",
		"exe5",  // capture onto the same file
		"axc3",  // files not adjacent
		"e5=Q",  // promotion off the last rank
		"e8=K",  // no promotion to king
		"e5=",   // "=" with no promotion letter
		"e8=",
		"exd6=",
		"exd8=",
		"e4e5",  // trailing junk
		"Nf",    // no destination
		"Zf3",   // unknown piece letter
		"Ke1x",  // capture mark after the destination
		"Nxbd7", // capture mark before the hint
		"Nabc3", // hint too long
		"O-O-O-O",
		"OO",
		"xd5",
	} {
		t.Run(token, func(t *testing.T) {
			m, err := DecodeMove(token)
			if !errors.Is(err, pgnerrors.ErrNotation) {
				t.Errorf("DecodeMove(%q) error = %v; want ErrNotation", token, err)
			}
			if m != nil {
				t.Errorf("DecodeMove(%q) returned a move on error", token)
			}
		})
	}
}

func TestDecodeMove_BadSquareWrapsFormat(t *testing.T) {
	_, err := DecodeMove("e9")
	if !errors.Is(err, pgnerrors.ErrFormat) {
		t.Errorf("DecodeMove(e9) error = %v; want it to wrap ErrFormat", err)
	}
}

func TestStripSuffix(t *testing.T) {
	tests := map[string]string{
		"Qh4#":  "Qh4",
		"e4!?":  "e4",
		"Nf3+":  "Nf3",
		"O-O":   "O-O",
		"??":    "",
		"Rxe8+": "Rxe8",
	}
	for in, want := range tests {
		if got := StripSuffix(in); got != want {
			t.Errorf("StripSuffix(%q) = %q; want %q", in, got, want)
		}
	}
}
