package parser

import (
	"fmt"
	"strings"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// isCol returns true if c is a valid lowercase file character.
func isCol(c byte) bool {
	return c >= 'a' && c <= 'h'
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

// isPiece returns the piece kind named by an uppercase SAN letter.
// Lowercase 'b' is a file, never a bishop.
func isPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'Q', 'R', 'B', 'N':
		return chess.PieceFromLetter(c)
	}
	return chess.Empty
}

// isPromotion returns the piece kind a pawn may promote to.
func isPromotion(c byte) chess.Piece {
	switch c {
	case 'Q', 'R', 'B', 'N':
		return chess.PieceFromLetter(c)
	}
	return chess.Empty
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0'
}

// isSuffix returns true for check and annotation glyphs after a move.
func isSuffix(c byte) bool {
	return c == '+' || c == '#' || c == '!' || c == '?'
}

// StripSuffix removes trailing check and annotation glyphs ("Qh4#", "e4!?").
func StripSuffix(token string) string {
	end := len(token)
	for end > 0 && isSuffix(token[end-1]) {
		end--
	}
	return token[:end]
}

// DecodeMove classifies a notation token and extracts its destination,
// origin hints and promotion piece. It does not look at any board.
func DecodeMove(token string) (*chess.Move, error) {
	move := chess.NewMove()
	move.Text = token

	text := StripSuffix(strings.TrimSpace(token))
	if text == "" {
		return nil, notationError(token, nil)
	}

	var err error
	switch {
	case len(text) == 2:
		// Any two-character token is a square: a pawn advance.
		err = decodeSquareAdvance(move, text)
	case isCastlingChar(text[0]):
		err = decodeCastle(move, text)
	case isCol(text[0]):
		err = decodePawn(move, text)
	case isPiece(text[0]) != chess.Empty:
		err = decodePiece(move, text)
	default:
		err = notationError(token, nil)
	}
	if err != nil {
		return nil, err
	}
	return move, nil
}

// decodeCastle accepts O-O, O-O-O and the zero-digit spellings.
func decodeCastle(move *chess.Move, text string) error {
	switch text {
	case "O-O", "0-0":
		move.Class = chess.KingsideCastle
	case "O-O-O", "0-0-0":
		move.Class = chess.QueensideCastle
	default:
		return notationError(move.Text, nil)
	}
	move.PieceToMove = chess.King
	return nil
}

// decodeSquareAdvance handles a bare destination such as "e4" or "E4".
func decodeSquareAdvance(move *chess.Move, text string) error {
	to, err := chess.ParseSquare(text)
	if err != nil {
		return notationError(move.Text, err)
	}
	move.Class = chess.PawnMove
	move.PieceToMove = chess.Pawn
	move.To = to
	return nil
}

// decodePawn handles "e8=Q", "exd5" and "exd8=Q".
func decodePawn(move *chess.Move, text string) error {
	move.PieceToMove = chess.Pawn
	pos := 0

	currentChar := func() byte {
		if pos >= len(text) {
			return 0
		}
		return text[pos]
	}

	if len(text) > 1 && text[1] == 'x' {
		// exd5: the attacker names only its file
		move.Class = chess.PawnCapture
		move.FromFile = text[0]
		pos = 2
	} else {
		move.Class = chess.PawnMove
	}

	if pos+2 > len(text) {
		return notationError(move.Text, nil)
	}
	to, err := chess.ParseSquare(text[pos : pos+2])
	if err != nil || !isCol(text[pos]) {
		return notationError(move.Text, err)
	}
	move.To = to
	pos += 2

	if move.Class == chess.PawnCapture {
		diff := int(move.FromFile) - int(text[2])
		if diff != 1 && diff != -1 {
			return notationError(move.Text, nil)
		}
	}

	if currentChar() == '=' {
		pos++
		if isPromotion(currentChar()) == chess.Empty {
			return notationError(move.Text, nil)
		}
	}
	if piece := isPromotion(currentChar()); piece != chess.Empty {
		if to.Row() != 0 && to.Row() != chess.BoardSize-1 {
			return notationError(move.Text, nil)
		}
		move.PromotedPiece = piece
		pos++
	}

	if pos != len(text) {
		return notationError(move.Text, nil)
	}
	return nil
}

// decodePiece handles "Nf3", "Bxc6", "Nbd7", "R1e2" and "Qh4xe1".
func decodePiece(move *chess.Move, text string) error {
	move.Class = chess.PieceMove
	move.PieceToMove = isPiece(text[0])

	body := text[1:]
	if i := strings.IndexByte(body, 'x'); i >= 0 {
		// the capture mark sits directly before the destination
		if i != len(body)-3 {
			return notationError(move.Text, nil)
		}
		body = body[:i] + body[i+1:]
	}

	if len(body) < 2 || len(body) > 4 {
		return notationError(move.Text, nil)
	}

	dest := body[len(body)-2:]
	if !isCol(dest[0]) {
		return notationError(move.Text, nil)
	}
	to, err := chess.ParseSquare(dest)
	if err != nil {
		return notationError(move.Text, err)
	}
	move.To = to

	hint := body[:len(body)-2]
	switch len(hint) {
	case 0:
	case 1:
		switch {
		case isCol(hint[0]):
			move.FromFile = hint[0]
		case isRank(hint[0]):
			move.FromRank = hint[0]
		default:
			return notationError(move.Text, nil)
		}
	case 2:
		if !isCol(hint[0]) || !isRank(hint[1]) {
			return notationError(move.Text, nil)
		}
		move.FromFile = hint[0]
		move.FromRank = hint[1]
	}
	return nil
}

// notationError wraps ErrNotation, and the square error when there is one.
func notationError(token string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%q: %w: %w", token, errors.ErrNotation, cause)
	}
	return fmt.Errorf("%q: %w", token, errors.ErrNotation)
}
