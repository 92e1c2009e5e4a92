// Package parser reads move records and decodes move notation.
package parser

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// Reader splits a line-oriented game record into games. Bracketed lines are
// tag metadata, blank lines separate games, and the remaining lines hold
// move numbers and half-move tokens.
type Reader struct {
	scanner *bufio.Scanner
	file    string
	name    string // file base name without extension, given to each game
	lineNum uint

	// A tag line read while a game was still open; it starts the next game.
	pending    string
	hasPending bool

	commentDepth int // inside {...}
	ravLevel     int // inside (...)
}

// NewReader creates a reader. name is used in error messages and may be
// empty; each game read is named after it, without directory or extension.
func NewReader(r io.Reader, name string) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{scanner: scanner, file: name, name: gameName(name)}
}

// gameName strips the directory and extension from a file name.
func gameName(file string) string {
	if file == "" {
		return ""
	}
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LineNumber returns the number of the last line read.
func (r *Reader) LineNumber() uint {
	return r.lineNum
}

// readLine returns the next line, honouring a pushed-back tag line.
func (r *Reader) readLine() (string, bool) {
	if r.hasPending {
		r.hasPending = false
		return r.pending, true
	}
	if !r.scanner.Scan() {
		return "", false
	}
	r.lineNum++
	return r.scanner.Text(), true
}

// ReadGame reads the next game. It returns nil, nil when the input is exhausted.
func (r *Reader) ReadGame() (*chess.Game, error) {
	game := chess.NewGame()
	game.Name = r.name
	started := false
	inMoves := false

	for {
		line, ok := r.readLine()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)

		if r.commentDepth == 0 && isTagLine(trimmed) {
			if inMoves {
				r.pending, r.hasPending = line, true
				return r.finish(game), nil
			}
			if !started {
				game.StartLine = r.lineNum
				started = true
			}
			if name, value, ok := parseTag(trimmed); ok {
				game.SetTag(name, value)
			}
			continue
		}

		if trimmed == "" {
			if inMoves && r.commentDepth == 0 {
				return r.finish(game), nil
			}
			continue
		}

		if !started {
			game.StartLine = r.lineNum
			started = true
		}
		inMoves = true

		done, err := r.scanMoveLine(game, trimmed)
		if err != nil {
			return nil, err
		}
		if done {
			return r.finish(game), nil
		}
	}

	if err := r.scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", r.displayName())
	}
	if r.commentDepth > 0 {
		return nil, &errors.ParseError{Err: errors.ErrParseFailure, File: r.file, Line: int(r.lineNum), Got: "unterminated comment"}
	}
	if !started {
		return nil, nil
	}
	return r.finish(game), nil
}

// finish stamps the end line and resets per-game lexer state.
func (r *Reader) finish(game *chess.Game) *chess.Game {
	game.EndLine = r.lineNum
	r.commentDepth = 0
	r.ravLevel = 0
	return game
}

// scanMoveLine adds the move tokens of one line to the game. It returns true
// when a result token ends the game.
func (r *Reader) scanMoveLine(game *chess.Game, line string) (bool, error) {
	for _, field := range splitFields(line) {
		tok := field

		// Comments and variations may span fields and lines.
		for tok != "" {
			if r.commentDepth > 0 {
				end := strings.IndexByte(tok, '}')
				if end < 0 {
					tok = ""
					break
				}
				r.commentDepth = 0
				tok = tok[end+1:]
				continue
			}
			if i := strings.IndexByte(tok, '{'); i >= 0 {
				before := tok[:i]
				r.commentDepth = 1
				tok = tok[i+1:]
				if done, err := r.addToken(game, before); done || err != nil {
					return done, err
				}
				continue
			}
			if i := strings.IndexAny(tok, "()"); i >= 0 {
				before := tok[:i]
				if done, err := r.addToken(game, before); done || err != nil {
					return done, err
				}
				if tok[i] == '(' {
					r.ravLevel++
				} else {
					if r.ravLevel == 0 {
						return false, &errors.ParseError{Err: errors.ErrParseFailure, File: r.file, Line: int(r.lineNum), Got: ")"}
					}
					r.ravLevel--
				}
				tok = tok[i+1:]
				continue
			}
			if strings.HasPrefix(tok, ";") {
				// Rest-of-line comment.
				return false, nil
			}
			done, err := r.addToken(game, tok)
			if done || err != nil {
				return done, err
			}
			tok = ""
		}
	}
	return false, nil
}

// addToken records a single cleaned token unless it is a move number,
// annotation glyph, or part of a variation.
func (r *Reader) addToken(game *chess.Game, tok string) (bool, error) {
	if tok == "" || r.ravLevel > 0 {
		return false, nil
	}
	if chess.IsResult(tok) {
		game.Result = tok
		if !game.HasTag("Result") {
			game.SetTag("Result", tok)
		}
		return true, nil
	}
	tok = stripMoveNumber(tok)
	if tok == "" || tok[0] == '$' {
		return false, nil
	}
	if StripSuffix(tok) == "" {
		// "!!", "?!" and the like written apart from the move
		return false, nil
	}
	game.AddToken(tok)
	return false, nil
}

// displayName returns the file name for messages.
func (r *Reader) displayName() string {
	if r.file == "" {
		return "input"
	}
	return r.file
}

// ReadAllGames reads every game from the input.
func (r *Reader) ReadAllGames() ([]*chess.Game, error) {
	var games []*chess.Game
	for {
		game, err := r.ReadGame()
		if err != nil {
			return games, err
		}
		if game == nil {
			return games, nil
		}
		games = append(games, game)
	}
}

// ReadFile reads every game in the named file. Each game is named after the
// file, without directory or extension.
func ReadFile(path string) ([]*chess.Game, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return NewReader(f, path).ReadAllGames()
}

// isTagLine reports whether a trimmed line is bracketed metadata.
func isTagLine(line string) bool {
	return len(line) >= 2 && line[0] == '[' && line[len(line)-1] == ']'
}

// parseTag extracts name and value from a line like [White "Kasparov"].
func parseTag(line string) (string, string, bool) {
	inner := strings.TrimSpace(line[1 : len(line)-1])
	sp := strings.IndexAny(inner, " \t")
	if sp <= 0 {
		return "", "", false
	}
	name := inner[:sp]
	value := strings.TrimSpace(inner[sp:])
	if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return "", "", false
	}
	value = strings.ReplaceAll(value[1:len(value)-1], `\"`, `"`)
	return name, value, true
}

// stripMoveNumber removes a leading move number such as "12." or "3..."
// and returns what follows it ("1.e4" gives "e4", "12." gives "").
func stripMoveNumber(tok string) string {
	i := 0
	for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
		i++
	}
	if i == 0 || i == len(tok) || tok[i] != '.' {
		return tok
	}
	for i < len(tok) && tok[i] == '.' {
		i++
	}
	return tok[i:]
}

// splitFields splits on spaces and tabs.
func splitFields(line string) []string {
	return strings.Fields(line)
}
