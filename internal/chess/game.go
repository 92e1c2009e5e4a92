package chess

// MovePair is one numbered line of a move record: White's token followed by
// Black's. Black is empty when the record ends after White's move.
type MovePair struct {
	White string
	Black string
}

// Game is a move record read from a game file, with its tags.
type Game struct {
	// Name identifies the record, usually the file name without extension.
	Name string

	// Tags from bracketed metadata lines (e.g., Event, White, Black).
	Tags map[string]string

	// Moves in record order.
	Moves []MovePair

	// Terminating result token ("1-0", "0-1", "1/2-1/2", "*"), if any.
	Result string

	// Line numbers of the start and end of the game in the input file.
	StartLine uint
	EndLine   uint
}

// NewGame creates a new empty game.
func NewGame() *Game {
	return &Game{
		Tags: make(map[string]string),
	}
}

// GetTag returns a tag value, or empty string if not present.
func (g *Game) GetTag(name string) string {
	return g.Tags[name]
}

// SetTag sets a tag value.
func (g *Game) SetTag(name, value string) {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
	g.Tags[name] = value
}

// HasTag returns true if the tag is present.
func (g *Game) HasTag(name string) bool {
	_, ok := g.Tags[name]
	return ok
}

// White returns the White player name.
func (g *Game) White() string {
	return g.GetTag("White")
}

// Black returns the Black player name.
func (g *Game) Black() string {
	return g.GetTag("Black")
}

// AddToken appends a half-move token, opening a new pair on White's turn.
func (g *Game) AddToken(tok string) {
	n := len(g.Moves)
	if n > 0 && g.Moves[n-1].Black == "" {
		g.Moves[n-1].Black = tok
		return
	}
	g.Moves = append(g.Moves, MovePair{White: tok})
}

// PlyCount returns the number of half-move tokens in the record.
func (g *Game) PlyCount() int {
	n := 0
	for _, mp := range g.Moves {
		if mp.White != "" {
			n++
		}
		if mp.Black != "" {
			n++
		}
	}
	return n
}

// Token returns the token of the 0-based ply, or "" past the end.
func (g *Game) Token(ply int) string {
	if ply < 0 {
		return ""
	}
	pair := ply / 2
	if pair >= len(g.Moves) {
		return ""
	}
	if ply%2 == 0 {
		return g.Moves[pair].White
	}
	return g.Moves[pair].Black
}

// Tokens returns all half-move tokens in order.
func (g *Game) Tokens() []string {
	tokens := make([]string, 0, g.PlyCount())
	for ply := 0; ; ply++ {
		tok := g.Token(ply)
		if tok == "" {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
