package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGame_AddToken(t *testing.T) {
	g := NewGame()
	for _, tok := range []string{"e4", "e5", "Nf3"} {
		g.AddToken(tok)
	}

	want := []MovePair{{White: "e4", Black: "e5"}, {White: "Nf3"}}
	if diff := cmp.Diff(want, g.Moves); diff != "" {
		t.Errorf("Moves mismatch (-want +got):\n%s", diff)
	}
	if got := g.PlyCount(); got != 3 {
		t.Errorf("PlyCount() = %d; want 3", got)
	}
}

func TestGame_Token(t *testing.T) {
	g := &Game{Moves: []MovePair{{"e4", "e5"}, {"Nf3", "Nc6"}}}

	tests := []struct {
		ply  int
		want string
	}{
		{-1, ""},
		{0, "e4"},
		{1, "e5"},
		{2, "Nf3"},
		{3, "Nc6"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := g.Token(tt.ply); got != tt.want {
			t.Errorf("Token(%d) = %q; want %q", tt.ply, got, tt.want)
		}
	}

	if diff := cmp.Diff([]string{"e4", "e5", "Nf3", "Nc6"}, g.Tokens()); diff != "" {
		t.Errorf("Tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestGame_Tags(t *testing.T) {
	g := &Game{}
	if g.HasTag("White") {
		t.Error("HasTag on empty game = true")
	}
	g.SetTag("White", "Carlsen")
	g.SetTag("Black", "Nakamura")
	if g.White() != "Carlsen" || g.Black() != "Nakamura" {
		t.Errorf("players = %q/%q", g.White(), g.Black())
	}
}
