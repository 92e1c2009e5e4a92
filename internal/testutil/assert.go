// Package testutil provides shared test helpers for pgn-replay: assertions
// built on go-cmp and fixtures for move records.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/engine"
	pgnerrors "github.com/lgbarn/pgn-replay-go/internal/errors"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%smismatch (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
}

// AssertNoError fails the test immediately if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		t.Fatalf("%sunexpected error: %v", prefix(msgAndArgs...), err)
	}
}

// AssertErrorIs fails if err does not wrap target.
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("%serror = %v, want %v", prefix(msgAndArgs...), err, target)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		t.Errorf("%s%q does not contain %q", prefix(msgAndArgs...), got, substr)
	}
}

// AssertPlacement compares the piece-placement field of board with want.
func AssertPlacement(t *testing.T, board *chess.Board, want string) {
	t.Helper()
	if got := engine.PlacementFEN(board); got != want {
		t.Errorf("placement = %s, want %s", got, want)
	}
}

// AssertGameError checks that err is a *GameError for the given ply and
// token and returns it.
func AssertGameError(t *testing.T, err error, ply int, token string) *pgnerrors.GameError {
	t.Helper()
	var ge *pgnerrors.GameError
	if !errors.As(err, &ge) {
		t.Fatalf("error = %v, want *GameError", err)
	}
	if ge.PlyNum != ply || ge.MoveText != token {
		t.Errorf("GameError at ply %d %q, want ply %d %q", ge.PlyNum, ge.MoveText, ply, token)
	}
	return ge
}

// prefix formats optional message arguments as "msg: ", or "" without any.
func prefix(msgAndArgs ...interface{}) string {
	if msg := formatMessage(msgAndArgs...); msg != "" {
		return msg + ": "
	}
	return ""
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if s, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) == 1 {
			return s
		}
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
