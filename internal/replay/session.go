// Package replay steps a board forwards and backwards through a move record.
package replay

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/engine"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
	"github.com/lgbarn/pgn-replay-go/internal/store"
)

// DefaultSnapshotInterval is how many plies apart snapshots are stored.
const DefaultSnapshotInterval = 8

var (
	// ErrEndOfGame is returned by Forward when every ply has been applied.
	ErrEndOfGame = stderrors.New("end of game")

	// ErrStartOfGame is returned by Back at ply 0.
	ErrStartOfGame = stderrors.New("start of game")

	// ErrPlyOutOfRange is returned by Seek for a ply outside the record.
	ErrPlyOutOfRange = stderrors.New("ply out of range")
)

// Session is a cursor over one game. Ply 0 is the starting position; ply n
// is the position after the first n tokens.
type Session struct {
	id       uuid.UUID
	game     *chess.Game
	start    *chess.Board
	board    *chess.Board
	ply      int
	resolver engine.Resolver

	ctx      context.Context
	logger   *zap.Logger
	store    store.Store
	key      string
	interval int
}

// Option configures a Session.
type Option func(*Session)

// WithResolver sets the move resolver.
func WithResolver(r engine.Resolver) Option {
	return func(s *Session) { s.resolver = r }
}

// WithLogger sets the logger. Entries carry the session ID.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore caches snapshots in st while seeking.
func WithStore(st store.Store) Option {
	return func(s *Session) { s.store = st }
}

// WithSnapshotInterval sets how many plies apart snapshots are kept.
func WithSnapshotInterval(n int) Option {
	return func(s *Session) {
		if n >= 1 {
			s.interval = n
		}
	}
}

// WithContext sets the context used for snapshot store calls.
func WithContext(ctx context.Context) Option {
	return func(s *Session) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// New starts a session at ply 0. The starting board comes from the game's
// FEN tag when it has a valid one.
func New(game *chess.Game, opts ...Option) *Session {
	s := &Session{
		id:       uuid.New(),
		game:     game,
		ctx:      context.Background(),
		logger:   zap.NewNop(),
		interval: DefaultSnapshotInterval,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With(zap.String("session", s.id.String()), zap.String("game", game.Name))
	s.start = engine.NewBoardForGame(game)
	s.board = s.start.Copy()

	if s.store != nil {
		s.key = store.GameKey(game)
		if s.resolver.Strict {
			s.key += ":strict"
		}
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id.String()
}

// Game returns the move record being replayed.
func (s *Session) Game() *chess.Game {
	return s.game
}

// Board returns a copy of the current position.
func (s *Session) Board() *chess.Board {
	return s.board.Copy()
}

// Ply returns the number of plies applied.
func (s *Session) Ply() int {
	return s.ply
}

// PlyCount returns the number of plies in the record.
func (s *Session) PlyCount() int {
	return s.game.PlyCount()
}

// NextToken returns the token Forward would apply, or "" at the end.
func (s *Session) NextToken() string {
	return s.game.Token(s.ply)
}

// IsWhiteToMove reports the side to move in the current position.
func (s *Session) IsWhiteToMove() bool {
	return s.board.IsWhiteToMove()
}

// Forward applies the next token. On failure the board and the cursor are
// left where they were.
func (s *Session) Forward() error {
	if s.ply >= s.game.PlyCount() {
		return ErrEndOfGame
	}
	if err := s.apply(s.board, s.ply); err != nil {
		return err
	}
	s.ply++
	s.snapshot(s.board, s.ply)
	return nil
}

// Back steps one ply back by replaying up to the previous ply.
func (s *Session) Back() error {
	if s.ply == 0 {
		return ErrStartOfGame
	}
	return s.Seek(s.ply - 1)
}

// Reset returns to the starting position.
func (s *Session) Reset() {
	s.board = s.start.Copy()
	s.ply = 0
}

// Seek moves to ply. The position is rebuilt from the nearest known board
// at or below ply: the current one, a stored snapshot, or the start. On
// failure the session is unchanged.
func (s *Session) Seek(ply int) error {
	if ply < 0 || ply > s.game.PlyCount() {
		return fmt.Errorf("seek to %d of %d: %w", ply, s.game.PlyCount(), ErrPlyOutOfRange)
	}

	board, from := s.start.Copy(), 0
	if s.ply <= ply {
		board, from = s.board.Copy(), s.ply
	}
	if cached, at := s.lookup(ply, from); cached != nil {
		board, from = cached, at
	}

	for p := from; p < ply; p++ {
		if err := s.apply(board, p); err != nil {
			return err
		}
		s.snapshot(board, p+1)
	}

	s.board, s.ply = board, ply
	s.logger.Debug("seek", zap.Int("ply", ply), zap.Int("replayed", ply-from))
	return nil
}

func (s *Session) apply(board *chess.Board, ply int) error {
	tok := s.game.Token(ply)
	if err := s.resolver.ApplyNotation(board, tok); err != nil {
		s.logger.Warn("move rejected", zap.Int("ply", ply+1), zap.String("token", tok), zap.Error(err))
		return &errors.GameError{
			Err:      err,
			PlyNum:   ply + 1,
			MoveText: tok,
			File:     s.game.Name,
		}
	}
	s.logger.Debug("move applied", zap.Int("ply", ply+1), zap.String("token", tok))
	return nil
}

// snapshot stores the board when ply falls on the snapshot interval.
// Store failures are logged and otherwise ignored.
func (s *Session) snapshot(board *chess.Board, ply int) {
	if s.store == nil || ply%s.interval != 0 {
		return
	}
	if err := s.store.Put(s.ctx, s.key, ply, engine.BoardToFEN(board)); err != nil {
		s.logger.Warn("snapshot write failed", zap.Int("ply", ply), zap.Error(err))
	}
}

// lookup finds the highest stored snapshot in (floor, ply].
func (s *Session) lookup(ply, floor int) (*chess.Board, int) {
	if s.store == nil {
		return nil, 0
	}
	for at := ply - ply%s.interval; at > floor; at -= s.interval {
		fen, err := s.store.Get(s.ctx, s.key, at)
		if stderrors.Is(err, errors.ErrSnapshotNotFound) {
			continue
		}
		if err != nil {
			s.logger.Warn("snapshot read failed", zap.Int("ply", at), zap.Error(err))
			return nil, 0
		}
		board, err := engine.NewBoardFromFEN(fen)
		if err != nil {
			s.logger.Warn("bad snapshot", zap.Int("ply", at), zap.String("fen", fen), zap.Error(err))
			continue
		}
		s.logger.Debug("snapshot hit", zap.Int("ply", at))
		return board, at
	}
	return nil, 0
}
