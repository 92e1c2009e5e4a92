// Package store caches board snapshots for replay sessions so that seeking
// deep into a long game does not replay it from the first move every time.
package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/config"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// Store holds FEN snapshots keyed by game and ply.
// Get returns errors.ErrSnapshotNotFound on a miss.
type Store interface {
	Put(ctx context.Context, key string, ply int, fen string) error
	Get(ctx context.Context, key string, ply int) (string, error)
	Close() error
}

// GameKey identifies a move record by content: the FEN tag, if any, and the
// token sequence. Two files holding the same game share snapshots.
func GameKey(game *chess.Game) string {
	h := xxhash.New()
	_, _ = h.WriteString(game.GetTag("FEN"))
	for _, tok := range game.Tokens() {
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(tok)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// Open returns the backend named by cfg. The none backend yields a nil Store.
func Open(cfg config.StoreConfig, logger *zap.Logger) (Store, error) {
	switch cfg.Backend {
	case config.StoreNone, "":
		return nil, nil
	case config.StoreBadger:
		s, err := OpenBadger(cfg.Path, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StoreRedis:
		s, err := OpenRedis(cfg.RedisURL, cfg.TTL)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("store backend %q: %w", cfg.Backend, errors.ErrInvalidConfig)
}

func snapshotKey(key string, ply int) string {
	return "snap:" + key + ":" + strconv.Itoa(ply)
}
