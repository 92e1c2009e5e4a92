package store

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// RedisStore keeps snapshots in redis with an expiry.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore wraps an existing client. A zero ttl keeps keys forever.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// OpenRedis connects to url and checks the server answers.
func OpenRedis(url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "redis url")
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrap(err, "redis ping")
	}
	return NewRedisStore(rdb, ttl), nil
}

// Put stores the snapshot for ply and refreshes its expiry.
func (s *RedisStore) Put(ctx context.Context, key string, ply int, fen string) error {
	return s.rdb.Set(ctx, snapshotKey(key, ply), fen, s.ttl).Err()
}

// Get loads the snapshot for ply.
func (s *RedisStore) Get(ctx context.Context, key string, ply int) (string, error) {
	fen, err := s.rdb.Get(ctx, snapshotKey(key, ply)).Result()
	if stderrors.Is(err, redis.Nil) {
		return "", errors.ErrSnapshotNotFound
	}
	return fen, err
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
