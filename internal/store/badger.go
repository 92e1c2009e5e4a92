package store

import (
	"context"
	stderrors "errors"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// BadgerStore keeps snapshots in an embedded badger database.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens a database in dir, or an in-memory one when dir is empty.
// Badger's own messages go to logger at their matching levels.
func OpenBadger(dir string, logger *zap.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil
	if logger != nil {
		opts.Logger = badgerLogger{logger.Named("badger").Sugar()}
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open badger")
	}
	return &BadgerStore{db: db}, nil
}

// Put stores the snapshot for ply, replacing any earlier one.
func (s *BadgerStore) Put(_ context.Context, key string, ply int, fen string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(snapshotKey(key, ply)), []byte(fen))
	})
}

// Get loads the snapshot for ply.
func (s *BadgerStore) Get(_ context.Context, key string, ply int) (string, error) {
	var fen string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(snapshotKey(key, ply)))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrSnapshotNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			fen = string(val)
			return nil
		})
	})
	return fen, err
}

// Close closes the database.
func (s *BadgerStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// badgerLogger adapts a sugared zap logger to badger.Logger.
type badgerLogger struct {
	l *zap.SugaredLogger
}

func (b badgerLogger) Errorf(f string, v ...interface{})   { b.l.Errorf(f, v...) }
func (b badgerLogger) Warningf(f string, v ...interface{}) { b.l.Warnf(f, v...) }
func (b badgerLogger) Infof(f string, v ...interface{})    { b.l.Infof(f, v...) }
func (b badgerLogger) Debugf(f string, v ...interface{})   { b.l.Debugf(f, v...) }
