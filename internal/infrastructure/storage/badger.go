package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"

	"svw.info/sokoban/internal/domain"
)

const recordPrefix = "record/"

// BadgerConfig holds configuration for a Badger-backed store.
type BadgerConfig struct {
	// Path is the database directory. Ignored when InMemory is true.
	Path string

	// InMemory keeps everything in RAM; used by tests and the "memory"
	// storage kind.
	InMemory bool

	SyncWrites bool

	// Logger receives Badger's internal logs. Nil disables them.
	Logger *slog.Logger
}

// badgerLogger adapts slog.Logger to Badger's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Badger stores records as JSON values keyed by "record/<key>".
type Badger struct {
	db *badger.DB
}

// OpenBadger opens the database described by cfg. Caller must Close it.
func OpenBadger(cfg BadgerConfig) (*Badger, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &Badger{db: db}, nil
}

func (s *Badger) Close() error { return s.db.Close() }

func (s *Badger) Save(ctx context.Context, r *domain.Record) error {
	if r == nil || r.Key == "" {
		return errors.New("invalid record: missing key")
	}
	val, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(recordPrefix+r.Key), val)
	})
}

func (s *Badger) Load(ctx context.Context, key string) (*domain.Record, error) {
	var out domain.Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(recordPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &out)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return &out, nil
}

func (s *Badger) List(ctx context.Context) ([]domain.RecordMeta, error) {
	var out []domain.RecordMeta
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(recordPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var r domain.Record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			})
			if err != nil {
				continue
			}
			out = append(out, r.Meta())
		}
		return nil
	})
	return out, err
}
