package cache

import (
	"context"
	"errors"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// ErrMiss indicates the key is not present in the store
var ErrMiss = errors.New("cache miss")

// Options configures a Store
type Options struct {
	Directory string
	InMemory  bool
	Logger    bool
}

// Store is a manifest cache backed by BadgerDB. The indexer uses it to
// skip re-reading archives whose path, size and mtime are unchanged.
type Store struct {
	db *badger.DB
}

// Open opens a BadgerDB-backed store
func Open(opts Options) (*Store, error) {
	var badgerOpts badger.Options

	if opts.InMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(opts.Directory, 0755); err != nil {
			return nil, err
		}
		badgerOpts = badger.DefaultOptions(opts.Directory)
	}

	// Disable badger's own logging unless explicitly enabled
	if !opts.Logger {
		badgerOpts = badgerOpts.WithLogger(nil)
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Get retrieves a value from the store
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrMiss
			}
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set stores a value in the store
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
