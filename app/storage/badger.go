package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// BadgerOptions configures the on-disk snapshot database.
type BadgerOptions struct {
	// Directory to store the database files
	Dir string

	// InMemory creates an in-memory database (for testing)
	InMemory bool

	// SyncWrites flushes every write to disk before returning.
	// Snapshots are small and survive reloads, so this defaults on.
	SyncWrites bool
}

func DefaultBadgerOptions(dir string) BadgerOptions {
	return BadgerOptions{
		Dir:        dir,
		InMemory:   false,
		SyncWrites: true,
	}
}

// Badger implements Store on BadgerDB, giving the persisted stores a
// durable local home between runs.
type Badger struct {
	db *badger.DB
}

func NewBadger(opts BadgerOptions) (*Badger, error) {
	badgerOpts := badger.DefaultOptions(opts.Dir).
		WithInMemory(opts.InMemory).
		WithSyncWrites(opts.SyncWrites).
		WithLogger(nil)
	if opts.InMemory {
		badgerOpts = badgerOpts.WithDir("").WithValueDir("")
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}
	return &Badger{db: db}, nil
}

func (b *Badger) Load(key string, into interface{}) (bool, error) {
	var raw []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read snapshot %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return false, fmt.Errorf("failed to decode snapshot %q: %w", key, err)
	}
	return true, nil
}

func (b *Badger) Save(key string, snapshot interface{}) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %q: %w", key, err)
	}
	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	})
	if err != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", key, err)
	}
	return nil
}

func (b *Badger) Delete(key string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete snapshot %q: %w", key, err)
	}
	return nil
}

func (b *Badger) Close() error {
	return b.db.Close()
}
