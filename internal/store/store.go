// Package store provides blob persistence for the taxonomy service.
//
// The taxonomy service owns its state in memory and persists each collection
// as a single JSON snapshot under a fixed key. The store never interprets the
// blobs it holds.
package store

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// Fixed blob keys. Each holds a full JSON snapshot of one collection.
const (
	KeyTags        = "taxonomy:tags"
	KeyCategories  = "taxonomy:categories"
	KeyAssignments = "taxonomy:assignments"
)

// BlobStore is the persistence collaborator contract.
// Load reports found=false for an absent key; decoding errors are returned
// so the caller can apply its malformed-data recovery policy.
type BlobStore interface {
	Load(key string, dest any) (found bool, err error)
	Save(key string, value any) error
	Close() error
}

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// New creates a new Store instance with the given database path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("taxonomy database opened", "path", path)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("closing taxonomy database")
	}
	return s.db.Close()
}

// Load retrieves and decodes the blob stored under key.
// Returns found=false when the key does not exist.
func (s *Store) Load(key string, dest any) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Save encodes value and stores it under key, replacing any prior blob.
func (s *Store) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal blob %q: %w", key, err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}
