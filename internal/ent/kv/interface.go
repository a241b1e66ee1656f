package kv

import "github.com/dgraph-io/badger/v2"

// KeyVal is a key-value store used as the publication ID index during
// the merge stage.
type KeyVal interface {
	// Open opens a key-value store.
	Open() error

	// Close closes a key-value store.
	Close() error

	// GetTransaction returns a transaction object.
	GetTransaction() (*badger.Txn, error)

	// GetValue returns the value for a key, or nil when the key is
	// absent. A missing key is not an error.
	GetValue(key []byte) ([]byte, error)
}
