// Package db provides the key-value persistence primitive behind the
// ticket registry: a durable mapping from a table name to one serialized
// blob (the full record collection of that table).
//
// The primary interface is [Store], satisfied by [PebbleDB] (production)
// and [MockStore] (testing). Create instances with [Open] or
// [NewMockStore] and inject them into consumers via constructor arguments.
package db

import (
	"errors"
	"io"
)

// Sentinel errors returned by Store implementations.
var (
	ErrClosed      = errors.New("db: database is closed")
	ErrKeyNotFound = errors.New("db: key not found")
	ErrEmptyTable  = errors.New("db: table name must not be empty")
)

// Store defines the contract for all storage operations.
// All methods are safe for concurrent use by multiple goroutines.
type Store interface {
	// Get retrieves the blob stored under the given table name.
	// Returns ErrKeyNotFound if nothing has been stored yet.
	Get(table string) ([]byte, error)

	// Put stores a blob under the given table name, replacing any
	// previous value wholesale.
	Put(table string, value []byte) error

	// Delete removes the blob stored under the given table name.
	// Deleting an absent table is not an error.
	Delete(table string) error

	// Has reports whether a blob exists under the given table name.
	Has(table string) (bool, error)

	// Flush forces all buffered writes to persistent storage.
	Flush() error

	// Close performs a graceful shutdown: flushes pending writes,
	// closes the underlying engine, and releases all resources.
	// After Close returns, every other method returns ErrClosed.
	io.Closer
}
