package db

import (
	"github.com/AnastasiiaStetsiuk/train-office/pkg/logger"
)

// Config holds the tunable parameters for a [PebbleDB] instance.
// Use functional [Option] values with [Open] rather than constructing
// a Config directly.
type Config struct {
	// CacheSize is the shared block-cache capacity in bytes.
	CacheSize int64

	// MemTableSize is the size of a single memtable in bytes.
	MemTableSize uint64

	// MaxOpenFiles limits the number of open file descriptors Pebble
	// keeps open. Use 0 for unlimited.
	MaxOpenFiles int

	// SyncWrites controls whether each write is synced to stable
	// storage. The registry rewrites a whole table per mutation, so the
	// default is true: one fsync per user action is cheap at this scale
	// and matches the durability the UI promises.
	SyncWrites bool

	// Logger receives structured operational log messages.
	// If not set, the global logger.Default() is used.
	Logger logger.Logger
}

// DefaultConfig returns a Config with defaults tuned for the registry
// workload: tiny values, rare writes, point lookups only.
func DefaultConfig() *Config {
	return &Config{
		CacheSize:    8 << 20, // 8 MB
		MemTableSize: 4 << 20, // 4 MB
		MaxOpenFiles: 0,       // unlimited
		SyncWrites:   true,
	}
}

// Option is a functional option applied to [Config] during [Open].
type Option func(*Config)

// WithCacheSize sets the shared block-cache capacity in bytes.
func WithCacheSize(size int64) Option {
	return func(c *Config) { c.CacheSize = size }
}

// WithMemTableSize sets the memtable size in bytes.
func WithMemTableSize(size uint64) Option {
	return func(c *Config) { c.MemTableSize = size }
}

// WithMaxOpenFiles limits the number of open file descriptors.
// Use 0 for unlimited.
func WithMaxOpenFiles(n int) Option {
	return func(c *Config) { c.MaxOpenFiles = n }
}

// WithSyncWrites toggles per-write durability (fsync).
func WithSyncWrites(sync bool) Option {
	return func(c *Config) { c.SyncWrites = sync }
}

// WithLogger sets a custom logger for the database.
// If not set, the global logger.Default() is used.
func WithLogger(l logger.Logger) Option {
	return func(c *Config) { c.Logger = l }
}
