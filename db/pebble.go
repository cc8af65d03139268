package db

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/pebble"

	"github.com/AnastasiiaStetsiuk/train-office/pkg/logger"
)

// Compile-time interface check.
var _ Store = (*PebbleDB)(nil)

// PebbleDB is a production [Store] backed by Pebble. It is safe for
// concurrent use — Pebble handles its own internal synchronisation.
//
// Each logical table maps to a single Pebble key holding the table's
// serialized collection, mirroring the one-blob-per-table layout of the
// registry.
type PebbleDB struct {
	db *pebble.DB

	writeOpts *pebble.WriteOptions
	path      string
	logger    logger.Logger

	// closed + mu guard against use-after-close. Individual operations
	// take an RLock (allowing full concurrency). Close takes the write
	// lock, draining in-flight operations before teardown.
	closed atomic.Bool
	mu     sync.RWMutex
}

// Open creates or opens a Pebble database at path with the given options.
// The caller must call Close when done to release all resources.
func Open(path string, opts ...Option) (*PebbleDB, error) {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(cfg)
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}
	log = log.With("component", "db")

	cache := pebble.NewCache(cfg.CacheSize)
	defer cache.Unref()

	pOpts := &pebble.Options{
		Cache:        cache,
		MemTableSize: cfg.MemTableSize,
		MaxOpenFiles: cfg.MaxOpenFiles,
	}

	pdb, err := pebble.Open(path, pOpts)
	if err != nil {
		return nil, fmt.Errorf("db: failed to open %s: %w", path, err)
	}

	writeOpts := pebble.NoSync
	if cfg.SyncWrites {
		writeOpts = pebble.Sync
	}

	p := &PebbleDB{
		db:        pdb,
		writeOpts: writeOpts,
		path:      path,
		logger:    log,
	}

	log.Info("database opened", "path", path, "sync_writes", cfg.SyncWrites)
	return p, nil
}

// ---------------------------------------------------------------------------
// Store implementation
// ---------------------------------------------------------------------------

func (p *PebbleDB) Get(table string) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed.Load() {
		return nil, ErrClosed
	}
	if table == "" {
		return nil, ErrEmptyTable
	}

	val, closer, err := p.db.Get([]byte(table))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("db: get failed: %w", err)
	}
	defer closer.Close()

	// Copy — the returned slice is only valid until closer.Close().
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (p *PebbleDB) Put(table string, value []byte) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed.Load() {
		return ErrClosed
	}
	if table == "" {
		return ErrEmptyTable
	}

	if err := p.db.Set([]byte(table), value, p.writeOpts); err != nil {
		return fmt.Errorf("db: put failed: %w", err)
	}
	return nil
}

func (p *PebbleDB) Delete(table string) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed.Load() {
		return ErrClosed
	}
	if table == "" {
		return ErrEmptyTable
	}

	if err := p.db.Delete([]byte(table), p.writeOpts); err != nil {
		return fmt.Errorf("db: delete failed: %w", err)
	}
	return nil
}

func (p *PebbleDB) Has(table string) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed.Load() {
		return false, ErrClosed
	}
	if table == "" {
		return false, ErrEmptyTable
	}

	_, closer, err := p.db.Get([]byte(table))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("db: has failed: %w", err)
	}
	closer.Close()
	return true, nil
}

func (p *PebbleDB) Flush() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed.Load() {
		return ErrClosed
	}

	if err := p.db.Flush(); err != nil {
		return fmt.Errorf("db: flush failed: %w", err)
	}
	return nil
}

// Close performs a graceful shutdown. It acquires an exclusive lock so
// all in-flight operations complete before teardown.
func (p *PebbleDB) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed.Load() {
		return ErrClosed
	}
	p.closed.Store(true)

	p.logger.Info("closing database", "path", p.path)

	if err := p.db.Flush(); err != nil {
		p.logger.Error("flush failed during shutdown", "error", err)
	}

	if err := p.db.Close(); err != nil {
		return fmt.Errorf("db: close failed: %w", err)
	}

	p.logger.Info("database closed", "path", p.path)
	return nil
}
