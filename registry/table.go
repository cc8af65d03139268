package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/AnastasiiaStetsiuk/train-office/db"
	"github.com/AnastasiiaStetsiuk/train-office/pkg/logger"
)

// table is the shared repository core under every entity store: an
// ordered in-memory collection persisted wholesale as one JSON array
// under its table name.
type table[T row] struct {
	name string
	kv   db.Store
	log  logger.Logger
	recs []T
}

func newTable[T row](name string, kv db.Store, log logger.Logger) *table[T] {
	return &table[T]{
		name: name,
		kv:   kv,
		log:  log.With("table", name),
	}
}

// load reads the persisted collection. An absent key or a malformed blob
// both yield an empty collection: the store self-heals on the next
// persist rather than refusing to start.
func (t *table[T]) load() error {
	raw, err := t.kv.Get(t.name)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			t.recs = nil
			return nil
		}
		return fmt.Errorf("registry: loading %s: %w", t.name, err)
	}

	var recs []T
	if err := json.Unmarshal(raw, &recs); err != nil {
		t.log.Warn("discarding malformed table blob", "error", err)
		t.recs = nil
		return nil
	}

	t.recs = recs
	return nil
}

// persist writes the current collection verbatim — full overwrite, no
// diffing.
func (t *table[T]) persist() error {
	raw, err := json.Marshal(t.recs)
	if err != nil {
		return fmt.Errorf("registry: encoding %s: %w", t.name, err)
	}
	if err := t.kv.Put(t.name, raw); err != nil {
		return fmt.Errorf("registry: persisting %s: %w", t.name, err)
	}
	return nil
}

// nextID assigns identifiers as count+1, the rule the original datasets
// were written under. After a removal a new record can reuse a previous
// id; see DESIGN.md for why this is kept.
func (t *table[T]) nextID() int {
	return len(t.recs) + 1
}

// all returns a copy of the collection in insertion order.
func (t *table[T]) all() []T {
	out := make([]T, len(t.recs))
	copy(out, t.recs)
	return out
}

func (t *table[T]) find(id int) (T, bool) {
	for _, rec := range t.recs {
		if rec.rowID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) has(id int) bool {
	_, ok := t.find(id)
	return ok
}

// replace swaps the record with the given id for rec, keeping its
// position in the collection.
func (t *table[T]) replace(id int, rec T) {
	for i := range t.recs {
		if t.recs[i].rowID() == id {
			t.recs[i] = rec
			return
		}
	}
}

func (t *table[T]) delete(id int) {
	kept := t.recs[:0]
	for _, rec := range t.recs {
		if rec.rowID() != id {
			kept = append(kept, rec)
		}
	}
	t.recs = kept
}

// resolveID validates a raw id string in the original's fixed order:
// empty, then non-numeric, then unknown.
func (t *table[T]) resolveID(raw, msgEmpty, msgNaN string, msgMissing func(string) string) (int, error) {
	if raw == "" {
		return 0, failed(ErrMissingField, msgEmpty)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, failed(ErrInvalidFormat, msgNaN)
	}
	if !t.has(id) {
		return 0, failed(ErrNotFound, msgMissing(raw))
	}
	return id, nil
}
