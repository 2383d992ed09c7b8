// Package store holds the process-wide in-memory tables backing all
// entities. There is no database engine behind it: uniqueness and
// referential integrity are enforced by the repositories layered on top.
//
// Single-record operations on a table are serialized by the table's lock.
// Sequences spanning tables (check user exists, then insert session) are
// NOT atomic; a parent can disappear between the check and the insert under
// concurrent load. That race is accepted — callers must not assume
// cross-table transactions.
package store

import (
	"sync"

	"github.com/beatforge/backbeat/internal/errs"
	"github.com/beatforge/backbeat/internal/model"
)

// Table is a mutex-guarded map of records keyed by string, preserving
// insertion order for List. The zero value is not usable; use NewTable.
type Table[V any] struct {
	mu    sync.RWMutex
	recs  map[string]V
	order []string
}

// NewTable constructs an empty table.
func NewTable[V any]() *Table[V] {
	return &Table[V]{recs: make(map[string]V)}
}

// Get returns the record under key, if present.
func (t *Table[V]) Get(key string) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.recs[key]
	return v, ok
}

// List returns all records in insertion order. The slice is a copy; the
// ordering is a convenience, not a contract.
func (t *Table[V]) List() []V {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]V, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, t.recs[k])
	}
	return out
}

// Insert stores a new record. Returns ErrConflict if the key is taken.
func (t *Table[V]) Insert(key string, v V) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.recs[key]; ok {
		return errs.ErrConflict
	}
	t.recs[key] = v
	t.order = append(t.order, key)
	return nil
}

// Update applies fn to the record under key and stores the result.
// Returns ErrNotFound if the key is absent.
func (t *Table[V]) Update(key string, fn func(*V)) (V, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.recs[key]
	if !ok {
		var zero V
		return zero, errs.ErrNotFound
	}
	fn(&v)
	t.recs[key] = v
	return v, nil
}

// Delete removes the record under key. Returns ErrNotFound if absent.
func (t *Table[V]) Delete(key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.recs[key]; !ok {
		return errs.ErrNotFound
	}
	delete(t.recs, key)
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

// Find scans in insertion order and returns the first record matching pred.
func (t *Table[V]) Find(pred func(V) bool) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, k := range t.order {
		if v := t.recs[k]; pred(v) {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// Len returns the current record count.
func (t *Table[V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.recs)
}

// Store aggregates one table per entity. It is constructed once at process
// start and injected into every repository; all state is lost on restart.
type Store struct {
	Users        *Table[model.User]
	Songs        *Table[model.Song]
	Entitlements *Table[model.Entitlement] // keyed by model.EntitlementKey
	Sessions     *Table[model.GameplaySession]
	Performances *Table[model.PerformanceMetric] // keyed by session id
	Purchases    *Table[model.Purchase]
	Admins       *Table[model.Admin]
}

// New constructs an empty store.
func New() *Store {
	return &Store{
		Users:        NewTable[model.User](),
		Songs:        NewTable[model.Song](),
		Entitlements: NewTable[model.Entitlement](),
		Sessions:     NewTable[model.GameplaySession](),
		Performances: NewTable[model.PerformanceMetric](),
		Purchases:    NewTable[model.Purchase](),
		Admins:       NewTable[model.Admin](),
	}
}
