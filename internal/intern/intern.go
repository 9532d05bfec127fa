// Package intern implements C1, the Interner / Id Allocator: a bijective
// mapping from structural keys to compact opaque ids, one table per id
// kind. It generalizes the teacher's source.Interner (string -> StringID)
// with a Go generic so NameId, TypeId, LiteralId, and the rest of ir's id
// zoo can each get their own collision-free table while sharing one
// implementation.
package intern

import "sync"

// ID is the constraint every interned id type satisfies: a distinct named
// uint32, so NameId and TypeId are never interchangeable at compile time
// even though both are backed by this package (spec §3: "a NameId cannot
// be confused with a TypeId").
type ID interface {
	~uint32
}

// Table interns comparable keys of type K into ids of type V. Intern is
// idempotent: the same key always yields the same id (spec §8 round-trip
// property). Lookup recovers the original key.
type Table[K comparable, V ID] struct {
	mu    sync.Mutex
	byID  []K
	index map[K]V
}

// New creates an empty table. Id zero is reserved for K's zero value
// (Intern returns it for that key only) so zero-valued ids read as
// "absent" at call sites, matching ir's NoXxxID convention.
func New[K comparable, V ID]() *Table[K, V] {
	var zero K
	return &Table[K, V]{
		byID:  []K{zero},
		index: map[K]V{zero: 0},
	}
}

// Intern returns the id for key, allocating a new one on first sight.
func (t *Table[K, V]) Intern(key K) V {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.index[key]; ok {
		return id
	}
	id := V(len(t.byID))
	t.byID = append(t.byID, key)
	t.index[key] = id
	return id
}

// Lookup recovers the key for id.
func (t *Table[K, V]) Lookup(id V) (K, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(id) < 0 || int(id) >= len(t.byID) {
		var zero K
		return zero, false
	}
	return t.byID[id], true
}

// MustLookup recovers the key for id, panicking if id was never interned.
func (t *Table[K, V]) MustLookup(id V) K {
	k, ok := t.Lookup(id)
	if !ok {
		panic("intern: invalid id")
	}
	return k
}

// Len reports how many distinct keys are interned, including the sentinel.
func (t *Table[K, V]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.byID)
}
