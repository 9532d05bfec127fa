package source

import "sync"

// StringID is a compact handle for an interned raw string — file paths and
// identifier text before they are promoted to a kind-specific id such as
// ir.NameId (see package intern).
type StringID uint32

// NoStringID marks the absence of an interned string.
const NoStringID StringID = 0

// Interner is a bijective string <-> StringID table. Intern is idempotent:
// interning the same string twice returns the same id (spec §8 round-trip
// property). Safe for concurrent use, though the front-end itself is
// single-threaded (spec §5).
type Interner struct {
	mu    sync.RWMutex
	byID  []string
	index map[string]StringID
}

// NewInterner creates an interner with NoStringID pre-bound to "".
func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": NoStringID},
	}
}

// Intern returns the id for s, allocating one if s hasn't been seen before.
func (i *Interner) Intern(s string) StringID {
	i.mu.RLock()
	if id, ok := i.index[s]; ok {
		i.mu.RUnlock()
		return id
	}
	i.mu.RUnlock()

	cpy := string([]byte(s)) // own copy, independent of caller's buffer

	i.mu.Lock()
	defer i.mu.Unlock()
	if id, ok := i.index[cpy]; ok {
		return id
	}
	id := StringID(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

// Lookup recovers the original string for id.
func (i *Interner) Lookup(id StringID) (string, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(i.byID) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup recovers the original string for id, panicking if it is invalid.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("source: invalid StringID")
	}
	return s
}

// Len returns the number of interned strings, including the NoStringID slot.
func (i *Interner) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.byID)
}
