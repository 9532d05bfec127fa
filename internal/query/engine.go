// Package query implements C4, the incremental memoization layer: every
// pipeline step the driver (C10) runs is a query identified by a Key,
// cached until one of its (transitive) inputs is invalidated. There is no
// background recomputation — a stale entry recomputes lazily the next
// time something asks for it (spec §4.4, §5).
package query

import "fmt"

// ErrQueryCycle is the fatal error raised when a query re-enters itself
// while still in flight (spec §5: "must surface as a fatal error rather
// than looping"). Engine.Get panics with this; nothing in the pipeline
// recovers it.
type ErrQueryCycle struct {
	Key Key
}

func (e ErrQueryCycle) Error() string {
	return fmt.Sprintf("query: cycle detected re-entering %s%v", e.Key.Kind, [2]uint64{e.Key.A, e.Key.B})
}

type slot struct {
	has   bool
	value any
}

// Engine is the query cache plus its dependency graph. It is not
// safe for concurrent use — the front-end is single-threaded by design
// (spec §5 Non-goal: "no parallel query execution").
type Engine struct {
	slots Stats
	data  map[Key]*slot
	stack []Key
	// dependents[dep] is the set of keys whose computation (directly)
	// called Get(dep, ...) — the reverse-dependency edges Invalidate
	// walks to find everything transitively stale (spec §4.4).
	dependents map[Key]map[Key]struct{}
}

// Stats counts query engine activity, useful for the "second call doesn't
// recompute" instrumentation spec §8 asks for.
type Stats struct {
	Hits   int
	Misses int
}

// New creates an empty Engine.
func New() *Engine {
	return &Engine{
		data:       make(map[Key]*slot),
		dependents: make(map[Key]map[Key]struct{}),
	}
}

// Stats returns a snapshot of hit/miss counters.
func (e *Engine) Stats() Stats { return e.slots }

// Get looks up key's cached value, recomputing via compute on a miss.
// Re-entrant evaluation of an in-flight key panics with ErrQueryCycle
// (spec §5). Get must be called with T matching the type originally
// stored for key — the engine itself is untyped (a single cache shared by
// every query kind), so a key reused across two different T instantiations
// is a caller bug, not something Get can detect.
func Get[T any](e *Engine, key Key, compute func() T) T {
	if s, ok := e.data[key]; ok && s.has {
		e.slots.Hits++
		e.linkDependency(key)
		return s.value.(T) //nolint:errcheck // see doc comment: caller contract
	}

	for _, inFlight := range e.stack {
		if inFlight == key {
			panic(ErrQueryCycle{Key: key})
		}
	}

	e.slots.Misses++
	e.stack = append(e.stack, key)
	value := compute()
	e.stack = e.stack[:len(e.stack)-1]

	e.data[key] = &slot{has: true, value: value}
	e.linkDependency(key)
	return value
}

// linkDependency records that the query currently on top of the stack (if
// any) depends on dep, so invalidating dep also invalidates that caller.
func (e *Engine) linkDependency(dep Key) {
	if len(e.stack) == 0 {
		return
	}
	caller := e.stack[len(e.stack)-1]
	if caller == dep {
		return
	}
	set, ok := e.dependents[dep]
	if !ok {
		set = make(map[Key]struct{})
		e.dependents[dep] = set
	}
	set[caller] = struct{}{}
}

// Invalidate evicts key's cached value and transitively evicts every
// query that (directly or indirectly) depended on it, so they recompute
// on next Get (spec §4.4: "all transitively dependent cache entries are
// invalidated").
func (e *Engine) Invalidate(key Key) {
	if _, ok := e.data[key]; !ok {
		if _, ok2 := e.dependents[key]; !ok2 {
			return
		}
	}
	delete(e.data, key)
	deps := e.dependents[key]
	delete(e.dependents, key)
	for dependent := range deps {
		e.Invalidate(dependent)
	}
}

// Has reports whether key currently has a cached value, without
// triggering computation or recording a dependency edge. Primarily for
// tests asserting cache behavior.
func (e *Engine) Has(key Key) bool {
	s, ok := e.data[key]
	return ok && s.has
}
