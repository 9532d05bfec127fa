package diag

import "sort"

// Bag accumulates diagnostics for a single resolver run (spec §4.2: "the
// sink is local to a resolver run"). Errors never abort accumulation — the
// policy throughout C5-C9 is to keep going and report everything found in
// one pass (spec §7).
type Bag struct {
	items []Diagnostic
}

// NewBag creates an empty diagnostic sink.
func NewBag() *Bag { return &Bag{} }

// Add appends a diagnostic.
func (b *Bag) Add(d Diagnostic) { b.items = append(b.items, d) }

// HasErrors reports whether any diagnostic has SevError severity — the
// condition under which a query must return Err (spec §4.4, §7).
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == SevError {
			return true
		}
	}
	return false
}

// Len returns the number of accumulated diagnostics.
func (b *Bag) Len() int { return len(b.items) }

// Items returns the accumulated diagnostics. Callers must not mutate the
// returned slice.
func (b *Bag) Items() []Diagnostic { return b.items }

// Append merges another bag's diagnostics into this one, preserving order.
func (b *Bag) Append(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by file, start, end, then severity (errors
// first) for deterministic, stable rendering (spec §5 ordering guarantee).
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		return di.Severity > dj.Severity
	})
}
