package query_test

import (
	"testing"

	"toxc/internal/query"
)

func TestGetMemoizesSecondCall(t *testing.T) {
	e := query.New()
	calls := 0
	compute := func() int {
		calls++
		return 42
	}
	key := query.Of1(query.Lower, uint32(1))

	if got := query.Get(e, key, compute); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	if got := query.Get(e, key, compute); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	if calls != 1 {
		t.Fatalf("expected compute to run once, ran %d times", calls)
	}
	if s := e.Stats(); s.Hits != 1 || s.Misses != 1 {
		t.Fatalf("expected 1 hit, 1 miss, got %+v", s)
	}
}

func TestInvalidateForcesRecompute(t *testing.T) {
	e := query.New()
	calls := 0
	key := query.Of1(query.Lower, uint32(1))
	compute := func() int { calls++; return calls }

	query.Get(e, key, compute)
	e.Invalidate(key)
	query.Get(e, key, compute)

	if calls != 2 {
		t.Fatalf("expected recompute after invalidate, got %d calls", calls)
	}
}

func TestInvalidatePropagatesToDependents(t *testing.T) {
	e := query.New()
	inner := query.Of1(query.Lower, uint32(1))
	outer := query.Of1(query.ResolveSourceFile, uint32(1))

	innerCalls, outerCalls := 0, 0
	computeInner := func() int { innerCalls++; return innerCalls }
	computeOuter := func() int {
		outerCalls++
		return query.Get(e, inner, computeInner)
	}

	query.Get(e, outer, computeOuter)
	query.Get(e, outer, computeOuter)
	if outerCalls != 1 {
		t.Fatalf("expected outer cached, ran %d times", outerCalls)
	}

	e.Invalidate(inner)
	if e.Has(outer) {
		t.Fatalf("expected invalidating inner to also evict outer")
	}

	query.Get(e, outer, computeOuter)
	if outerCalls != 2 {
		t.Fatalf("expected outer to recompute once inner was invalidated, ran %d times", outerCalls)
	}
	if innerCalls != 2 {
		t.Fatalf("expected inner to recompute too, ran %d times", innerCalls)
	}
}

func TestReentrantGetPanicsWithCycle(t *testing.T) {
	e := query.New()
	key := query.Of1(query.Lower, uint32(7))

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic for re-entrant evaluation")
		}
		if _, ok := r.(query.ErrQueryCycle); !ok {
			t.Fatalf("expected ErrQueryCycle, got %T: %v", r, r)
		}
	}()

	query.Get(e, key, func() int {
		return query.Get(e, key, func() int { return 1 })
	})
}

func TestOf2DistinguishesFromOf1WithSameA(t *testing.T) {
	a := query.Of1(query.Lower, uint32(1))
	b := query.Of2(query.LowerFunction, uint32(1), uint32(0))
	if a == b {
		t.Fatalf("expected Of1 and Of2 keys over the same A to differ in kind")
	}
}
