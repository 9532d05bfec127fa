package intern_test

import (
	"testing"

	"toxc/internal/intern"
)

type nameID uint32

func TestInternIsIdempotent(t *testing.T) {
	tbl := intern.New[string, nameID]()
	a := tbl.Intern("foo")
	b := tbl.Intern("foo")
	if a != b {
		t.Fatalf("expected repeated intern of the same key to return the same id, got %d and %d", a, b)
	}
}

func TestInternDistinctKeysGetDistinctIds(t *testing.T) {
	tbl := intern.New[string, nameID]()
	a := tbl.Intern("foo")
	b := tbl.Intern("bar")
	if a == b {
		t.Fatalf("expected distinct keys to get distinct ids")
	}
}

func TestLookupRecoversKey(t *testing.T) {
	tbl := intern.New[string, nameID]()
	id := tbl.Intern("hello")
	got, ok := tbl.Lookup(id)
	if !ok || got != "hello" {
		t.Fatalf("expected lookup to recover %q, got %q (ok=%v)", "hello", got, ok)
	}
}

func TestZeroIdIsReservedAndAbsent(t *testing.T) {
	tbl := intern.New[string, nameID]()
	if tbl.Intern("x") == 0 {
		t.Fatalf("expected id zero to be reserved, never returned by Intern")
	}
	if _, ok := tbl.Lookup(0); !ok {
		t.Fatalf("expected id zero to resolve to the zero key, not be rejected")
	}
}

func TestLookupOutOfRangeFails(t *testing.T) {
	tbl := intern.New[string, nameID]()
	if _, ok := tbl.Lookup(999); ok {
		t.Fatalf("expected lookup of an unallocated id to fail")
	}
}
