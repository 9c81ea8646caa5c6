package seq

import (
	"testing"

	"github.com/ib-77/box3/pkg/box"
)

func expectBoundsPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with *box.IndexOutOfRangeError, got none")
		}
		if _, ok := r.(*box.IndexOutOfRangeError); !ok {
			t.Fatalf("expected *box.IndexOutOfRangeError, got %T: %v", r, r)
		}
	}()
	fn()
}

func TestFrom_CopiesInput(t *testing.T) {
	t.Parallel()
	src := []int{1, 2, 3}
	s := From(src...)
	src[0] = 99
	if got := s.Collect(); got[0] != 1 {
		t.Fatalf("expected backing collection to be independent of input, got %v", got)
	}
}

func TestRange_TwoBounds(t *testing.T) {
	t.Parallel()
	got := Range(0, 5).Collect()
	want := []int{0, 1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRange_SingleBoundIsEnd(t *testing.T) {
	t.Parallel()
	got := Range(5).Collect()
	if len(got) != 5 || got[0] != 0 || got[4] != 4 {
		t.Fatalf("expected [0 1 2 3 4], got %v", got)
	}
}

func TestRange_EmptyAndReversed(t *testing.T) {
	t.Parallel()
	if n := Range(3, 3).Len(); n != 0 {
		t.Fatalf("expected empty range, got %d items", n)
	}
	if n := Range(5, 2).Len(); n != 0 {
		t.Fatalf("expected reversed bounds to yield empty, got %d items", n)
	}
}

func TestCursor_Walk(t *testing.T) {
	t.Parallel()
	s := From("a", "b")

	if !s.HasNext() {
		t.Fatalf("expected HasNext at start")
	}
	if v := s.Peek(); v != "a" {
		t.Fatalf("expected peek a, got %q", v)
	}
	if v := s.Next(); v != "a" {
		t.Fatalf("expected next a, got %q", v)
	}
	if v := s.Next(); v != "b" {
		t.Fatalf("expected next b, got %q", v)
	}
	if s.HasNext() {
		t.Fatalf("expected cursor exhausted after Len() items")
	}

	s.Reset()
	if v := s.Next(); v != "a" {
		t.Fatalf("expected reset to rewind, got %q", v)
	}
}

func TestNext_PastEndPanics(t *testing.T) {
	t.Parallel()
	s := From(1)
	s.Next()
	expectBoundsPanic(t, func() { s.Next() })
}

func TestPeek_PastEndPanics(t *testing.T) {
	t.Parallel()
	s := From[int]()
	expectBoundsPanic(t, func() { s.Peek() })
}

func TestPeekAt(t *testing.T) {
	t.Parallel()
	s := From(10, 20, 30)
	if v := s.PeekAt(2); v != 30 {
		t.Fatalf("expected 30, got %v", v)
	}
	expectBoundsPanic(t, func() { s.PeekAt(3) })
	expectBoundsPanic(t, func() { s.PeekAt(-1) })
}

func TestPeekAt_IgnoresCursor(t *testing.T) {
	t.Parallel()
	s := From(10, 20)
	s.Next()
	if v := s.PeekAt(0); v != 10 {
		t.Fatalf("expected positional access independent of cursor, got %v", v)
	}
}
