package seq

import (
	"github.com/ib-77/box3/pkg/box"
)

type Sequence[T any] struct {
	items  []T
	cursor int
}

// Pair is the cell produced by the zip and enumerate operations.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// From copies its arguments into a new sequence with the cursor at 0.
func From[T any](items ...T) *Sequence[T] {
	backing := make([]T, len(items))
	copy(backing, items)
	return &Sequence[T]{items: backing}
}

// Range builds a sequence over [start, end). With a single bound it is
// treated as end with start = 0. An empty range yields an empty
// sequence; any other arity is a programmer error.
func Range(bounds ...int) *Sequence[int] {
	var start, end int
	switch len(bounds) {
	case 1:
		end = bounds[0]
	case 2:
		start, end = bounds[0], bounds[1]
	default:
		panic("seq: Range takes one or two bounds")
	}

	if end < start {
		end = start
	}
	items := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, i)
	}
	return &Sequence[int]{items: items}
}

func (s *Sequence[T]) Len() int {
	return len(s.items)
}

func (s *Sequence[T]) HasNext() bool {
	return s.cursor < len(s.items)
}

// Next returns the item at the cursor and advances it. Past the end it
// panics with *box.IndexOutOfRangeError rather than returning an
// undefined sentinel.
func (s *Sequence[T]) Next() T {
	if s.cursor >= len(s.items) {
		panic(&box.IndexOutOfRangeError{Index: s.cursor, Length: len(s.items)})
	}
	v := s.items[s.cursor]
	s.cursor++
	return v
}

// Peek returns the item at the cursor without advancing it.
func (s *Sequence[T]) Peek() T {
	if s.cursor >= len(s.items) {
		panic(&box.IndexOutOfRangeError{Index: s.cursor, Length: len(s.items)})
	}
	return s.items[s.cursor]
}

// PeekAt returns the item at position i, independent of the cursor.
func (s *Sequence[T]) PeekAt(i int) T {
	if i < 0 || i >= len(s.items) {
		panic(&box.IndexOutOfRangeError{Index: i, Length: len(s.items)})
	}
	return s.items[i]
}

// Reset rewinds the cursor to 0.
func (s *Sequence[T]) Reset() {
	s.cursor = 0
}
