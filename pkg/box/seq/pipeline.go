package seq

// Pipeline steps are eager: each computes a fresh backing slice at the
// call site and returns a new sequence with its cursor at 0. The
// receiver's backing slice and cursor are never touched.

func (s *Sequence[T]) Filter(pred func(T) bool) *Sequence[T] {
	items := make([]T, 0, len(s.items))
	for _, v := range s.items {
		if pred(v) {
			items = append(items, v)
		}
	}
	return &Sequence[T]{items: items}
}

// Skip drops the first n items; negative n drops nothing, oversized n
// drops everything.
func (s *Sequence[T]) Skip(n int) *Sequence[T] {
	if n < 0 {
		n = 0
	}
	if n > len(s.items) {
		n = len(s.items)
	}
	items := make([]T, len(s.items)-n)
	copy(items, s.items[n:])
	return &Sequence[T]{items: items}
}

// Take keeps the first n items; negative n keeps nothing, oversized n
// keeps everything.
func (s *Sequence[T]) Take(n int) *Sequence[T] {
	if n < 0 {
		n = 0
	}
	if n > len(s.items) {
		n = len(s.items)
	}
	items := make([]T, n)
	copy(items, s.items[:n])
	return &Sequence[T]{items: items}
}

// SkipWhile drops items from the front while pred holds, keeping
// everything from the first failing item on. Exhausting the sequence
// stops the scan.
func (s *Sequence[T]) SkipWhile(pred func(T) bool) *Sequence[T] {
	i := 0
	for i < len(s.items) && pred(s.items[i]) {
		i++
	}
	return s.Skip(i)
}

// TakeWhile keeps items from the front while pred holds, stopping at
// the first failing item. Exhausting the sequence stops the scan.
func (s *Sequence[T]) TakeWhile(pred func(T) bool) *Sequence[T] {
	i := 0
	for i < len(s.items) && pred(s.items[i]) {
		i++
	}
	return s.Take(i)
}

// Chain appends other's items after the receiver's.
func (s *Sequence[T]) Chain(other *Sequence[T]) *Sequence[T] {
	items := make([]T, 0, len(s.items)+len(other.items))
	items = append(items, s.items...)
	items = append(items, other.items...)
	return &Sequence[T]{items: items}
}

// Map transforms every item into a new sequence.
func Map[In any, Out any](s *Sequence[In], fn func(In) Out) *Sequence[Out] {
	items := make([]Out, len(s.items))
	for i, v := range s.items {
		items[i] = fn(v)
	}
	return &Sequence[Out]{items: items}
}

// Enumerate pairs every item with its position.
func Enumerate[T any](s *Sequence[T]) *Sequence[Pair[int, T]] {
	items := make([]Pair[int, T], len(s.items))
	for i, v := range s.items {
		items[i] = Pair[int, T]{First: i, Second: v}
	}
	return &Sequence[Pair[int, T]]{items: items}
}

// Zip pairs the two sequences index-wise up to the shorter length. It
// never panics.
func Zip[A any, B any](a *Sequence[A], b *Sequence[B]) *Sequence[Pair[A, B]] {
	n := min(len(a.items), len(b.items))
	items := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		items[i] = Pair[A, B]{First: a.items[i], Second: b.items[i]}
	}
	return &Sequence[Pair[A, B]]{items: items}
}

// ZipWith combines the two sequences index-wise up to the shorter
// length into a new sequence.
func ZipWith[A any, B any, Out any](a *Sequence[A], b *Sequence[B],
	combine func(A, B) Out) *Sequence[Out] {

	n := min(len(a.items), len(b.items))
	items := make([]Out, n)
	for i := 0; i < n; i++ {
		items[i] = combine(a.items[i], b.items[i])
	}
	return &Sequence[Out]{items: items}
}
