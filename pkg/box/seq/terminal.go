package seq

// Collect copies the items into a fresh slice.
func (s *Sequence[T]) Collect() []T {
	items := make([]T, len(s.items))
	copy(items, s.items)
	return items
}

// ForEach applies fn to every item in order.
func (s *Sequence[T]) ForEach(fn func(T)) {
	for _, v := range s.items {
		fn(v)
	}
}

func (s *Sequence[T]) Count() int {
	return len(s.items)
}

// CountIf counts the items pred accepts.
func (s *Sequence[T]) CountIf(pred func(T) bool) int {
	n := 0
	for _, v := range s.items {
		if pred(v) {
			n++
		}
	}
	return n
}

// Any reports whether pred accepts at least one item; false on empty.
func (s *Sequence[T]) Any(pred func(T) bool) bool {
	for _, v := range s.items {
		if pred(v) {
			return true
		}
	}
	return false
}

// All reports whether pred accepts every item; true on empty.
func (s *Sequence[T]) All(pred func(T) bool) bool {
	for _, v := range s.items {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Reduce left-folds the items onto seed.
func Reduce[T any, Acc any](s *Sequence[T], seed Acc, fn func(Acc, T) Acc) Acc {
	acc := seed
	for _, v := range s.items {
		acc = fn(acc, v)
	}
	return acc
}

// CollectWith maps every item through fn into a fresh slice.
func CollectWith[In any, Out any](s *Sequence[In], fn func(In) Out) []Out {
	items := make([]Out, len(s.items))
	for i, v := range s.items {
		items[i] = fn(v)
	}
	return items
}

// CollectZip pairs the two sequences index-wise up to the shorter
// length into a fresh slice.
func CollectZip[A any, B any](a *Sequence[A], b *Sequence[B]) []Pair[A, B] {
	return Zip(a, b).Collect()
}

// CollectZipWith combines the two sequences index-wise up to the
// shorter length into a fresh slice.
func CollectZipWith[A any, B any, Out any](a *Sequence[A], b *Sequence[B],
	combine func(A, B) Out) []Out {

	return ZipWith(a, b, combine).Collect()
}
