package option

// Map transforms the wrapped value to a new Option; fn is not invoked
// on the absent path.
func Map[In any, Out any](o Option[In], fn func(In) Out) Option[Out] {
	if o.IsAbsent() {
		return Absent[Out]()
	}
	return Present(fn(o.value))
}

// FlatMap composes option-producing functions without nesting: fn's
// result is returned directly on the present path.
func FlatMap[In any, Out any](o Option[In], fn func(In) Option[Out]) Option[Out] {
	if o.IsAbsent() {
		return Absent[Out]()
	}
	return fn(o.value)
}

// AndThen is FlatMap under its other common name.
func AndThen[In any, Out any](o Option[In], fn func(In) Option[Out]) Option[Out] {
	return FlatMap(o, fn)
}

// Flatten collapses one level of nesting. The signature restricts the
// receiver to Option[Option[T]], so there is no runtime cast to fail.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if o.IsAbsent() {
		return Absent[T]()
	}
	return o.value
}

// Equal reports whether both options are absent, or both present with
// equal values.
func Equal[T comparable](a, b Option[T]) bool {
	if a.present != b.present {
		return false
	}
	if !a.present {
		return true
	}
	return a.value == b.value
}

// Match invokes exactly one of the two handlers and returns its result.
func Match[T any, Out any](o Option[T],
	onPresent func(v T) Out,
	onAbsent func() Out) Out {

	if o.present {
		return onPresent(o.value)
	}
	return onAbsent()
}
