package result

// Map transforms the success value to a new Result; on failure the
// original error passes through unchanged and fn is not invoked.
func Map[In any, Out any, E any](r Result[In, E], fn func(In) Out) Result[Out, E] {
	if !r.ok {
		return Failure[Out, E](r.err)
	}
	return Success[Out, E](fn(r.value))
}

// FlatMap composes result-producing computations, short-circuiting on
// the first failure: fn's result is returned directly on success.
func FlatMap[In any, Out any, E any](r Result[In, E], fn func(In) Result[Out, E]) Result[Out, E] {
	if !r.ok {
		return Failure[Out, E](r.err)
	}
	return fn(r.value)
}

// AndThen is FlatMap under its other common name.
func AndThen[In any, Out any, E any](r Result[In, E], fn func(In) Result[Out, E]) Result[Out, E] {
	return FlatMap(r, fn)
}

// Equal reports whether both results hold the same variant with equal
// payloads. Instance metadata (id, creation time) is ignored.
func Equal[T comparable, E comparable](a, b Result[T, E]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return a.value == b.value
	}
	return a.err == b.err
}

// Match invokes exactly one of the two handlers and returns its result.
func Match[T any, E any, Out any](r Result[T, E],
	onOk func(v T) Out,
	onErr func(err E) Out) Out {

	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}
