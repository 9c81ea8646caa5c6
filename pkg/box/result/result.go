package result

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/box3/pkg/box"
)

type Result[T any, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	ok        bool
}

func Success[T any, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T any, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Unwrap panics with *box.EmptyValueError on the failure variant;
// callers are expected to check IsOk first or use UnwrapOr.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&box.EmptyValueError{Msg: "unwrap called on failure result"})
	}
	return r.value
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// UnwrapOrElse invokes fn only on the failure path.
func (r Result[T, E]) UnwrapOrElse(fn func() T) T {
	if !r.ok {
		return fn()
	}
	return r.value
}

// Expect is Unwrap with a caller-supplied failure message.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(&box.EmptyValueError{Msg: msg})
	}
	return r.value
}

// GetErr panics with *box.InvalidStateError on the success variant;
// check IsErr before calling.
func (r Result[T, E]) GetErr() E {
	if r.ok {
		panic(&box.InvalidStateError{Msg: "get-err called on success result"})
	}
	return r.err
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// CreatedAt is the construction time (UTC).
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}
