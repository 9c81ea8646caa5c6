package option

import (
	"github.com/ib-77/box3/pkg/box"
)

type Option[T any] struct {
	value   T
	present bool
}

func Present[T any](v T) Option[T] {
	return Option[T]{
		value:   v,
		present: true,
	}
}

func Absent[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsPresent() bool {
	return o.present
}

func (o Option[T]) IsAbsent() bool {
	return !o.present
}

// Unwrap panics with *box.EmptyValueError on the absent variant;
// callers are expected to check IsPresent first or use UnwrapOr.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic(&box.EmptyValueError{Msg: "unwrap called on absent option"})
	}
	return o.value
}

func (o Option[T]) UnwrapOr(def T) T {
	if !o.present {
		return def
	}
	return o.value
}

// UnwrapOrElse invokes fn only on the absent path.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if !o.present {
		return fn()
	}
	return o.value
}

// Expect is Unwrap with a caller-supplied failure message.
func (o Option[T]) Expect(msg string) T {
	if !o.present {
		panic(&box.EmptyValueError{Msg: msg})
	}
	return o.value
}

// Get never panics: it returns the zero value and false on the absent
// variant.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Filter returns the receiver if it is present and pred accepts the
// value, otherwise the absent variant.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.present && pred(o.value) {
		return o
	}
	return Absent[T]()
}
