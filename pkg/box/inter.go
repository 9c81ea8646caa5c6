package box

// ValueProvider defines the extraction surface shared by both containers.
type ValueProvider[T any] interface {
	// Unwrap returns the wrapped value, panicking with *EmptyValueError
	// when the container carries none
	Unwrap() T
	// UnwrapOr returns the wrapped value or def
	UnwrapOr(def T) T
	// Expect is Unwrap with a caller-supplied failure message
	Expect(msg string) T
}

// WithAbsence is the contract of a present/absent container.
type WithAbsence[T any] interface {
	ValueProvider[T]
	// IsPresent returns true if a value is wrapped
	IsPresent() bool
	// IsAbsent returns true if no value is wrapped
	IsAbsent() bool
}

// WithFailure is the contract of a success/failure container.
type WithFailure[T any] interface {
	ValueProvider[T]
	// IsOk returns true if the computation succeeded
	IsOk() bool
	// IsErr returns true if the computation failed
	IsErr() bool
}
