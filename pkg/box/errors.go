package box

import "fmt"

// EmptyValueError reports an attempt to extract a value from a container
// that does not carry one: Unwrap/Expect on an absent option, or Unwrap
// on a failure result.
type EmptyValueError struct {
	Msg string
}

func (e *EmptyValueError) Error() string {
	return e.Msg
}

// InvalidStateError reports an operation called on the wrong variant,
// such as GetErr on a success result.
type InvalidStateError struct {
	Msg string
}

func (e *InvalidStateError) Error() string {
	return e.Msg
}

// IndexOutOfRangeError reports bounds-checked positional access outside
// [0, Length).
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Length)
}
