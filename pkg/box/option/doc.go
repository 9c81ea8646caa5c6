// Package option provides Option[T], a closed two-variant container for
// a value that may or may not exist. The variant is fixed at
// construction and instances are never mutated.
//
// Key operations:
// - Present/Absent: construct the two variants
// - IsPresent/IsAbsent: discriminant checks
// - Unwrap/UnwrapOr/UnwrapOrElse/Expect/Get: extract the value
// - Filter: keep a present value only if it passes a predicate
// - Map/FlatMap/AndThen: transform into a new Option, skipping absent
// - Flatten: collapse Option[Option[T]] one level
// - Match: collapse to a concrete value via variant handlers
// - MarshalJSON/UnmarshalJSON: tagged external representation
package option
