// Package result provides Result[T, E], a closed two-variant container
// for the outcome of a fallible computation: a success value of T or a
// failure value of E. The variant is fixed at construction; operations
// produce new instances instead of mutating existing ones.
//
// Key operations:
// - Success/Failure: construct the two variants
// - IsOk/IsErr: discriminant checks
// - Unwrap/UnwrapOr/UnwrapOrElse/Expect: extract the success value
// - GetErr: extract the failure value (check IsErr first)
// - Map/FlatMap/AndThen: compose success-producing computations,
//   short-circuiting on the first failure
// - Match: collapse to a concrete value via variant handlers
//
// Each instance is stamped with a uuid id and a UTC creation time;
// Equal ignores both.
package result
