// Package seq provides Sequence[T], an eager pipeline over an ordered
// collection plus a cursor-based pull interface for manual iteration.
// Every transformation computes a fresh backing slice immediately and
// leaves the receiver untouched; only the cursor operations mutate, so
// a Sequence is not safe for concurrent use without external locking.
//
// Key operations:
// - From/Range: construct from explicit items or a numeric range
// - HasNext/Next/Peek/PeekAt/Reset: cursor-based pull access
// - Filter/Skip/Take/SkipWhile/TakeWhile/Chain: same-type pipeline steps
// - Map/Enumerate/Zip/ZipWith: type-changing pipeline steps
// - Collect/Reduce/Count/CountIf/Any/All/ForEach: terminal operations
// - CollectWith/CollectZip/CollectZipWith: terminal collection variants
//
// All pairing operations stop at the shorter of their two inputs.
package seq
