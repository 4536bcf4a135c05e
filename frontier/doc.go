// Package frontier implements the open set of a best-first search: a
// priority queue with set semantics keyed by state.
//
// A Frontier holds at most one value per key. Values are ordered by a
// priority function supplied at construction, evaluated on demand, so the
// stored values never carry ordering state of their own.
//
// Complexity:
//
//   - Has, Get:      O(1)
//   - Add:           O(log N)
//   - PopSmallest:   O(log N)
//   - Replace:       O(log N) (indexed heap + heap.Fix, no rebuild)
//
// Ordering:
//
//	Lower priority first. Ties are broken by insertion sequence (earlier
//	first). Replace keeps the original sequence of the entry it overwrites,
//	so the order is fully deterministic for a given operation history.
//
// Errors:
//
//   - ErrNotFound:   Get on an absent key.
//   - ErrEmptyQueue: PopSmallest on an empty frontier.
package frontier
