package frontier

import (
	"container/heap"
	"fmt"
)

// Frontier is a combined priority queue and set. Each key K maps to at
// most one value V; values are popped in ascending priority order.
//
// A Frontier is not safe for concurrent use.
type Frontier[K comparable, V any] struct {
	keyOf   func(V) K
	byKey   map[K]*entry[V]
	heap    entryHeap[V]
	nextSeq uint64
}

// New creates a Frontier. keyOf extracts the set key of a value and
// priority computes its ordering key; both must be non-nil.
// Initial items are added in order with Add semantics (later duplicates
// of a key are ignored).
func New[K comparable, V any](keyOf func(V) K, priority func(V) int, items ...V) *Frontier[K, V] {
	if keyOf == nil || priority == nil {
		panic("frontier: New requires non-nil keyOf and priority")
	}
	f := &Frontier[K, V]{
		keyOf: keyOf,
		byKey: make(map[K]*entry[V], len(items)),
		heap:  entryHeap[V]{items: make([]*entry[V], 0, len(items)), priority: priority},
	}
	for _, v := range items {
		f.Add(v)
	}

	return f
}

// Len returns the number of keys in the frontier.
func (f *Frontier[K, V]) Len() int { return len(f.heap.items) }

// Has reports whether k is present. O(1).
func (f *Frontier[K, V]) Has(k K) bool {
	_, ok := f.byKey[k]

	return ok
}

// Get returns the value stored for k, or ErrNotFound.
func (f *Frontier[K, V]) Get(k K) (V, error) {
	e, ok := f.byKey[k]
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrNotFound, k)
	}

	return e.value, nil
}

// PopSmallest removes and returns the value with the lowest priority.
// Returns ErrEmptyQueue if the frontier is empty.
func (f *Frontier[K, V]) PopSmallest() (V, error) {
	if f.heap.Len() == 0 {
		var zero V
		return zero, ErrEmptyQueue
	}
	e := heap.Pop(&f.heap).(*entry[V])
	delete(f.byKey, f.keyOf(e.value))

	return e.value, nil
}

// Peek returns the value PopSmallest would return, without removing it.
func (f *Frontier[K, V]) Peek() (V, error) {
	if f.heap.Len() == 0 {
		var zero V
		return zero, ErrEmptyQueue
	}

	return f.heap.items[0].value, nil
}

// Add inserts v if its key is not already present and reports whether it
// did. Updating an existing key must go through Replace.
func (f *Frontier[K, V]) Add(v V) bool {
	k := f.keyOf(v)
	if _, ok := f.byKey[k]; ok {
		return false
	}
	e := &entry[V]{value: v, seq: f.nextSeq}
	f.nextSeq++
	heap.Push(&f.heap, e)
	f.byKey[k] = e

	return true
}

// Replace overwrites the value stored for v's key and restores heap order.
// If the key is absent, Replace behaves like Add.
// Callers are expected to replace only with a value whose priority is not
// worse than the current one (decrease-key); the structure itself stays
// consistent either way.
func (f *Frontier[K, V]) Replace(v V) {
	e, ok := f.byKey[f.keyOf(v)]
	if !ok {
		f.Add(v)
		return
	}
	e.value = v
	heap.Fix(&f.heap, e.index)
}

// Keys returns a snapshot of the keys currently in the frontier, in heap
// order (not sorted).
func (f *Frontier[K, V]) Keys() []K {
	out := make([]K, 0, len(f.heap.items))
	for _, e := range f.heap.items {
		out = append(out, f.keyOf(e.value))
	}

	return out
}

// Each calls fn for every key/value pair in heap order. fn must not
// mutate the frontier.
func (f *Frontier[K, V]) Each(fn func(K, V)) {
	for _, e := range f.heap.items {
		fn(f.keyOf(e.value), e.value)
	}
}
