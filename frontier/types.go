package frontier

import "errors"

// Sentinel errors returned by Frontier.
var (
	// ErrNotFound indicates that no entry exists for the requested key.
	ErrNotFound = errors.New("frontier: key not found")

	// ErrEmptyQueue indicates PopSmallest was called on an empty frontier.
	ErrEmptyQueue = errors.New("frontier: pop from empty queue")
)

// entry is a single heap slot.
type entry[V any] struct {
	value V
	seq   uint64 // insertion sequence, tie-breaker
	index int    // position in the heap, maintained by Swap/Push/Pop
}

// entryHeap is a min-heap of *entry ordered by (priority, seq).
// It implements heap.Interface; the priority function is shared with the
// owning Frontier.
type entryHeap[V any] struct {
	items    []*entry[V]
	priority func(V) int
}

// Len returns the number of items in the heap.
func (h *entryHeap[V]) Len() int { return len(h.items) }

// Less orders by priority, then by insertion sequence.
func (h *entryHeap[V]) Less(i, j int) bool {
	pi, pj := h.priority(h.items[i].value), h.priority(h.items[j].value)
	if pi != pj {
		return pi < pj
	}

	return h.items[i].seq < h.items[j].seq
}

// Swap swaps two elements and keeps their indices current.
func (h *entryHeap[V]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].index = i
	h.items[j].index = j
}

// Push appends x; called by heap.Push.
func (h *entryHeap[V]) Push(x any) {
	e := x.(*entry[V])
	e.index = len(h.items)
	h.items = append(h.items, e)
}

// Pop removes the last element; called by heap.Pop.
func (h *entryHeap[V]) Pop() any {
	old := h.items
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1 // for safety
	h.items = old[:n-1]

	return e
}
