package ipq

import "container/heap"

// entry pairs a payload with the Key it was last inserted or updated
// with.
type entry[V comparable] struct {
	payload V
	key     Key
}

// Queue is a min-ordered indexed priority queue of payloads of type V,
// keyed by Key. The zero value is not usable; construct with New.
//
// Concurrency: Queue is not safe for concurrent use. The engine that
// owns one (dstarlite.Engine) serializes access to it per spec's
// single-threaded-cooperative model; see SPEC_FULL.md §5.
type Queue[V comparable] struct {
	heap rawHeap[V]
}

// New constructs an empty Queue.
func New[V comparable]() *Queue[V] {
	return &Queue[V]{
		heap: rawHeap[V]{
			items: nil,
			index: make(map[V]int),
		},
	}
}

// Add inserts payload with the given key. Duplicates are not checked
// by the queue itself, matching the IPQ contract in SPEC_FULL.md §4.2;
// callers that may re-add a payload already present should Remove or
// Update it first. Complexity: O(log n).
func (q *Queue[V]) Add(payload V, key Key) {
	heap.Push(&q.heap, entry[V]{payload: payload, key: key})
}

// Peek returns the minimum payload without removing it, and true, or
// the zero value and false if the queue is empty. Complexity: O(1).
func (q *Queue[V]) Peek() (V, bool) {
	if q.heap.Len() == 0 {
		var zero V
		return zero, false
	}
	return q.heap.items[0].payload, true
}

// PeekKey returns the minimum entry's key alongside Peek's payload, or
// false if the queue is empty. Complexity: O(1).
func (q *Queue[V]) PeekKey() (Key, bool) {
	if q.heap.Len() == 0 {
		return Key{}, false
	}
	return q.heap.items[0].key, true
}

// Poll removes and returns the minimum payload, or the zero value and
// false if the queue is empty. Complexity: O(log n).
func (q *Queue[V]) Poll() (V, bool) {
	if q.heap.Len() == 0 {
		var zero V
		return zero, false
	}
	e := heap.Pop(&q.heap).(entry[V])
	return e.payload, true
}

// Remove deletes the unique entry equal to payload, if present. It
// returns ErrUnknownPayload and does nothing if payload is not queued.
// Complexity: O(log n).
func (q *Queue[V]) Remove(payload V) error {
	i, ok := q.heap.index[payload]
	if !ok {
		return ErrUnknownPayload
	}
	heap.Remove(&q.heap, i)
	return nil
}

// Update re-sorts payload after its external key changed to newKey.
// Returns ErrUnknownPayload if payload is not queued. Complexity:
// O(log n).
func (q *Queue[V]) Update(payload V, newKey Key) error {
	i, ok := q.heap.index[payload]
	if !ok {
		return ErrUnknownPayload
	}
	q.heap.items[i].key = newKey
	heap.Fix(&q.heap, i)
	return nil
}

// Contains reports whether payload is currently queued. Complexity:
// O(1).
func (q *Queue[V]) Contains(payload V) bool {
	_, ok := q.heap.index[payload]
	return ok
}

// KeyOf returns the key currently associated with payload, or false if
// it is not queued. Complexity: O(1).
func (q *Queue[V]) KeyOf(payload V) (Key, bool) {
	i, ok := q.heap.index[payload]
	if !ok {
		return Key{}, false
	}
	return q.heap.items[i].key, true
}

// Clear removes every entry. Complexity: O(n).
func (q *Queue[V]) Clear() {
	q.heap.items = q.heap.items[:0]
	for k := range q.heap.index {
		delete(q.heap.index, k)
	}
}

// Size returns the number of queued payloads. Complexity: O(1).
func (q *Queue[V]) Size() int {
	return q.heap.Len()
}

// IsEmpty reports whether the queue holds no payloads. Complexity:
// O(1).
func (q *Queue[V]) IsEmpty() bool {
	return q.heap.Len() == 0
}

// MutateKey overwrites payload's key in place without restoring the
// heap invariant — the queue is not safe to Peek/Poll/Add/Remove again
// until Heapify is called. Pairs with Heapify as a cheaper alternative
// to calling Update after every one of a batch of external key
// changes: O(1) per mutation, one O(n) Heapify at the end, instead of
// O(log n) per mutation. Returns ErrUnknownPayload if payload is not
// queued.
func (q *Queue[V]) MutateKey(payload V, newKey Key) error {
	i, ok := q.heap.index[payload]
	if !ok {
		return ErrUnknownPayload
	}
	q.heap.items[i].key = newKey
	return nil
}

// Heapify restores the heap invariant in O(n) after one or more
// MutateKey calls left it broken.
func (q *Queue[V]) Heapify() {
	heap.Init(&q.heap)
}

// rawHeap implements container/heap.Interface over entry[V], keeping
// index in sync on every Swap so Queue's Remove/Update never need to
// scan the slice for a payload's position. Grounded on the
// dijkstra.nodePQ / prim_kruskal.edgePQ heap.Interface style, extended
// with the index map the way the retrieval pack's gonum
// dStarPriorityQueue (indexList) does.
type rawHeap[V comparable] struct {
	items []entry[V]
	index map[V]int // payload -> current slice position
}

func (h rawHeap[V]) Len() int { return len(h.items) }

func (h rawHeap[V]) Less(i, j int) bool { return h.items[i].key.Less(h.items[j].key) }

func (h rawHeap[V]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.index[h.items[i].payload] = i
	h.index[h.items[j].payload] = j
}

func (h *rawHeap[V]) Push(x any) {
	e := x.(entry[V])
	h.items = append(h.items, e)
	h.index[e.payload] = len(h.items) - 1
}

func (h *rawHeap[V]) Pop() any {
	old := h.items
	n := len(old)
	e := old[n-1]
	h.items = old[:n-1]
	delete(h.index, e.payload)
	return e
}
