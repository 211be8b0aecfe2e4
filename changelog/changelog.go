// Package changelog implements the thread-safe, append-only record of
// pending edge-cost mutations the incremental replanner drains at the
// start of every plan cycle. It is the only piece of dstarlite.Engine
// state that may be written from outside the engine's own goroutine
// (spec's §5 concurrency model), so its lock discipline is the
// narrowest in the module: one mutex, guarding append and drain only.
//
// Each Batch returned by Drain is stamped with a google/uuid batch ID —
// useful for a caller's logger to correlate "this
// plan cycle observed these N changes" across a structured log line.
package changelog

import (
	"sync"

	"github.com/google/uuid"

	"github.com/waypointlabs/wayfarer/costmodel"
)

// Change is one reported edge-cost mutation: the cost of the directed
// edge (From, To) changed from OldCost to NewCost. For an undirected
// oracle, callers report both (u, v) and (v, u).
type Change[V comparable] struct {
	From, To         V
	OldCost, NewCost costmodel.Cost
}

// Batch is a group of Changes drained together, stamped with a unique
// ID so callers can correlate a plan cycle's log output with the
// mutations that triggered it.
type Batch[V comparable] struct {
	ID      uuid.UUID
	Changes []Change[V]
}

// Log is a thread-safe append-only bag of Changes.
type Log[V comparable] struct {
	mu      sync.Mutex
	pending []Change[V]
}

// New constructs an empty Log.
func New[V comparable]() *Log[V] {
	return &Log[V]{}
}

// Append records a change. Safe for concurrent use with Drain and
// other Append calls.
func (l *Log[V]) Append(c Change[V]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending = append(l.pending, c)
}

// Drain atomically removes and returns every Change appended since the
// last Drain, wrapped in a freshly-stamped Batch. An empty Log yields a
// Batch with a nil Changes slice; callers should check len(batch.Changes)
// rather than relying on the zero UUID.
func (l *Log[V]) Drain() Batch[V] {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.pending
	l.pending = nil
	return Batch[V]{ID: uuid.New(), Changes: out}
}

// Len reports the number of changes currently pending.
func (l *Log[V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}
