// Package ipq implements a min-ordered indexed priority queue: a
// binary heap over a random-access slice, extended with a side map
// from payload to array index so Remove and Update run in O(log n)
// instead of O(n).
//
// The ordering key is a (Primary, Secondary) pair of costmodel.Cost
// values compared lexicographically — smaller Primary wins, ties
// broken by smaller Secondary. This is the same shape of key the
// incremental replanner (package dstarlite) computes per vertex; ipq
// itself knows nothing about vertices, goals, or heuristics, only how
// to keep payloads sorted by whatever Key they were last given.
//
// Grounded on the container/heap.Interface styles used elsewhere in this
// module (dijkstra.nodePQ, prim_kruskal.edgePQ) and on the indexed
// dStarPriorityQueue (indexList + Fix/Remove/Peek) found in the
// retrieval pack's gonum D*-Lite sources — this package fixes that
// source's Key.Less, which compared tuples with `&&` instead of proper
// lexicographic order (see DESIGN.md).
package ipq

import (
	"errors"

	"github.com/waypointlabs/wayfarer/costmodel"
)

// ErrUnknownPayload is returned by Remove and Update when asked to act
// on a payload that is not currently present in the queue.
var ErrUnknownPayload = errors.New("ipq: payload not present")

// Key is the composite ordering key for a queued payload: smaller
// Primary orders first, ties broken by smaller Secondary.
type Key struct {
	Primary   costmodel.Cost
	Secondary costmodel.Cost
}

// Less reports whether k orders strictly before other: lexicographic
// comparison on (Primary, Secondary), never integer subtraction (which
// is unsafe once either component can be costmodel.Inf).
func (k Key) Less(other Key) bool {
	if k.Primary != other.Primary {
		return k.Primary < other.Primary
	}
	return k.Secondary < other.Secondary
}

// Equal reports whether k and other order identically.
func (k Key) Equal(other Key) bool {
	return k.Primary == other.Primary && k.Secondary == other.Secondary
}
