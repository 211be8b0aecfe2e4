// Package costmodel defines the Cost scalar shared by every wayfarer
// package: the oracle, the indexed priority queue, the change log, and
// the incremental replanner all order and accumulate values through
// this single type so "infinity" has exactly one meaning module-wide.
//
// Costs are real, nonnegative, and totally ordered, with Inf acting as
// a top element: Inf+x == Inf for any finite x, and nothing compares
// less than... below zero (callers are expected never to construct a
// negative Cost; see dstarlite.ErrNegativeCost).
package costmodel

import "math"

// Cost is a real-valued edge or path cost. The zero value is the
// cheapest possible cost (0). Use Inf to represent an unreachable or
// impassable edge.
type Cost float64

// Inf is the top element of Cost: it compares greater than every
// finite Cost and absorbs addition.
var Inf = Cost(math.Inf(1))

// Zero is the identity element for Add.
const Zero Cost = 0

// IsInf reports whether c is the Inf sentinel (or any +Inf float that
// reached Cost through unchecked arithmetic).
func (c Cost) IsInf() bool {
	return math.IsInf(float64(c), 1)
}

// Add returns a+b, saturating at Inf: Inf+x and x+Inf are always Inf
// regardless of x, including when x is itself Inf.
func Add(a, b Cost) Cost {
	if a.IsInf() || b.IsInf() {
		return Inf
	}
	return a + b
}

// Less reports whether a orders strictly before b.
func Less(a, b Cost) bool {
	return a < b
}

// LessOrEqual reports whether a orders at or before b.
func LessOrEqual(a, b Cost) bool {
	return a <= b
}

// Min returns whichever of a, b orders first.
func Min(a, b Cost) Cost {
	if a < b {
		return a
	}
	return b
}
