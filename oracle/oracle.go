// Package oracle declares the contract by which the incremental
// replanner (package dstarlite) asks the surrounding program for
// graph structure and distance estimates. It is the engine's only
// polymorphic seam: model a graph, a grid, or any other routable
// space as one, and the engine never needs to know which.
//
// Oracle implementations are read-only from the engine's perspective.
// Mutations to the underlying space are announced out-of-band via
// Engine.FlagCostChange, never by the oracle changing what it returns
// mid-call.
package oracle

import "github.com/waypointlabs/wayfarer/costmodel"

// Oracle is the caller-supplied view of a routable space over vertex
// identities of type V. V must be comparable so it can key maps and
// back the indexed priority queue.
//
// Successors/Predecessors must return finite collections; Cost must be
// nonnegative (negative costs are a caller error, see
// dstarlite.ErrNegativeCost); Heuristic must be admissible
// (Heuristic(a, a) == 0) and consistent
// (Heuristic(a, b) <= Cost(a, c) + Heuristic(c, b) for every neighbor c
// of a) for the engine's optimality guarantee to hold — an
// inconsistent heuristic degrades the result but must not crash the
// engine (see dstarlite's WithConsistencyChecks diagnostic).
type Oracle[V comparable] interface {
	// Successors returns v's directed out-neighbors.
	Successors(v V) []V

	// Predecessors returns v's directed in-neighbors. For undirected
	// spaces, callers mirror Successors.
	Predecessors(v V) []V

	// Cost returns the edge cost from u to v, or costmodel.Inf if no
	// such edge exists.
	Cost(u, v V) costmodel.Cost

	// Heuristic returns a lower bound on the true cost from a to b.
	Heuristic(a, b V) costmodel.Cost
}

// ZeroHeuristic is the trivial admissible, consistent heuristic that
// always returns zero, degrading whatever algorithm uses it to
// uniform-cost search. Useful as the default for oracles with no
// natural distance estimate (graphnav.New defaults to it when no
// heuristic is supplied).
func ZeroHeuristic[V comparable](_, _ V) costmodel.Cost {
	return costmodel.Zero
}
