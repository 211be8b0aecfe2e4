// Package graphnav adapts a graphmodel.Graph into an oracle.Oracle[string]
// so the incremental replanner (package dstarlite) can route over an
// arbitrary routable graph, the same graph type consumed directly by the
// dijkstra/bfs/prim_kruskal one-shot collaborators.
package graphnav

import (
	"sort"

	"github.com/waypointlabs/wayfarer/costmodel"
	"github.com/waypointlabs/wayfarer/graphmodel"
	"github.com/waypointlabs/wayfarer/oracle"
)

// HeuristicFunc estimates the remaining cost from a to b. It must be
// admissible and consistent for dstarlite's optimality guarantee to
// hold; see oracle.Oracle's doc comment.
type HeuristicFunc func(a, b string) costmodel.Cost

// Adapter implements oracle.Oracle[string] over a *graphmodel.Graph.
type Adapter struct {
	g *graphmodel.Graph
	h HeuristicFunc
}

// New wraps g. If h is nil, oracle.ZeroHeuristic is used, degrading
// the replanner to uniform-cost (Dijkstra-equivalent) search.
func New(g *graphmodel.Graph, h HeuristicFunc) *Adapter {
	if h == nil {
		h = oracle.ZeroHeuristic[string]
	}
	return &Adapter{g: g, h: h}
}

// Successors returns v's out-neighbors in ascending ID order, so the
// replanner's path extraction breaks cost ties the same way on every call.
func (a *Adapter) Successors(v string) []string {
	out := a.g.Neighbors(v)
	sort.Strings(out)
	return out
}

func (a *Adapter) Predecessors(v string) []string {
	return a.g.Predecessors(v)
}

func (a *Adapter) Cost(u, v string) costmodel.Cost {
	w, err := a.g.Weight(u, v)
	if err != nil {
		return costmodel.Inf
	}
	return costmodel.Cost(w)
}

func (a *Adapter) Heuristic(u, v string) costmodel.Cost {
	return a.h(u, v)
}
