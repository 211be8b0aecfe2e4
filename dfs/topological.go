// Package dfs implements topological sort over a directed
// graphmodel.Graph via depth-first search with three-color marking.
// It is a one-shot collaborator, not imported by the incremental
// replanner (package dstarlite); cmd/navdemo's skeleton command uses
// it to order patrol stops from a minimum-spanning-tree graph.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering. If the
// graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"errors"
	"fmt"

	"github.com/waypointlabs/wayfarer/graphmodel"
)

// ErrGraphNil is returned when a nil *graphmodel.Graph is passed.
var ErrGraphNil = errors.New("dfs: graph is nil")

// ErrCycleDetected indicates a cycle was encountered during TopologicalSort.
var ErrCycleDetected = errors.New("dfs: cycle detected")

// visitation states
const (
	white = iota
	gray
	black
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *graphmodel.Graph
	state map[string]int // White/Gray/Black per vertex
	order []string       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
// If g is nil, returns ErrGraphNil. If g is undirected, returns an
// error. If a cycle is detected, returns ErrCycleDetected.
func TopologicalSort(g *graphmodel.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, fmt.Errorf("dfs: TopologicalSort requires directed graph")
	}

	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}

	for _, v := range verts {
		if sorter.state[v] == white {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles
// (a back-edge to a Gray vertex) along the way.
func (t *topoSorter) visit(id string) error {
	switch t.state[id] {
	case gray:
		return ErrCycleDetected
	case black:
		return nil
	}
	t.state[id] = gray

	for _, nbr := range t.graph.Neighbors(id) {
		if err := t.visit(nbr); err != nil {
			return err
		}
	}

	t.state[id] = black
	t.order = append(t.order, id)

	return nil
}
