// Package bfs implements breadth-first search over a graphmodel.Graph,
// returning unweighted distances and visit order from a start vertex.
// It is a one-shot collaborator, not imported by the incremental
// replanner (package dstarlite); cmd/navdemo's skeleton command uses
// it as a reachability preflight before handing landmarks to the
// patrol-skeleton builder.
//
// Complexity: O(V + E) time, O(V) space.
package bfs

import (
	"errors"

	"github.com/waypointlabs/wayfarer/graphmodel"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("bfs: graph is nil")

// ErrStartVertexNotFound is returned when the start ID is absent.
var ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

// ErrWeightedGraph is returned when BFS is run on a weighted graph.
var ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

// Result holds the outcome of a BFS traversal: Order is the visit
// sequence, Depth maps each reached vertex to its distance (in edges)
// from the start vertex.
type Result struct {
	Order []string
	Depth map[string]int
}

// BFS runs breadth-first search on g starting from startID, visiting
// vertices in non-decreasing distance order.
func BFS(g *graphmodel.Graph, startID string) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	vertices := g.Vertices()
	res := &Result{
		Order: make([]string, 0, len(vertices)),
		Depth: make(map[string]int, len(vertices)),
	}

	res.Depth[startID] = 0
	queue := []string{startID}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, id)

		depth := res.Depth[id]
		for _, nbr := range g.Neighbors(id) {
			if _, seen := res.Depth[nbr]; seen {
				continue
			}
			res.Depth[nbr] = depth + 1
			queue = append(queue, nbr)
		}
	}

	return res, nil
}
