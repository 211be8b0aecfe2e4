// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected, weighted *graphmodel.Graph and grows the MST from a specified root
// vertex using a min-heap.
package prim_kruskal

import (
	"container/heap"

	"github.com/waypointlabs/wayfarer/graphmodel"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from a specified root vertex using a min-heap.
//
// Error Conditions:
//   - ErrInvalidGraph        : graph is nil, directed, or unweighted.
//   - ErrEmptyRoot           : root is the empty string.
//   - graphmodel.ErrVertexNotFound: root does not exist in the graph.
//   - ErrDisconnected        : the graph cannot be spanned from root.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *graphmodel.Graph, root string) ([]graphmodel.Edge, float64, error) {
	if graph == nil || !graph.Weighted() || graph.Directed() {
		return nil, 0, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		if vertices[0] != root {
			return nil, 0, graphmodel.ErrVertexNotFound
		}
		return []graphmodel.Edge{}, 0, nil
	}

	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, graphmodel.ErrVertexNotFound
	}

	n := len(vertices)
	visited := make(map[string]bool, n)
	mst := make([]graphmodel.Edge, 0, n-1)
	var totalWeight float64

	pq := &edgePQ{}
	heap.Init(pq)

	visited[root] = true
	pushFrontier(graph, pq, root, visited)

	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(*graphmodel.Edge)
		v := e.To
		if visited[v] {
			continue
		}
		visited[v] = true
		mst = append(mst, *e)
		totalWeight += e.Weight

		pushFrontier(graph, pq, v, visited)
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// pushFrontier pushes every edge from u to an as-yet-unvisited neighbor onto pq.
func pushFrontier(graph *graphmodel.Graph, pq *edgePQ, u string, visited map[string]bool) {
	for _, v := range graph.Neighbors(u) {
		if visited[v] {
			continue
		}
		w, err := graph.Weight(u, v)
		if err != nil {
			continue
		}
		heap.Push(pq, &graphmodel.Edge{From: u, To: v, Weight: w})
	}
}

// edgePQ implements heap.Interface for a min-heap of *graphmodel.Edge, ordered by Weight.
type edgePQ []*graphmodel.Edge

func (pq edgePQ) Len() int            { return len(pq) }
func (pq edgePQ) Less(i, j int) bool  { return pq[i].Weight < pq[j].Weight }
func (pq edgePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*graphmodel.Edge)) }
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]
	return edge
}
