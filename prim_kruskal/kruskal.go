// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted *graphmodel.Graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/waypointlabs/wayfarer/graphmodel"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Steps:
//  1. Validate: graph != nil, graph.Weighted(), !graph.Directed().
//  2. Retrieve vertex IDs; if empty, ErrDisconnected. If a single vertex, trivial empty MST.
//  3. Collect all edges via graph.Edges(), skip self-loops.
//  4. Sort edges by ascending weight (stable relative to graph.Edges() order,
//     which is itself unspecified, so equal-weight ties have no fixed order).
//  5. Initialize DSU maps parent[] and rank[] for each vertex.
//  6. Loop over sorted edges: if find(u) != find(v), union(u,v) and include edge in MST.
//  7. If MST has fewer than |V|-1 edges when exhausted, ErrDisconnected.
//
// Complexity: O(E log E + alpha(V)*E). Memory: O(E + V).
func Kruskal(graph *graphmodel.Graph) ([]graphmodel.Edge, float64, error) {
	if graph == nil || !graph.Weighted() || graph.Directed() {
		return nil, 0, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []graphmodel.Edge{}, 0, nil
	}

	allEdges := graph.Edges()
	edges := make([]graphmodel.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, vid := range vertices {
		parent[vid] = vid
		rank[vid] = 0
	}

	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	union := func(u, v string) {
		rootU := find(u)
		rootV := find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	var (
		mst         []graphmodel.Edge
		totalWeight float64
		numVerts    = len(vertices)
	)
	for _, e := range edges {
		u, v := e.From, e.To
		if find(u) != find(v) {
			union(u, v)
			mst = append(mst, e)
			totalWeight += e.Weight
			if len(mst) == numVerts-1 {
				break
			}
		}
	}

	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
