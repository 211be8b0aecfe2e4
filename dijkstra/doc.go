// Package dijkstra provides a precise implementation of Dijkstra's
// shortest-path algorithm on weighted graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports optional path reconstruction and a distance cap (MaxDistance).
//
// When to use:
//
//   - As a ground truth for cross-validating the incremental replanner in
//     package dstarlite, which never imports this package.
//   - As a static "skeleton" query on a fixed graph, where no incremental
//     replanning is required.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once from the priority queue (V extracts total).
//   - Each edge relaxation may push one new entry (up to E pushes).
//   - Space: O(V + E)
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource: returned if Options.Source is empty.
//   - ErrNilGraph: returned if g is nil.
//   - ErrVertexNotFound: returned if Options.Source is not a vertex in g.
//   - ErrNegativeWeight: returned if any edge in the graph has a negative
//     weight (detected by a fast O(E) pre-scan); unreachable through
//     graphmodel's own public API, which already rejects negative weights
//     at AddEdge time, but kept as a second line of defense.
//
// API reference:
//
//	func Dijkstra(
//	    g *graphmodel.Graph,
//	    opts ...Option,
//	) (dist map[string]costmodel.Cost, prev map[string]string, err error)
//
//	  - g:       the graph to search.
//	  - opts:    zero or more functional options:
//	      • Source(string):                required, the starting vertex ID.
//	      • WithReturnPath():               if set, returns a predecessor map; otherwise prev == nil.
//	      • WithMaxDistance(costmodel.Cost): if set, explores only vertices with distance ≤ given value.
//	  - dist:    map[v] = minimal distance from Source to v, or costmodel.Inf if unreachable.
//	  - prev:    map[v] = immediate predecessor of v on one shortest path from Source,
//	              or "" if v is the Source or v is unreachable. Nil if ReturnPath=false.
//
// Thread safety:
//
//   - Dijkstra itself is not thread-safe if the same *graphmodel.Graph is modified concurrently.
//     If you need concurrent queries on the same graph, synchronize externally.
package dijkstra
