// Package prim_kruskal provides two battle-tested algorithms for computing the Minimum
// Spanning Tree (MST) on an undirected, weighted *graphmodel.Graph: Prim's algorithm and
// Kruskal's algorithm, plus a Skeleton helper that proposes a patrol order over a set of
// landmark vertices.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why MST matters here: the demo's "skeleton" subcommand uses Skeleton to propose a
//     visiting order over a handful of patrol waypoints before handing each leg of the
//     route to the incremental replanner, which is the part of this repo that actually
//     has to react to cost changes along the way.
//
// Algorithms Provided
//
//   - Kruskal(g *graphmodel.Graph) ([]graphmodel.Edge, float64, error)
//     Sort all edges by weight, then iterate from smallest to largest, merging components
//     with a union-find structure. Stops once |V|-1 edges have been added.
//     Complexity: O(E log E + alpha(V)*E).
//
//   - Prim(g *graphmodel.Graph, root string) ([]graphmodel.Edge, float64, error)
//     Grow a single tree from root using a min-heap of frontier edges.
//     Complexity: O(E log V).
//
//   - Skeleton(g *graphmodel.Graph, landmarks []string) ([]graphmodel.Edge, float64, error)
//     Runs Prim over the subgraph induced by landmarks (direct edges only).
//
// Error Conditions
//
//   - ErrInvalidGraph: graph is nil, directed, or unweighted.
//   - ErrEmptyRoot (Prim, Skeleton): no starting vertex / no landmarks given.
//   - graphmodel.ErrVertexNotFound (Prim): root does not exist in graph.Vertices().
//   - ErrDisconnected: the graph (or induced landmark subgraph) cannot be fully spanned.
package prim_kruskal
