// Package graphmodel provides a thread-safe, in-memory adjacency-list
// graph: Vertex, Edge, and Graph, with separate sync.RWMutex locks for
// vertices and for edges/adjacency to minimize lock contention.
//
// It exists to give the generic oracle adapter (package graphnav) and
// the one-shot collaborator algorithms (dijkstra, bfs, dfs,
// prim_kruskal, builder) a single routable-graph substrate. graphmodel
// is deliberately narrow: it drops multi-edge and mixed-direction-per-edge
// support (no scenario in this module's scope needs parallel edges or
// per-edge directed
// overrides — see DESIGN.md), keeping directed/undirected and
// weighted/unweighted composition plus self-loops.
package graphmodel
