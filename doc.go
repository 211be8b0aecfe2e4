// Package wayfarer is an incremental shortest-path replanner for
// caller-owned, caller-mutated graphs.
//
// It is built around a D*-Lite-style engine (package dstarlite) that
// keeps a partial search tree alive across edge-cost and start-vertex
// changes, instead of recomputing a shortest path from scratch on every
// update. Supporting packages:
//
//	costmodel/    — the Cost type and its saturating arithmetic
//	ipq/          — the indexed priority queue behind the engine's open list
//	changelog/    — batches graph mutations between replans
//	graphmodel/   — a thread-safe adjacency-list graph
//	graphnav/     — an oracle adapter over graphmodel.Graph
//	gridnav/      — an oracle adapter over implicit 4-connected grids
//	dstarlite/    — the incremental replanner itself
//
// A handful of one-shot algorithms (dijkstra, bfs, dfs, prim_kruskal)
// live alongside the engine as external collaborators: dstarlite never
// imports them, and they exist to cross-validate the engine's results
// and to back the demo CLI's static "skeleton" queries.
//
// See cmd/navdemo for a runnable example wiring an oracle, an engine,
// structured logging, and a metrics endpoint together.
package wayfarer
