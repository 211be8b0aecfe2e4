package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/waypointlabs/wayfarer/bfs"
	"github.com/waypointlabs/wayfarer/builder"
	"github.com/waypointlabs/wayfarer/dfs"
	"github.com/waypointlabs/wayfarer/dijkstra"
	"github.com/waypointlabs/wayfarer/dstarlite"
	"github.com/waypointlabs/wayfarer/graphmodel"
	"github.com/waypointlabs/wayfarer/graphnav"
	"github.com/waypointlabs/wayfarer/prim_kruskal"
)

// SkeletonCmd builds a routable 5x5 grid graph with builder.Grid, picks
// five named landmarks on it, uses dijkstra to measure the true
// distance between every pair of landmarks, hands that complete
// landmark graph to prim_kruskal.Skeleton for a minimum-spanning-tree
// patrol order, then replans each consecutive leg of the skeleton with
// the incremental engine over the full grid graph — demonstrating the
// one-shot collaborators and the incremental engine side by side, per
// SPEC_FULL.md §11.
type SkeletonCmd struct{}

func (s *SkeletonCmd) Run(logger *log.Logger) error {
	world, err := builder.BuildGraph(
		[]graphmodel.GraphOption{graphmodel.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(7)},
		builder.Grid(5, 5),
	)
	if err != nil {
		return fmt.Errorf("skeleton: %w", err)
	}

	landmarks := []string{"0,0", "0,4", "4,0", "4,4", "2,2"}

	reach, err := bfs.BFS(world, landmarks[0])
	if err != nil {
		return fmt.Errorf("skeleton: reachability preflight: %w", err)
	}
	for _, l := range landmarks[1:] {
		if _, ok := reach.Depth[l]; !ok {
			logger.Warn("landmark unreachable from root, skeleton will fail", "root", landmarks[0], "landmark", l)
		}
	}

	landmarkGraph := graphmodel.New(graphmodel.WithWeighted())
	for _, l := range landmarks {
		if err := landmarkGraph.AddVertex(l); err != nil {
			return fmt.Errorf("skeleton: %w", err)
		}
	}
	for i, u := range landmarks {
		for _, v := range landmarks[i+1:] {
			dist, _, err := dijkstra.Dijkstra(world, dijkstra.Source(u))
			if err != nil {
				return fmt.Errorf("skeleton: measuring %s->%s: %w", u, v, err)
			}
			if err := landmarkGraph.AddEdge(u, v, float64(dist[v])); err != nil {
				return fmt.Errorf("skeleton: %w", err)
			}
		}
	}

	mst, totalWeight, err := prim_kruskal.Skeleton(landmarkGraph, landmarks)
	if err != nil {
		return fmt.Errorf("skeleton: %w", err)
	}
	fmt.Printf("patrol skeleton over %v: %d legs, total MST weight %v\n", landmarks, len(mst), totalWeight)

	order, err := patrolOrder(landmarks[0], mst)
	if err != nil {
		return fmt.Errorf("skeleton: ordering patrol stops: %w", err)
	}
	fmt.Printf("patrol stop order: %v\n", order)

	adapter := graphnav.New(world, nil)
	for _, leg := range mst {
		engine := dstarlite.New[string](adapter, leg.From, leg.To, dstarlite.WithLogger(logger))
		path, err := engine.Plan(context.Background())
		if err != nil {
			return fmt.Errorf("skeleton: leg %s->%s: %w", leg.From, leg.To, err)
		}
		fmt.Printf("leg %s -> %s: route %v\n", leg.From, leg.To, path)
	}
	return nil
}

// patrolOrder turns the MST edges returned by prim_kruskal.Skeleton
// (each already oriented parent-to-child, away from root) into a
// directed rooted-tree graph and runs dfs.TopologicalSort over it to
// get a valid visit order for the patrol stops: every parent appears
// before its children, regardless of how the skeleton happened to
// branch.
func patrolOrder(root string, mst []graphmodel.Edge) ([]string, error) {
	tree := graphmodel.New(graphmodel.WithDirected())
	if err := tree.AddVertex(root); err != nil {
		return nil, err
	}
	for _, e := range mst {
		if err := tree.AddVertex(e.From); err != nil {
			return nil, err
		}
		if err := tree.AddVertex(e.To); err != nil {
			return nil, err
		}
		if err := tree.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}
	return dfs.TopologicalSort(tree)
}
