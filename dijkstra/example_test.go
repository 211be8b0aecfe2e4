// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/waypointlabs/wayfarer/dijkstra"
	"github.com/waypointlabs/wayfarer/graphmodel"
)

// ExampleDijkstra_triangle demonstrates computing shortest paths on a simple triangle graph.
// Complexity: O((V+E) log V) because we push/pop up to E entries and extract each vertex once.
func ExampleDijkstra_triangle() {
	// 1) Create a new weighted graph.
	g := graphmodel.New(graphmodel.WithWeighted())
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")
	_ = g.AddVertex("C")
	// 2) Add an undirected edge A—B with weight=1.
	_ = g.AddEdge("A", "B", 1)
	// 3) Add an undirected edge B—C with weight=2.
	_ = g.AddEdge("B", "C", 2)
	// 4) Add an undirected edge A—C with weight=5.
	_ = g.AddEdge("A", "C", 5)

	// 5) Compute Dijkstra from source "A" without requesting the predecessor map.
	dist, _, err := dijkstra.Dijkstra(
		g,
		dijkstra.Source("A"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 6) Print distances to A, B, and C.
	//    dist["A"] should be 0, dist["B"] should be 1, dist["C"] should be 3 (via A→B→C).
	fmt.Printf("dist[A]=%g, dist[B]=%g, dist[C]=%g\n", float64(dist["A"]), float64(dist["B"]), float64(dist["C"]))
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

// ExampleDijkstra_mediumGraph demonstrates path reconstruction on a slightly larger graph.
// We show how to use WithReturnPath() to obtain the predecessor (prev) map.
// Complexity: O((V+E) log V).
func ExampleDijkstra_mediumGraph() {
	// 1) Create a new directed, weighted graph.
	g := graphmodel.New(graphmodel.WithDirected(), graphmodel.WithWeighted())
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddVertex(id)
	}
	// 2) Add directed edge A→B weight=2.
	_ = g.AddEdge("A", "B", 2)
	// 3) Add directed edge A→C weight=1.
	_ = g.AddEdge("A", "C", 1)
	// 4) Add directed edge C→B weight=1.
	_ = g.AddEdge("C", "B", 1)
	// 5) Add directed edge B→D weight=3.
	_ = g.AddEdge("B", "D", 3)
	// 6) Add directed edge C→D weight=5.
	_ = g.AddEdge("C", "D", 5)

	// 7) Run Dijkstra from source "A", requesting the predecessor map via WithReturnPath().
	dist, prev, err := dijkstra.Dijkstra(
		g,
		dijkstra.Source("A"),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 8) Print the distance to "D" and its immediate predecessor.
	//    A→B→D and A→C→B→D both cost 5; the recorded predecessor of D is B.
	fmt.Printf("dist[D]=%g, prev[D]=%s\n", float64(dist["D"]), prev["D"])
	// Output: dist[D]=5, prev[D]=B
}

// ExampleDijkstra_maxDistance demonstrates bounding exploration with WithMaxDistance.
// Vertices farther than the cap are reported as unreachable (costmodel.Inf).
// Complexity: O((V+E) log V).
func ExampleDijkstra_maxDistance() {
	// 1) Create a new weighted graph.
	g := graphmodel.New(graphmodel.WithWeighted())
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(id)
	}
	// 2) Add an edge A—B weight=2.
	_ = g.AddEdge("A", "B", 2)
	// 3) Add an edge B—C weight=4.
	_ = g.AddEdge("B", "C", 4)

	// 4) Run Dijkstra from "A" capped at distance 3: only A and B are reached.
	dist, _, err := dijkstra.Dijkstra(
		g,
		dijkstra.Source("A"),
		dijkstra.WithMaxDistance(3),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(dist["C"].IsInf())
	// Output: true
}

// ExampleDijkstra_houseGraph shows Dijkstra on a small directed, weighted graph.
// Expected: the shortest costs to D and E from A.
func ExampleDijkstra_houseGraph() {
	// Source graph g:
	//	    (E)
	//	  3/   \4
	//	  /     \
	//	(C)──10─(D)
	//	 |       |
	//	2|       |5
	//	 |       |
	//	(A)──4──(B)
	g := graphmodel.New(graphmodel.WithDirected(), graphmodel.WithWeighted())
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		_ = g.AddVertex(id)
	}
	for _, e := range []struct {
		U, V string
		W    float64
	}{
		{"A", "B", 4},
		{"A", "C", 2},
		{"B", "D", 5},
		{"C", "D", 10},
		{"C", "E", 3},
		{"E", "D", 4},
	} {
		_ = g.AddEdge(e.U, e.V, e.W)
	}
	dist, _, _ := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	fmt.Printf("dist[D]=%g dist[E]=%g\n", float64(dist["D"]), float64(dist["E"]))
	// Output: dist[D]=9 dist[E]=5
}
