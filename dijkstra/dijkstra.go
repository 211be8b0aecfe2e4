package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/waypointlabs/wayfarer/costmodel"
	"github.com/waypointlabs/wayfarer/graphmodel"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in the weighted graph g. It accepts functional options
// to customize behavior (ReturnPath, MaxDistance).
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (costmodel.Inf if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//   - err:  error if inputs are invalid or if a negative weight is detected.
func Dijkstra(g *graphmodel.Graph, opts ...Option) (map[string]costmodel.Cost, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]costmodel.Cost, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}

	r.init(vertices)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}
	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *graphmodel.Graph
	options Options
	dist    map[string]costmodel.Cost
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = costmodel.Inf
		r.visited[v] = false
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = costmodel.Zero

	r.pq = make(nodePQ, 0, len(vertices))
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: costmodel.Zero})
}

// process is the core loop: repeatedly extract the vertex with the
// minimum distance from the source and relax its outgoing edges.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax examines each out-neighbor of u and attempts to improve
// distances. Uses the lazy-decrease-key pattern: pushes a new
// *nodeItem rather than mutating the heap in place, relying on
// r.visited to ignore stale entries when popped later.
func (r *runner) relax(u string) {
	for _, v := range r.g.Neighbors(u) {
		w, err := r.g.Weight(u, v)
		if err != nil {
			continue
		}
		newDist := costmodel.Add(r.dist[u], costmodel.Cost(w))
		if costmodel.Less(r.options.MaxDistance, newDist) {
			continue
		}
		if !costmodel.Less(newDist, r.dist[v]) {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   string
	dist costmodel.Cost
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, using
// the lazy-decrease-key approach described on runner.relax.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
