package prim_kruskal

import "github.com/waypointlabs/wayfarer/graphmodel"

// Skeleton proposes a patrol order over a set of landmark vertices by
// computing the MST of the subgraph induced on landmarks (direct edges
// between landmarks only), rooted at landmarks[0]. It returns
// ErrEmptyRoot if landmarks is empty and ErrDisconnected if the
// landmarks cannot all be reached from each other through direct
// edges.
//
// Skeleton does not run any shortest-path search between non-adjacent
// landmarks; it is a cheap ordering hint for the demo's patrol
// builder, which hands each consecutive pair in the MST to the
// incremental replanner to fill in the actual route.
func Skeleton(graph *graphmodel.Graph, landmarks []string) ([]graphmodel.Edge, float64, error) {
	if len(landmarks) == 0 {
		return nil, 0, ErrEmptyRoot
	}
	if graph == nil || graph.Directed() {
		return nil, 0, ErrInvalidGraph
	}

	induced := graphmodel.New(graphmodel.WithWeighted())
	set := make(map[string]bool, len(landmarks))
	for _, id := range landmarks {
		set[id] = true
		if err := induced.AddVertex(id); err != nil {
			return nil, 0, err
		}
	}
	for _, u := range landmarks {
		for _, v := range graph.Neighbors(u) {
			if !set[v] || induced.HasEdge(u, v) {
				continue
			}
			w, err := graph.Weight(u, v)
			if err != nil {
				continue
			}
			if err := induced.AddEdge(u, v, w); err != nil {
				return nil, 0, err
			}
		}
	}

	return Prim(induced, landmarks[0])
}
