package graphnav_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waypointlabs/wayfarer/costmodel"
	"github.com/waypointlabs/wayfarer/graphmodel"
	"github.com/waypointlabs/wayfarer/graphnav"
)

func TestAdapterCostAndSuccessors(t *testing.T) {
	g := graphmodel.New(graphmodel.WithWeighted())
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("a", "b", 2))
	require.NoError(t, g.AddEdge("b", "c", 3))

	a := graphnav.New(g, nil)
	require.ElementsMatch(t, []string{"b"}, a.Successors("a"))
	require.Equal(t, costmodel.Cost(2), a.Cost("a", "b"))
	require.Equal(t, costmodel.Inf, a.Cost("a", "c"))
	require.Equal(t, costmodel.Zero, a.Heuristic("a", "c"))
}

func TestAdapterCustomHeuristic(t *testing.T) {
	g := graphmodel.New()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))

	calls := 0
	h := func(u, v string) costmodel.Cost {
		calls++
		return costmodel.Cost(1)
	}
	a := graphnav.New(g, h)
	require.Equal(t, costmodel.Cost(1), a.Heuristic("a", "b"))
	require.Equal(t, 1, calls)
}
