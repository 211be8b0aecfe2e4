package dstarlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waypointlabs/wayfarer/costmodel"
	"github.com/waypointlabs/wayfarer/dstarlite"
	"github.com/waypointlabs/wayfarer/graphmodel"
	"github.com/waypointlabs/wayfarer/graphnav"
	"github.com/waypointlabs/wayfarer/gridnav"
)

func id(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }

// newGridLikeGraph builds a w×h grid of unit-cost undirected edges as
// a *graphmodel.Graph, addressed by "x,y" vertex IDs, so individual
// edges (not whole cells) can be mutated via FlagCostChange — the
// generic graph adapter is the natural fit for the wall-insertion
// scenarios, which target one specific edge rather than a cell.
func newGridLikeGraph(w, h int) *graphmodel.Graph {
	g := graphmodel.New(graphmodel.WithWeighted())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_ = g.AddVertex(id(x, y))
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x+1 < w {
				_ = g.AddEdge(id(x, y), id(x+1, y), 1)
			}
			if y+1 < h {
				_ = g.AddEdge(id(x, y), id(x, y+1), 1)
			}
		}
	}
	return g
}

func manhattan(a, b string) costmodel.Cost {
	var ax, ay, bx, by int
	fmt.Sscanf(a, "%d,%d", &ax, &ay)
	fmt.Sscanf(b, "%d,%d", &bx, &by)
	d := ax - bx
	if d < 0 {
		d = -d
	}
	e := ay - by
	if e < 0 {
		e = -e
	}
	return costmodel.Cost(d + e)
}

// TestStraightCorridor is spec scenario 1.
func TestStraightCorridor(t *testing.T) {
	g := newGridLikeGraph(5, 1)
	adapter := graphnav.New(g, manhattan)
	start, goal := id(0, 0), id(4, 0)
	e := dstarlite.New[string](adapter, start, goal)

	path, err := e.Plan(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"0,0", "1,0", "2,0", "3,0", "4,0"}, path)
}

// TestWallInsertionAlternateRoute is spec scenario 2.
func TestWallInsertionAlternateRoute(t *testing.T) {
	g := newGridLikeGraph(3, 3)
	adapter := graphnav.New(g, manhattan)
	start, goal := id(0, 0), id(2, 2)
	e := dstarlite.New[string](adapter, start, goal)

	path, err := e.Plan(context.Background())
	require.NoError(t, err)
	require.Len(t, path, 5) // 4-edge path over a 3x3 grid

	require.NoError(t, g.RemoveEdge(id(1, 0), id(1, 1)))
	e.FlagCostChange(id(1, 0), id(1, 1), 1, costmodel.Inf)
	e.FlagCostChange(id(1, 1), id(1, 0), 1, costmodel.Inf)

	path, err = e.Plan(context.Background())
	require.NoError(t, err)
	require.Len(t, path, 5)
	require.Contains(t, path, id(0, 1))
}

// TestWallBlocksOnlyRoute is spec scenario 3.
func TestWallBlocksOnlyRoute(t *testing.T) {
	g := newGridLikeGraph(3, 1)
	adapter := graphnav.New(g, manhattan)
	start, goal := id(0, 0), id(2, 0)
	e := dstarlite.New[string](adapter, start, goal)

	path, err := e.Plan(context.Background())
	require.NoError(t, err)
	require.Len(t, path, 3)

	require.NoError(t, g.RemoveEdge(id(0, 0), id(1, 0)))
	require.NoError(t, g.RemoveEdge(id(1, 0), id(2, 0)))
	e.FlagCostChange(id(0, 0), id(1, 0), 1, costmodel.Inf)
	e.FlagCostChange(id(1, 0), id(0, 0), 1, costmodel.Inf)
	e.FlagCostChange(id(1, 0), id(2, 0), 1, costmodel.Inf)
	e.FlagCostChange(id(2, 0), id(1, 0), 1, costmodel.Inf)

	path, err = e.Plan(context.Background())
	require.NoError(t, err)
	require.Empty(t, path)
}

// TestMovingStart is spec scenario 4.
func TestMovingStart(t *testing.T) {
	g := newGridLikeGraph(5, 5)
	adapter := graphnav.New(g, manhattan)
	start, goal := id(0, 0), id(4, 4)
	e := dstarlite.New[string](adapter, start, goal)

	path, err := e.Plan(context.Background())
	require.NoError(t, err)
	require.Len(t, path, 9) // cost 8 => 9 vertices

	e.UpdateStart(id(2, 2))
	path, err = e.Plan(context.Background())
	require.NoError(t, err)
	require.Len(t, path, 5) // cost 4 => 5 vertices
	require.Equal(t, id(2, 2), path[0])
	require.Equal(t, id(4, 4), path[len(path)-1])
}

func TestUpdateStartTwiceEquivalentToOnce(t *testing.T) {
	g := newGridLikeGraph(3, 3)
	adapter := graphnav.New(g, manhattan)
	e := dstarlite.New[string](adapter, id(0, 0), id(2, 2))

	e.UpdateStart(id(1, 1))
	once, err := e.Plan(context.Background())
	require.NoError(t, err)

	e2 := dstarlite.New[string](adapter, id(0, 0), id(2, 2))
	e2.UpdateStart(id(1, 1))
	e2.UpdateStart(id(1, 1))
	twice, err := e2.Plan(context.Background())
	require.NoError(t, err)

	require.Equal(t, once, twice)
}

func TestReplanWithoutMutationIsIdempotent(t *testing.T) {
	g := newGridLikeGraph(4, 4)
	adapter := graphnav.New(g, manhattan)
	e := dstarlite.New[string](adapter, id(0, 0), id(3, 3))

	first, err := e.Plan(context.Background())
	require.NoError(t, err)
	second, err := e.Plan(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestNoPathReturnsEmptySlice(t *testing.T) {
	g := graphmodel.New(graphmodel.WithWeighted())
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	adapter := graphnav.New(g, nil)
	e := dstarlite.New[string](adapter, "a", "b")

	path, err := e.Plan(context.Background())
	require.NoError(t, err)
	require.Empty(t, path)
}

func TestNegativeCostIsCallerMisuse(t *testing.T) {
	g := newGridLikeGraph(2, 1)
	adapter := graphnav.New(g, manhattan)
	e := dstarlite.New[string](adapter, id(0, 0), id(1, 0))

	_, err := e.Plan(context.Background())
	require.NoError(t, err)

	e.FlagCostChange(id(0, 0), id(1, 0), 1, -5)
	_, err = e.Plan(context.Background())
	require.ErrorIs(t, err, dstarlite.ErrNegativeCost)
}

func TestPlanRespectsCancellation(t *testing.T) {
	g := newGridLikeGraph(50, 50)
	adapter := graphnav.New(g, manhattan)
	e := dstarlite.New[string](adapter, id(0, 0), id(49, 49))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Plan(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

// TestGridAdapterEndToEnd exercises the grid specialization itself
// (not just the generic one), confirming the cost-floor formula
// composes correctly with the engine.
func TestGridAdapterEndToEnd(t *testing.T) {
	values := make([][]int, 5)
	for y := range values {
		values[y] = make([]int, 5)
	}
	grid, err := gridnav.NewGrid(values)
	require.NoError(t, err)
	adapter := gridnav.New(grid)

	e := dstarlite.New[gridnav.Coord](adapter, gridnav.Coord{X: 0, Y: 0}, gridnav.Coord{X: 4, Y: 4})
	path, err := e.Plan(context.Background())
	require.NoError(t, err)
	require.Len(t, path, 9)
}
