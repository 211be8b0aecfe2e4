package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/waypointlabs/wayfarer/costmodel"
	"github.com/waypointlabs/wayfarer/dstarlite"
	"github.com/waypointlabs/wayfarer/gridnav"
)

// WallCmd reproduces SPEC_FULL.md §8 scenarios 2 and 3: a wall
// inserted mid-route that the replanner routes around, and a wall
// inserted on the only route, which leaves no path.
type WallCmd struct{}

func (w *WallCmd) Run(logger *log.Logger) error {
	if err := w.insertion(logger); err != nil {
		return err
	}
	fmt.Println()
	return w.onlyRoute(logger)
}

// insertion: 3x3 grid of zeros, start=(0,0), goal=(2,2). First plan is
// a 5-vertex, cost-4 path. Then cell (1,1) is walled and every edge
// touching it, (1,0)-(1,1) included, is flagged in both directions;
// replan still returns a 5-vertex, cost-4 path around the wall.
func (w *WallCmd) insertion(logger *log.Logger) error {
	zeros := make([][]int, 3)
	for i := range zeros {
		zeros[i] = []int{0, 0, 0}
	}
	grid, err := gridnav.NewGrid(zeros)
	if err != nil {
		return fmt.Errorf("wall insertion: %w", err)
	}
	adapter := gridnav.New(grid)
	start := gridnav.Coord{X: 0, Y: 0}
	goal := gridnav.Coord{X: 2, Y: 2}

	engine := dstarlite.New[gridnav.Coord](adapter, start, goal, dstarlite.WithLogger(logger))

	path, err := engine.Plan(context.Background())
	if err != nil {
		return fmt.Errorf("wall insertion: first plan: %w", err)
	}
	fmt.Println("wall insertion scenario: 3x3 grid, start=(0,0), goal=(2,2)")
	fmt.Printf("initial path: %v (length %d, expect 5)\n", path, len(path))

	v := gridnav.Coord{X: 1, Y: 1}
	for _, n := range adapter.Successors(v) {
		oldCost := adapter.Cost(n, v)
		engine.FlagCostChange(n, v, oldCost, costmodel.Inf)
		engine.FlagCostChange(v, n, oldCost, costmodel.Inf)
	}
	grid.SetCellCost(v, -1)

	path, err = engine.Plan(context.Background())
	if err != nil {
		return fmt.Errorf("wall insertion: replan: %w", err)
	}
	fmt.Printf("after wall: %v (length %d, expect 5)\n", path, len(path))
	return nil
}

// onlyRoute: 3x1 grid of zeros. First plan is a cost-2 path through
// the only corridor. Then the middle cell is walled; replan has no
// path left and returns empty.
func (w *WallCmd) onlyRoute(logger *log.Logger) error {
	grid, err := gridnav.NewGrid([][]int{{0, 0, 0}})
	if err != nil {
		return fmt.Errorf("wall blocks only route: %w", err)
	}
	adapter := gridnav.New(grid)
	start := gridnav.Coord{X: 0, Y: 0}
	goal := gridnav.Coord{X: 2, Y: 0}

	engine := dstarlite.New[gridnav.Coord](adapter, start, goal, dstarlite.WithLogger(logger))

	path, err := engine.Plan(context.Background())
	if err != nil {
		return fmt.Errorf("wall blocks only route: first plan: %w", err)
	}
	fmt.Println("wall blocks only route scenario: 3x1 grid, start=(0,0), goal=(2,0)")
	fmt.Printf("initial path: %v (cost %v, expect 2)\n", path, pathCost(adapter, path))

	middle := gridnav.Coord{X: 1, Y: 0}
	left := gridnav.Coord{X: 0, Y: 0}
	right := gridnav.Coord{X: 2, Y: 0}
	oldLeft := adapter.Cost(left, middle)
	oldRight := adapter.Cost(middle, right)
	engine.FlagCostChange(left, middle, oldLeft, costmodel.Inf)
	engine.FlagCostChange(middle, left, oldLeft, costmodel.Inf)
	engine.FlagCostChange(middle, right, oldRight, costmodel.Inf)
	engine.FlagCostChange(right, middle, oldRight, costmodel.Inf)
	grid.SetCellCost(middle, -1)

	path, err = engine.Plan(context.Background())
	if err != nil {
		return fmt.Errorf("wall blocks only route: replan: %w", err)
	}
	fmt.Printf("after wall: %v (expect empty)\n", path)
	return nil
}
