package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/waypointlabs/wayfarer/dstarlite"
	"github.com/waypointlabs/wayfarer/gridnav"
)

// MovingStartCmd reproduces SPEC_FULL.md §8 scenario 4: a 5x5 grid of
// zeros, goal=(4,4), start=(0,0). The first plan costs 8. After
// UpdateStart((2,2)), the next plan costs 4, without re-keying the
// whole priority queue.
type MovingStartCmd struct{}

func (m *MovingStartCmd) Run(logger *log.Logger) error {
	rows := make([][]int, 5)
	for i := range rows {
		rows[i] = []int{0, 0, 0, 0, 0}
	}
	grid, err := gridnav.NewGrid(rows)
	if err != nil {
		return fmt.Errorf("moving-start: %w", err)
	}
	adapter := gridnav.New(grid)
	start := gridnav.Coord{X: 0, Y: 0}
	goal := gridnav.Coord{X: 4, Y: 4}

	engine := dstarlite.New[gridnav.Coord](adapter, start, goal, dstarlite.WithLogger(logger))

	path, err := engine.Plan(context.Background())
	if err != nil {
		return fmt.Errorf("moving-start: first plan: %w", err)
	}
	fmt.Println("moving start scenario: 5x5 grid, goal=(4,4), start=(0,0)")
	fmt.Printf("initial path cost: %v (expect 8)\n", pathCost(adapter, path))

	newStart := gridnav.Coord{X: 2, Y: 2}
	engine.UpdateStart(newStart)

	path, err = engine.Plan(context.Background())
	if err != nil {
		return fmt.Errorf("moving-start: replan: %w", err)
	}
	fmt.Printf("after UpdateStart(%v): path cost %v (expect 4)\n", newStart, pathCost(adapter, path))
	return nil
}
