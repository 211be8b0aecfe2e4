package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/waypointlabs/wayfarer/dstarlite"
	"github.com/waypointlabs/wayfarer/gridnav"
)

// CorridorCmd reproduces SPEC_FULL.md §8 scenario 1: a 5x1 grid of
// zero-cost cells, start=(0,0), goal=(4,0). Plan must return the five
// cells in order with g(start)=4.
type CorridorCmd struct{}

func (c *CorridorCmd) Run(logger *log.Logger) error {
	grid, err := gridnav.NewGrid([][]int{{0, 0, 0, 0, 0}})
	if err != nil {
		return fmt.Errorf("corridor: %w", err)
	}
	adapter := gridnav.New(grid)
	start := gridnav.Coord{X: 0, Y: 0}
	goal := gridnav.Coord{X: 4, Y: 0}

	engine := dstarlite.New[gridnav.Coord](adapter, start, goal, dstarlite.WithLogger(logger))

	path, err := engine.Plan(context.Background())
	if err != nil {
		return fmt.Errorf("corridor: plan: %w", err)
	}

	fmt.Println("corridor scenario: 5x1 grid, start=(0,0), goal=(4,0)")
	fmt.Printf("path: %v\n", path)
	fmt.Printf("path length: %d (expect 5)\n", len(path))
	return nil
}
