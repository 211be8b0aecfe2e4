package main

import (
	"github.com/waypointlabs/wayfarer/costmodel"
	"github.com/waypointlabs/wayfarer/oracle"
)

// pathCost sums the per-edge cost of a path as reported by o, for
// demo output only — the replanner itself never needs this, since
// Engine.Plan's g(start) already is this sum.
func pathCost[V comparable](o oracle.Oracle[V], path []V) costmodel.Cost {
	total := costmodel.Zero
	for i := 1; i < len(path); i++ {
		total = costmodel.Add(total, o.Cost(path[i-1], path[i]))
	}
	return total
}
