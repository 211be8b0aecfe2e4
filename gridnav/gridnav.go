// Package gridnav adapts a dense 2D grid of integer cell costs into an
// oracle.Oracle[Coord] for the incremental replanner (package
// dstarlite). It computes edge costs with a weighted, symmetric
// cost-floor formula ((cA+cB)/2+1) rather than a plain unit-weight
// conversion;
// connected-component analysis and inter-component path expansion are
// out of scope here (that concern belongs to map preprocessing; see
// DESIGN.md).
package gridnav

import "github.com/waypointlabs/wayfarer/costmodel"

// Coord is a grid cell identity: (X, Y), zero-indexed from the
// grid's top-left corner.
type Coord struct {
	X, Y int
}

// Grid is a fixed-size rectangular grid of integer cell costs; cell
// values change only through SetCellCost.
// Negative values mark untraversable cells (walls).
type Grid struct {
	width, height int
	cells         [][]int
}

// NewGrid deep-copies values into a Grid. Returns ErrEmptyGrid if
// values has no rows or no columns, ErrNonRectangular if any row's
// length differs from the first.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(values[0])
	cells := make([][]int, len(values))
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = make([]int, w)
		copy(cells[y], row)
	}
	return &Grid{width: w, height: len(values), cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// CellCost returns the raw stored cost at c. Callers should prefer
// the Adapter's Cost method, which applies the wall/floor rules.
func (g *Grid) CellCost(c Coord) int {
	return g.cells[c.Y][c.X]
}

// SetCellCost overwrites the cost at c. It does not itself notify any
// dstarlite.Engine; callers must pair this with Engine.FlagCostChange
// for every edge touching c.
func (g *Grid) SetCellCost(c Coord, cost int) {
	g.cells[c.Y][c.X] = cost
}

var cardinalOffsets = [4]Coord{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// Adapter implements oracle.Oracle[Coord] over a *Grid using 4-way
// (cardinal) connectivity, the (cA+cB)/2+1 edge-cost floor, and a
// Manhattan-distance heuristic.
type Adapter struct {
	grid *Grid
}

// New wraps grid for use as a dstarlite oracle.
func New(grid *Grid) *Adapter {
	return &Adapter{grid: grid}
}

func (a *Adapter) neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range cardinalOffsets {
		n := Coord{X: c.X + d.X, Y: c.Y + d.Y}
		if a.grid.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

func (a *Adapter) Successors(c Coord) []Coord   { return a.neighbors(c) }
func (a *Adapter) Predecessors(c Coord) []Coord { return a.neighbors(c) }

// Cost returns (m(u)+m(v))/2 + 1 where m is the cell cost, or
// costmodel.Inf if either cell carries a negative (wall) cost or v is
// not a cardinal neighbor of u.
func (a *Adapter) Cost(u, v Coord) costmodel.Cost {
	if !a.grid.InBounds(u) || !a.grid.InBounds(v) {
		return costmodel.Inf
	}
	if abs(u.X-v.X)+abs(u.Y-v.Y) != 1 {
		return costmodel.Inf
	}
	cu, cv := a.grid.CellCost(u), a.grid.CellCost(v)
	if cu < 0 || cv < 0 {
		return costmodel.Inf
	}
	return costmodel.Cost(float64(cu+cv)/2+1)
}

// Heuristic returns the Manhattan distance between a and b, admissible
// and consistent under this adapter's cost floor (every edge costs at
// least 1).
func (a *Adapter) Heuristic(u, v Coord) costmodel.Cost {
	return costmodel.Cost(abs(u.X-v.X) + abs(u.Y-v.Y))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
