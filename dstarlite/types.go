// Package dstarlite implements the Incremental Replanner: an engine
// that maintains per-vertex (g, rhs) cost estimates consistent with a
// caller-supplied Oracle, a movable start, and a fixed goal, producing
// an optimal start-to-goal path on demand and reusing prior work
// across replans triggered by localized edge-cost changes.
//
// This is the repository's answer to full-replan-per-tick planners:
// the cost of reacting to a sensor update scales with how much of the
// map it actually touches, not with the map's size. The algorithm is
// D*-Lite; see Koenig & Likhachev, "D* Lite" (AAAI 2002).
//
// Engine never imports graphmodel or gridnav directly — it only knows
// oracle.Oracle[V] and costmodel.Cost, mirroring how the dijkstra, bfs,
// and prim_kruskal one-shot algorithms depend on a *graphmodel.Graph
// abstraction rather than any concrete map representation. Concrete
// routable spaces are wired in by graphnav and gridnav.
package dstarlite

import (
	"errors"

	"github.com/waypointlabs/wayfarer/costmodel"
)

// Sentinel errors surfaced by Engine. All are caller-misuse errors per
// this package's error-handling design: a negative cost or an unknown
// payload indicates the caller violated the Oracle or Engine contract,
// not a transient planning failure.
var (
	// ErrNegativeCost is returned by Plan when a change flagged via
	// FlagCostChange carries a negative new cost. Costs returned by the
	// oracle itself are not checked. Costs must be nonnegative or
	// costmodel.Inf.
	ErrNegativeCost = errors.New("dstarlite: negative edge cost")
)

// record holds one vertex's (g, rhs) estimate pair. Absent vertices
// are treated as (Inf, Inf) per the engine's failure semantics, so
// record is only materialized on first touch.
type record struct {
	g, rhs costmodel.Cost
}

func newRecord() record {
	return record{g: costmodel.Inf, rhs: costmodel.Inf}
}

// Metrics is the subset of engine internals exposed to a
// WithMetrics observer after every Plan call, for a caller to forward
// to whatever instrumentation it uses (see cmd/navdemo for a
// prometheus-backed example).
type Metrics struct {
	// VerticesExpanded counts vertices popped from the priority queue
	// inside this Plan's compute_shortest_path loop.
	VerticesExpanded int
	// QueueSizeAfter is the IPQ's size when Plan returned.
	QueueSizeAfter int
	// PathLength is the number of vertices in the returned path (0 if
	// no path was found).
	PathLength int
}
