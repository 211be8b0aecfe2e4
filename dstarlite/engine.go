package dstarlite

import (
	"context"

	"github.com/waypointlabs/wayfarer/changelog"
	"github.com/waypointlabs/wayfarer/costmodel"
	"github.com/waypointlabs/wayfarer/ipq"
	"github.com/waypointlabs/wayfarer/oracle"
)

// Engine is the Incremental Replanner for vertex identities of type V.
// The zero value is not usable; construct with New.
//
// Concurrency: per this package's single-threaded-cooperative model,
// Plan, UpdateStart, and the internal state it reads/writes are not
// safe for concurrent use. FlagCostChange is the one exception — it
// only appends to an internal changelog.Log and may be called freely
// from other goroutines while a Plan call is in flight.
type Engine[V comparable] struct {
	cfg config

	oracle oracle.Oracle[V]
	start  V
	goal   V

	lastStart V
	km        costmodel.Cost

	records map[V]record
	queue   *ipq.Queue[V]
	log     *changelog.Log[V]
}

// New constructs an Engine rooted at goal, with the search initially
// aimed from start. The initial state inserts goal into the priority
// queue with rhs(goal) = 0, per this algorithm's goal-rooted
// construction.
func New[V comparable](o oracle.Oracle[V], start, goal V, opts ...Option) *Engine[V] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine[V]{
		cfg:       cfg,
		oracle:    o,
		start:     start,
		goal:      goal,
		lastStart: start,
		km:        costmodel.Zero,
		records:   make(map[V]record),
		queue:     ipq.New[V](),
		log:       changelog.New[V](),
	}

	goalRec := newRecord()
	goalRec.rhs = costmodel.Zero
	e.records[goal] = goalRec
	e.queue.Add(goal, e.key(goal))

	return e
}

// Start returns the engine's current start vertex.
func (e *Engine[V]) Start() V { return e.start }

// Goal returns the engine's fixed goal vertex.
func (e *Engine[V]) Goal() V { return e.goal }

// FlagCostChange records that the edge from u to v changed cost from
// oldCost to newCost. The change is not applied to (g, rhs) until the
// next Plan call. Safe to call concurrently with Plan and with other
// FlagCostChange calls. For an undirected oracle, callers must report
// both (u, v) and (v, u).
func (e *Engine[V]) FlagCostChange(u, v V, oldCost, newCost costmodel.Cost) {
	e.log.Append(changelog.Change[V]{From: u, To: v, OldCost: oldCost, NewCost: newCost})
}

// UpdateStart moves the engine's start vertex. The priority queue is
// not re-keyed; instead the key offset k_m absorbs the heuristic
// distance traveled, so stale keys already in the queue remain
// conservative lower bounds. Calling UpdateStart(s) twice in a row
// with the same s is equivalent to calling it once.
func (e *Engine[V]) UpdateStart(newStart V) {
	if newStart == e.start {
		return
	}
	e.km = costmodel.Add(e.km, e.oracle.Heuristic(e.lastStart, newStart))
	e.lastStart = newStart
	e.start = newStart
}

// Plan drains the pending change log, restores (g, rhs) consistency,
// and returns the ordered start-to-goal path, or an empty slice if
// g(start) is infinite (no path exists). ctx is checked once per
// compute_shortest_path iteration; a cancelled ctx stops the loop
// early and returns ctx.Err(), leaving internal state consistent and
// safe to resume on the next Plan call.
func (e *Engine[V]) Plan(ctx context.Context) ([]V, error) {
	batch := e.log.Drain()
	for _, ch := range batch.Changes {
		if err := e.checkCost(ch.NewCost); err != nil {
			return nil, err
		}
		e.updateVertex(ch.From)
	}

	if e.cfg.consistencyChecks {
		e.checkHeuristicConsistency()
	}

	metrics := Metrics{}
	if err := e.computeShortestPath(ctx, &metrics); err != nil {
		return nil, err
	}

	path, err := e.extractPath()
	if err != nil {
		return nil, err
	}
	metrics.QueueSizeAfter = e.queue.Size()
	metrics.PathLength = len(path)

	e.cfg.logger.Info("plan complete",
		"start", e.start, "goal", e.goal,
		"expanded", metrics.VerticesExpanded,
		"path_length", metrics.PathLength,
		"queue_size", metrics.QueueSizeAfter,
		"changes_applied", len(batch.Changes),
		"batch_id", batch.ID,
	)
	if e.cfg.metricsSink != nil {
		e.cfg.metricsSink(metrics)
	}
	return path, nil
}

func (e *Engine[V]) checkCost(c costmodel.Cost) error {
	if !c.IsInf() && c < costmodel.Zero {
		return ErrNegativeCost
	}
	return nil
}

// get returns v's current (g, rhs), defaulting to (Inf, Inf) for a
// vertex never touched, per this package's failure semantics: missing
// records never cause a lookup failure.
func (e *Engine[V]) get(v V) record {
	if r, ok := e.records[v]; ok {
		return r
	}
	return newRecord()
}

func (e *Engine[V]) set(v V, r record) {
	e.records[v] = r
}

// key computes this algorithm's comparison key for v: the primary
// component is min(g,rhs)(v) + h(start,v) + k_m; the secondary
// component is min(g,rhs)(v) alone, breaking ties in favor of the
// better-confirmed estimate. Costs can reach costmodel.Inf, so this
// uses costmodel.Add rather than raw float addition.
func (e *Engine[V]) key(v V) ipq.Key {
	r := e.get(v)
	m := costmodel.Min(r.g, r.rhs)
	primary := costmodel.Add(costmodel.Add(m, e.oracle.Heuristic(e.start, v)), e.km)
	return ipq.Key{Primary: primary, Secondary: m}
}

// updateVertex recomputes rhs(v) (unless v is the goal, whose rhs is
// fixed at zero) and reconciles v's presence on the priority queue
// with whether g(v) == rhs(v).
func (e *Engine[V]) updateVertex(v V) {
	if v != e.goal {
		best := costmodel.Inf
		for _, succ := range e.oracle.Successors(v) {
			c := e.oracle.Cost(v, succ)
			if c.IsInf() {
				continue
			}
			cand := costmodel.Add(c, e.get(succ).g)
			best = costmodel.Min(best, cand)
		}
		r := e.get(v)
		r.rhs = best
		e.set(v, r)
	}

	if e.queue.Contains(v) {
		_ = e.queue.Remove(v)
	}

	r := e.get(v)
	if r.g != r.rhs {
		e.queue.Add(v, e.key(v))
	}
}

// computeShortestPath is this algorithm's main loop: pop the minimum-
// key vertex, reconcile over/under-consistency, and propagate to
// predecessors, until the queue's minimum key no longer beats
// key(start) and start itself is locally consistent.
func (e *Engine[V]) computeShortestPath(ctx context.Context, metrics *Metrics) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		top, ok := e.queue.Peek()
		if !ok {
			startRec := e.get(e.start)
			if startRec.g != startRec.rhs {
				e.cfg.logger.Warn("priority queue exhausted before convergence; reporting no path",
					"start", e.start, "goal", e.goal)
			}
			return nil
		}

		kOld, _ := e.queue.PeekKey()
		startKey := e.key(e.start)
		startRec := e.get(e.start)
		if !kOld.Less(startKey) && startRec.g == startRec.rhs {
			return nil
		}

		kNew := e.key(top)
		if kOld.Less(kNew) {
			_ = e.queue.Update(top, kNew)
			continue
		}

		_, _ = e.queue.Poll()
		metrics.VerticesExpanded++

		r := e.get(top)
		e.cfg.logger.Debug("update_vertex", "vertex", top, "g", r.g, "rhs", r.rhs)

		if costmodel.Less(r.rhs, r.g) {
			r.g = r.rhs
			e.set(top, r)
			for _, pred := range e.oracle.Predecessors(top) {
				e.updateVertex(pred)
			}
		} else {
			r.g = costmodel.Inf
			e.set(top, r)
			e.updateVertex(top)
			for _, pred := range e.oracle.Predecessors(top) {
				e.updateVertex(pred)
			}
		}
	}
}

// extractPath walks forward from start to goal, at each step choosing
// the successor minimizing c(current, successor) + g(successor). It
// never stores or needs parent pointers.
func (e *Engine[V]) extractPath() ([]V, error) {
	startRec := e.get(e.start)
	if startRec.g.IsInf() {
		return nil, nil
	}

	path := []V{e.start}
	current := e.start
	for current != e.goal {
		successors := e.oracle.Successors(current)
		best := costmodel.Inf
		var next V
		found := false
		for _, s := range successors {
			c := e.oracle.Cost(current, s)
			if c.IsInf() {
				continue
			}
			cand := costmodel.Add(c, e.get(s).g)
			if !found || costmodel.Less(cand, best) {
				best = cand
				next = s
				found = true
			}
		}
		if !found || best.IsInf() {
			return nil, nil
		}
		path = append(path, next)
		current = next
	}
	return path, nil
}

// checkHeuristicConsistency logs (via WithLogger) any successor of
// start whose heuristic triangle inequality is violated, per
// WithConsistencyChecks' contract: this diagnostic never fails Plan,
// it only surfaces a degraded heuristic.
func (e *Engine[V]) checkHeuristicConsistency() {
	const epsilon = 1e-9
	hStartGoal := e.oracle.Heuristic(e.start, e.goal)
	for _, s := range e.oracle.Successors(e.start) {
		c := e.oracle.Cost(e.start, s)
		if c.IsInf() {
			continue
		}
		bound := costmodel.Add(c, e.oracle.Heuristic(s, e.goal))
		if float64(hStartGoal) > float64(bound)+epsilon {
			e.cfg.logger.Warn("heuristic inconsistency detected",
				"start", e.start, "successor", s,
				"h(start,goal)", hStartGoal, "c+h(successor,goal)", bound)
		}
	}
}
