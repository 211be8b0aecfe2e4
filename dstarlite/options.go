package dstarlite

import (
	"io"

	"github.com/charmbracelet/log"
)

// config holds Engine construction-time configuration assembled from
// Option values, using the same functional-options style as the rest
// of this module (dijkstra.Option, graphmodel.GraphOption).
type config struct {
	logger            *log.Logger
	metricsSink       func(Metrics)
	consistencyChecks bool
}

// Option configures an Engine at construction time.
type Option func(*config)

// WithLogger attaches a structured logger. Engine logs one debug line
// per vertex popped in compute_shortest_path and one info line per
// completed Plan; with no
// logger set, logging is a no-op.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMetrics registers a callback invoked once at the end of every
// Plan call with that call's Metrics. Intended for wiring into a
// prometheus registry (see cmd/navdemo).
func WithMetrics(sink func(Metrics)) Option {
	return func(c *config) { c.metricsSink = sink }
}

// WithConsistencyChecks enables an extra admissibility/consistency
// assertion on the oracle's Heuristic before each Plan's
// compute_shortest_path loop: for every successor s' of start,
// h(start, goal) <= c(start, s') + h(s', goal) must hold within a
// small epsilon. Violations are logged (via WithLogger, if set) rather
// than returned as an error, since a degraded-but-nonfatal heuristic
// is recoverable per this package's failure semantics; enable only in
// development, since it adds an O(degree(start)) check to every Plan.
func WithConsistencyChecks() Option {
	return func(c *config) { c.consistencyChecks = true }
}

func defaultConfig() config {
	return config{
		logger: log.New(io.Discard),
	}
}
