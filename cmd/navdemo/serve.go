package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/waypointlabs/wayfarer/builder"
	"github.com/waypointlabs/wayfarer/costmodel"
	"github.com/waypointlabs/wayfarer/dstarlite"
	"github.com/waypointlabs/wayfarer/graphmodel"
	"github.com/waypointlabs/wayfarer/graphnav"
)

// ServeCmd starts a Prometheus /metrics endpoint and, in the
// background, replays a scripted sequence of FlagCostChange and
// UpdateStart calls against a builder-generated grid graph, logging
// each replan via charmbracelet/log. It runs until the listener fails
// or the process is interrupted; meant for interactive inspection
// (curl localhost:<port>/metrics), not for production deployment.
type ServeCmd struct {
	Addr     string        `default:":8090" help:"Address to serve /metrics on."`
	Interval time.Duration `default:"500ms" help:"Delay between scripted replanning steps."`
}

func (s *ServeCmd) Run(logger *log.Logger) error {
	reg := prometheus.NewRegistry()
	rec := newRecorder(reg)

	world, err := builder.BuildGraph(
		[]graphmodel.GraphOption{graphmodel.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(1)},
		builder.Grid(6, 6),
	)
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	adapter := graphnav.New(world, nil)

	engine := dstarlite.New[string](adapter, "0,0", "5,5",
		dstarlite.WithLogger(logger),
		dstarlite.WithMetrics(rec.sink),
	)

	go s.script(logger, engine, world)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	logger.Info("serving metrics", "addr", s.Addr)
	return http.ListenAndServe(s.Addr, mux)
}

// script walls off and reopens edges near the goal on a timer,
// UpdateStart-ing the engine between rounds, replanning after each
// mutation and logging the resulting path.
func (s *ServeCmd) script(logger *log.Logger, engine *dstarlite.Engine[string], world *graphmodel.Graph) {
	starts := []string{"0,0", "1,1", "2,2", "1,1", "0,0"}
	toll := [2]string{"4,5", "5,5"}

	for round := 0; ; round++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		path, err := engine.Plan(ctx)
		cancel()
		if err != nil {
			logger.Warn("scripted plan failed", "round", round, "error", err)
		} else {
			logger.Info("scripted plan", "round", round, "path_length", len(path))
		}

		time.Sleep(s.Interval)

		const tollWeight = 1
		if round%2 == 0 {
			// Wall the edge off: remove it from the graph so the
			// oracle's Cost reports Inf, and announce the same
			// transition to the engine.
			_ = world.RemoveEdge(toll[0], toll[1])
			engine.FlagCostChange(toll[0], toll[1], costmodel.Cost(tollWeight), costmodel.Inf)
			engine.FlagCostChange(toll[1], toll[0], costmodel.Cost(tollWeight), costmodel.Inf)
		} else {
			_ = world.AddEdge(toll[0], toll[1], tollWeight)
			engine.FlagCostChange(toll[0], toll[1], costmodel.Inf, costmodel.Cost(tollWeight))
			engine.FlagCostChange(toll[1], toll[0], costmodel.Inf, costmodel.Cost(tollWeight))
		}

		engine.UpdateStart(starts[round%len(starts)])
	}
}
