package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/waypointlabs/wayfarer/dstarlite"
)

// recorder adapts dstarlite.Metrics into the three prometheus
// collectors SPEC_FULL.md §4.4 calls for: a replan counter, a
// per-replan vertices-expanded histogram, and a post-replan frontier-
// size gauge. newRecorder registers them against whatever registerer
// the caller hands in (serve.go uses a fresh prometheus.Registry, not
// the global default), and its sink method is handed to
// dstarlite.WithMetrics.
type recorder struct {
	replansTotal     prometheus.Counter
	verticesExpanded prometheus.Histogram
	frontierSize     prometheus.Gauge
}

func newRecorder(reg prometheus.Registerer) *recorder {
	return &recorder{
		replansTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "wayfarer",
			Subsystem: "dstarlite",
			Name:      "replans_total",
			Help:      "Number of completed Plan calls.",
		}),
		verticesExpanded: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: "wayfarer",
			Subsystem: "dstarlite",
			Name:      "vertices_expanded",
			Help:      "Vertices popped from the priority queue per Plan call.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		frontierSize: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: "wayfarer",
			Subsystem: "dstarlite",
			Name:      "frontier_size",
			Help:      "Priority queue size immediately after the most recent Plan call.",
		}),
	}
}

// sink satisfies dstarlite.WithMetrics' func(Metrics) signature.
func (r *recorder) sink(m dstarlite.Metrics) {
	r.replansTotal.Inc()
	r.verticesExpanded.Observe(float64(m.VerticesExpanded))
	r.frontierSize.Set(float64(m.QueueSizeAfter))
}
