package graph

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// storeMetrics instruments the store when WithMetrics is configured.
// Gauges are refreshed under the store lock (syncGauges); the mutation
// counter and version gauge are driven by the change notifier.
type storeMetrics struct {
	mutations *prometheus.CounterVec
	version   prometheus.Gauge
	nodeCount prometheus.Gauge
	edgeCount prometheus.Gauge
}

func newStoreMetrics(reg prometheus.Registerer) *storeMetrics {
	f := promauto.With(reg)

	return &storeMetrics{
		mutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arachne",
			Subsystem: "graph",
			Name:      "mutations_total",
			Help:      "Version-bumping mutations applied to the store, by operation.",
		}, []string{"op"}),
		version: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "arachne",
			Subsystem: "graph",
			Name:      "version",
			Help:      "Current store version (-1 until first mutation).",
		}),
		nodeCount: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "arachne",
			Subsystem: "graph",
			Name:      "nodes",
			Help:      "Number of valid nodes.",
		}),
		edgeCount: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "arachne",
			Subsystem: "graph",
			Name:      "edges",
			Help:      "Number of valid edges.",
		}),
	}
}

// syncGauges refreshes the cardinality gauges. Caller must hold mu; no-op
// without WithMetrics.
func (g *Graph) syncGauges() {
	if g.metrics == nil {
		return
	}
	g.metrics.nodeCount.Set(float64(len(g.nodes)))
	g.metrics.edgeCount.Set(float64(len(g.edges)))
}
