// Package metrics exposes Prometheus collectors for route queries and the
// loaded graph. A *Metrics is a dijkstra.Observer, so wiring it into an
// engine is a single dijkstra.WithObserver option.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/cityroute/citygraph"
	"github.com/katalvlaran/cityroute/dijkstra"
)

// Query outcome label values.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeRejected    = "rejected"
)

// Metrics holds all Prometheus collectors of cityroute.
type Metrics struct {
	// Query metrics
	QueriesTotal  *prometheus.CounterVec
	QueryDuration prometheus.Histogram
	SettledNodes  prometheus.Histogram
	Relaxations   prometheus.Histogram

	// Graph metrics
	GraphNodes prometheus.Gauge
	GraphEdges prometheus.Gauge
}

var _ dijkstra.Observer = (*Metrics)(nil)

// New creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which suits tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		QueriesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cityroute_queries_total",
				Help: "Total number of route queries by outcome",
			},
			[]string{"outcome"},
		),
		QueryDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cityroute_query_duration_seconds",
				Help:    "Route query duration in seconds",
				Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
		),
		SettledNodes: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cityroute_settled_nodes",
				Help:    "Number of nodes settled per route query",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		Relaxations: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cityroute_relaxations",
				Help:    "Number of successful edge relaxations per route query",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		GraphNodes: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "cityroute_graph_nodes",
				Help: "Number of cities in the loaded graph",
			},
		),
		GraphEdges: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "cityroute_graph_edges",
				Help: "Number of roads in the loaded graph",
			},
		),
	}
}

// ObserveQuery records one completed query.
func (m *Metrics) ObserveQuery(s dijkstra.QueryStats) {
	outcome := OutcomeUnreachable
	if s.Found {
		outcome = OutcomeFound
	}
	m.QueriesTotal.WithLabelValues(outcome).Inc()
	m.QueryDuration.Observe(s.Duration.Seconds())
	m.SettledNodes.Observe(float64(s.Settled))
	m.Relaxations.Observe(float64(s.Relaxations))
}

// RecordRejected counts a query refused before the engine ran.
func (m *Metrics) RecordRejected() {
	m.QueriesTotal.WithLabelValues(OutcomeRejected).Inc()
}

// SetGraph publishes the size of g. A nil graph zeroes both gauges.
func (m *Metrics) SetGraph(g *citygraph.Graph) {
	if g == nil {
		m.GraphNodes.Set(0)
		m.GraphEdges.Set(0)
		return
	}
	m.GraphNodes.Set(float64(g.NodeCount()))
	m.GraphEdges.Set(float64(g.EdgeCount()))
}
