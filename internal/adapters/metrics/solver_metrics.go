package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// SolverMetricsCollector handles recipe chain solve and transport planning metrics
type SolverMetricsCollector struct {
	solvesTotal          *prometheus.CounterVec
	solveDurationSeconds prometheus.Histogram
	solveNodes           prometheus.Histogram
	solveFloors          prometheus.Histogram
	transportPlansTotal  *prometheus.CounterVec
}

// NewSolverMetricsCollector creates a new solver metrics collector
func NewSolverMetricsCollector() *SolverMetricsCollector {
	return &SolverMetricsCollector{
		solvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "solves_total",
				Help:      "Total recipe chain solves by status and error kind",
			},
			[]string{"status", "kind"},
		),

		solveDurationSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "solve_duration_seconds",
				Help:      "Recipe chain solve duration distribution",
				Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
			},
		),

		solveNodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "solve_nodes",
				Help:      "Number of production nodes in successful solves",
				Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 200},
			},
		),

		solveFloors: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "solve_floors",
				Help:      "Number of floors in successful solves",
				Buckets:   []float64{1, 2, 3, 4, 6, 8, 12, 16},
			},
		),

		transportPlansTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "transport_plans_total",
				Help:      "Total transport capacity plans by material class and whether demand was met",
			},
			[]string{"class", "satisfied"},
		),
	}
}

// Register registers all solver metrics with the Prometheus registry
func (c *SolverMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.solvesTotal,
		c.solveDurationSeconds,
		c.solveNodes,
		c.solveFloors,
		c.transportPlansTotal,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordSolve records one solve. kind is empty on success.
func (c *SolverMetricsCollector) RecordSolve(status string, kind string, nodes int, floors int, duration float64) {
	c.solvesTotal.WithLabelValues(status, kind).Inc()
	c.solveDurationSeconds.Observe(duration)
	if status == "success" {
		c.solveNodes.Observe(float64(nodes))
		c.solveFloors.Observe(float64(floors))
	}
}

// RecordTransportPlan records one transport plan
func (c *SolverMetricsCollector) RecordTransportPlan(class string, satisfied bool) {
	c.transportPlansTotal.WithLabelValues(class, strconv.FormatBool(satisfied)).Inc()
}
