package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "factory_planner"
	// Subsystem for solver metrics
	subsystem = "core"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalSolverCollector is the singleton solver metrics collector
	// Set by SetGlobalSolverCollector() when metrics are enabled
	globalSolverCollector SolverMetricsRecorder
)

// SolverMetricsRecorder defines the interface for recording solver and planner events
// This interface is used by application code to record metrics
type SolverMetricsRecorder interface {
	RecordSolve(status string, kind string, nodes int, floors int, duration float64)
	RecordTransportPlan(class string, satisfied bool)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// Reset drops the registry and global collector (metrics disabled)
func Reset() {
	Registry = nil
	globalSolverCollector = nil
}

// SetGlobalSolverCollector sets the global solver metrics collector
func SetGlobalSolverCollector(collector SolverMetricsRecorder) {
	globalSolverCollector = collector
}

// RecordSolve records a finished solve globally
func RecordSolve(status string, kind string, nodes int, floors int, duration float64) {
	if globalSolverCollector != nil {
		globalSolverCollector.RecordSolve(status, kind, nodes, floors, duration)
	}
}

// RecordTransportPlan records a transport capacity plan globally
func RecordTransportPlan(class string, satisfied bool) {
	if globalSolverCollector != nil {
		globalSolverCollector.RecordTransportPlan(class, satisfied)
	}
}

// WriteTextfile writes the registry in the node-exporter textfile format.
// Does nothing when metrics are disabled.
func WriteTextfile(path string) error {
	if Registry == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, Registry)
}
