package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry of the service.
	Registry = prometheus.NewRegistry()

	AllocationRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "relief_allocation_runs_total", Help: "Allocation runs by outcome."},
		[]string{"outcome"},
	)
	PhaseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "relief_phase_duration_seconds", Help: "Duration of allocation run phases.", Buckets: prometheus.DefBuckets},
		[]string{"phase"},
	)
	UnitsRequested = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "relief_units_requested_total", Help: "Units requested by resource."},
		[]string{"resource"},
	)
	UnitsAllocated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "relief_units_allocated_total", Help: "Units allocated by resource."},
		[]string{"resource"},
	)
	DroppedRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "relief_dropped_rows_total", Help: "Input rows dropped before allocation, by kind and reason."},
		[]string{"kind", "reason"},
	)
	CoveragePct = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "relief_coverage_percent", Help: "Coverage percentage of the latest run."},
	)

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route", "status"},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on Registry. Safe to call more than once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(AllocationRuns)
		Registry.MustRegister(PhaseDuration)
		Registry.MustRegister(UnitsRequested)
		Registry.MustRegister(UnitsAllocated)
		Registry.MustRegister(DroppedRows)
		Registry.MustRegister(CoveragePct)
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// WriteTextfile dumps Registry in the node_exporter textfile format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("write metrics textfile %q: %w", path, err)
	}
	return nil
}
