package engine

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var metrics = []prometheus.Collector{
	topUpsDispatched,
	evaluationsSkipped,
}

var topUpsDispatched = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "top_ups_dispatched_total",
		Help: "How many savings top-ups were dispatched.",
	},
)

var evaluationsSkipped = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "evaluations_skipped_total",
		Help: "How many pre-transfer evaluations ended without a dispatch, partitioned by reason.",
	},
	[]string{"reason"},
)

// RegisterMetrics registers the engine metrics with the default registry.
func RegisterMetrics() error {
	for _, c := range metrics {
		if err := prometheus.Register(c); err != nil {
			return fmt.Errorf("could not register %s with Prometheus", c)
		}
	}

	return nil
}

// UnregisterMetrics unregisters the engine metrics.
//
// This is needed to cleanly exit.
func UnregisterMetrics() bool {
	for _, c := range metrics {
		if ok := prometheus.Unregister(c); !ok {
			return false
		}
	}

	return true
}
