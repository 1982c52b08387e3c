package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	storeOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "clubhouse",
		Subsystem: "recordstore",
		Name:      "operations_total",
		Help:      "Record store operations by store, operation and result.",
	}, []string{"store", "op", "result"})
	storeDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "clubhouse",
		Subsystem: "recordstore",
		Name:      "operation_duration_seconds",
		Help:      "Latency of record store operations.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"store", "op"})
)

func init() {
	prometheus.MustRegister(storeOperations, storeDuration)
}

// ObserveStoreOperation matches recordstore.Observer.
func ObserveStoreOperation(store, op string, elapsed time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	storeOperations.WithLabelValues(store, op, result).Inc()
	storeDuration.WithLabelValues(store, op).Observe(elapsed.Seconds())
}
