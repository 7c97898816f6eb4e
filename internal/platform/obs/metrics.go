package obs

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	opDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "thermal_operation_duration_seconds",
			Help:    "Duration of timed internal operations",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"op"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	simulationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simulations_total",
			Help: "Completed delivery simulations by transport and satisfaction index",
		},
		[]string{"transport", "index"},
	)

	simulationWarningsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simulation_warnings_total",
			Help: "Numeric degeneracies absorbed during simulation",
		},
		[]string{"kind"},
	)

	routeCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "route_cache_lookups_total",
			Help: "Route distance cache lookups by result",
		},
		[]string{"result"},
	)
)

func ObserveHTTP(method, path string, status int, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

func ObserveSimulation(transport string, index int, warningKinds []string) {
	simulationsTotal.WithLabelValues(transport, strconv.Itoa(index)).Inc()
	for _, k := range warningKinds {
		simulationWarningsTotal.WithLabelValues(k).Inc()
	}
}

// ObserveRouteCache records a cache hit (true) or miss.
func ObserveRouteCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	routeCacheLookups.WithLabelValues(result).Inc()
}
