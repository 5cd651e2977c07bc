package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	zonefileCacheRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "zonefile_cache",
		Name:      "operations_total",
		Help:      "Count of zonefile cache operations.",
	}, []string{"operation", "result"})
	zonefileCacheRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "zonefile_cache",
		Name:      "operation_duration_seconds",
		Help:      "Duration of zonefile cache operations.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
	}, []string{"operation", "result"})
)

// ZonefileCache tracks the BNS zonefile cache.
type ZonefileCache struct{}

func NewZonefileCache() *ZonefileCache {
	return &ZonefileCache{}
}

// ObserveCache records an operation. result is hit, miss or error.
func (m ZonefileCache) ObserveCache(op string, hit bool, err error, started time.Time) {
	result := "miss"
	switch {
	case err != nil:
		result = "error"
	case hit:
		result = "hit"
	}
	zonefileCacheRequestsTotal.WithLabelValues(op, result).Inc()
	zonefileCacheRequestDuration.WithLabelValues(op, result).Observe(time.Since(started).Seconds())
}
