package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mirrorFlushesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mirror",
		Name:      "flushes_total",
		Help:      "Count of mirror batch flushes.",
	}, []string{"status"})
	mirrorFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "mirror",
		Name:      "flush_size",
		Help:      "Number of blocks per mirror flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})
)

// Mirror tracks the analytics mirror writer.
type Mirror struct{}

func NewMirror() *Mirror {
	return &Mirror{}
}

func (m Mirror) ObserveFlush(size int, err error) {
	mirrorFlushesTotal.WithLabelValues(status(err)).Inc()
	mirrorFlushSize.Observe(float64(size))
}
