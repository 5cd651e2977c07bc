package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingesterMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "messages_total",
		Help:      "Count of handled node messages.",
	}, []string{"kind", "status"})
	ingesterMessageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "message_duration_seconds",
		Help:      "Duration of handling a node message.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "status"})
	ingesterQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "queue_depth",
		Help:      "Messages waiting to be handled.",
	})
)

// Ingester tracks the serialized ingestion queue.
type Ingester struct{}

func NewIngester() *Ingester {
	return &Ingester{}
}

// ObserveMessage records a handled message by kind.
func (m Ingester) ObserveMessage(kind string, err error, started time.Time) {
	s := status(err)
	ingesterMessagesTotal.WithLabelValues(kind, s).Inc()
	ingesterMessageDuration.WithLabelValues(kind, s).Observe(time.Since(started).Seconds())
}

func (m Ingester) SetQueueDepth(depth int) {
	ingesterQueueDepth.Set(float64(depth))
}
