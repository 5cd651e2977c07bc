package metrics

import (
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainTipHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "chain",
		Name:      "tip_height",
		Help:      "Height of the canonical chain tip.",
	})
	chainReorgsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain",
		Name:      "reorgs_total",
		Help:      "Count of fork switches.",
	})
	chainReorgDepth = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "chain",
		Name:      "reorg_depth",
		Help:      "Number of blocks restored per fork switch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	})
	chainEntitiesFlipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain",
		Name:      "entities_flipped_total",
		Help:      "Rows whose canonical flag changed during fork switches.",
	}, []string{"direction"})
)

// ChainTip tracks the canonical tip and reorgs.
type ChainTip struct{}

func NewChainTip() *ChainTip {
	return &ChainTip{}
}

func (m ChainTip) ObserveChainTip(height uint64) {
	chainTipHeight.Set(float64(height))
}

// ObserveReorg records a fork switch and how many rows it flipped.
func (m ChainTip) ObserveReorg(depth int, entities model.UpdatedEntities) {
	chainReorgsTotal.Inc()
	chainReorgDepth.Observe(float64(depth))
	chainEntitiesFlipped.WithLabelValues("canonical").Add(float64(entities.MarkedCanonical.Total()))
	chainEntitiesFlipped.WithLabelValues("non_canonical").Add(float64(entities.MarkedNonCanonical.Total()))
}
