package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rpc_client",
		Name:      "requests_total",
		Help:      "Count of outbound RPC calls.",
	}, []string{"client", "method", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "rpc_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of outbound RPC calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"client", "method", "status"})
)

// RPCClient tracks calls made to one remote node.
type RPCClient struct {
	client string
}

// NewRPCClient constructs an RPCClient labelled with the remote's name.
func NewRPCClient(client string) *RPCClient {
	if client == "" {
		client = "unknown"
	}
	return &RPCClient{client: client}
}

// ObserveRPC records a call outcome and duration.
func (m RPCClient) ObserveRPC(method string, err error, started time.Time) {
	s := status(err)
	rpcRequestsTotal.WithLabelValues(m.client, method, s).Inc()
	rpcRequestDuration.WithLabelValues(m.client, method, s).Observe(time.Since(started).Seconds())
}
