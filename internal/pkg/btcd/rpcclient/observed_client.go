// Package rpcclient wraps the btcd JSON-RPC client with metrics.
package rpcclient

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
)

type (
	RPCMetrics interface {
		ObserveRPC(method string, err error, started time.Time)
	}
)

// Dial builds an HTTP POST mode client for a bitcoind endpoint.
func Dial(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("rpc url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   parsed.Scheme == "http",
	}
	return rpcclient.New(cfg, nil)
}

// ObservedClient is the subset of bitcoind calls used to check burn blocks.
type ObservedClient struct {
	client     *rpcclient.Client
	rpcMetrics RPCMetrics
}

func NewObservedClient(client *rpcclient.Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

func (r *ObservedClient) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.ObserveRPC("getblockcount", err, started)
	}()
	return r.client.GetBlockCount()
}

func (r *ObservedClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.ObserveRPC("getblockhash", err, started)
	}()
	return r.client.GetBlockHash(blockHeight)
}

// Shutdown stops the underlying client and waits for it.
func (r *ObservedClient) Shutdown() {
	r.client.Shutdown()
	r.client.WaitForShutdown()
}
