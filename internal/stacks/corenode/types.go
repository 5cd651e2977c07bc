package corenode

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records node RPC calls.
	Metrics interface {
		ObserveRPC(method string, err error, started time.Time)
	}
)
