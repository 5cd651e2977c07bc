// Package repository defines the session interfaces storage backends expose
// to the datastore service.
package repository

import (
	"context"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/chain"
)

type (
	// WriteSession is an open write transaction.
	WriteSession interface {
		chain.WriteTx
		Commit() error
		Rollback() error
	}

	// ReadSession is an open read-only snapshot.
	ReadSession interface {
		chain.ReadTx
		Rollback() error
	}

	// Backend opens storage sessions. At most one write session is expected
	// to be open at a time.
	Backend interface {
		BeginWrite(ctx context.Context) (WriteSession, error)
		BeginRead(ctx context.Context) (ReadSession, error)
		Close() error
	}
)
