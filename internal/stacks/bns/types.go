package bns

import (
	"context"
	"time"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// AttachmentFetcher loads zonefile content from the node.
	AttachmentFetcher interface {
		Attachment(ctx context.Context, hash string) ([]byte, error)
	}

	// Cache keeps fetched zonefiles by hash.
	Cache interface {
		Get(ctx context.Context, hash string) ([]byte, bool, error)
		Set(ctx context.Context, hash string, zonefile []byte) error
	}

	// NameStore persists BNS rows.
	NameStore interface {
		UpdateNames(ctx context.Context, names []model.BNSName, namespaces []model.BNSNamespace, subdomains []model.BNSSubdomain) error
	}

	// CacheMetrics records cache lookups.
	CacheMetrics interface {
		ObserveCache(op string, hit bool, err error, started time.Time)
	}
)
