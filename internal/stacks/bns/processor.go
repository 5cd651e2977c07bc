// Package bns turns BNS contract print events into name, namespace and
// subdomain rows.
package bns

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/decoder"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/goodnatureofminers/stacks-indexer/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	printTopic          = "print"
	defaultFetchWorkers = 4
	statusNameImport    = "name-import"
)

// Processor is a normalizer post processor for the BNS contract.
type Processor struct {
	contractID string
	fetcher    AttachmentFetcher
	cache      Cache
	store      NameStore
	workers    int
	logger     *zap.Logger
}

// NewProcessor builds a Processor for the BNS contract contractID. cache may
// be nil.
func NewProcessor(contractID string, fetcher AttachmentFetcher, cache Cache, store NameStore, workers int, logger *zap.Logger) *Processor {
	if workers <= 0 {
		workers = defaultFetchWorkers
	}
	return &Processor{
		contractID: contractID,
		fetcher:    fetcher,
		cache:      cache,
		store:      store,
		workers:    workers,
		logger:     logger.Named("bns"),
	}
}

// Name implements normalizer.PostProcessor.
func (p *Processor) Name() string {
	return "bns"
}

// Process stores the names and namespaces printed by BNS calls in the block.
func (p *Processor) Process(ctx context.Context, block *decoder.ParsedBlock, update *model.BlockUpdate) error {
	var (
		names      []model.BNSName
		namespaces []model.BNSNamespace
	)
	for _, ev := range block.Events {
		if ev.Type != decoder.EventContract || ev.Topic != printTopic || ev.ContractIdentifier != p.contractID {
			continue
		}
		tx, ok := block.Tx(ev.TxID)
		if !ok {
			continue
		}

		switch tx.FunctionName() {
		case FunctionNameImport:
			imported, err := parseNameImport(ev.Value)
			if err != nil {
				return fmt.Errorf("parse name-import of tx %s: %w", ev.TxID, err)
			}
			names = append(names, model.BNSName{
				Name:           imported.Name,
				Address:        imported.Owner,
				Namespace:      imported.Namespace,
				RegisteredAt:   update.Block.BlockHeight,
				ZonefileHash:   imported.ZonefileHash,
				TxID:           ev.TxID,
				IndexBlockHash: update.Block.IndexBlockHash,
				Status:         statusNameImport,
				Canonical:      update.Block.Canonical,
			})
		case FunctionNamespaceReady:
			ns, err := parseNamespaceReady(ev.Value)
			if err != nil {
				return fmt.Errorf("parse namespace-ready of tx %s: %w", ev.TxID, err)
			}
			ns.TxID = ev.TxID
			ns.IndexBlockHash = update.Block.IndexBlockHash
			ns.Canonical = update.Block.Canonical
			namespaces = append(namespaces, ns)
		}
	}
	if len(names) == 0 && len(namespaces) == 0 {
		return nil
	}

	subdomains := p.resolveZonefiles(ctx, names)
	if err := p.store.UpdateNames(ctx, names, namespaces, subdomains); err != nil {
		return err
	}
	p.logger.Info("stored bns rows",
		zap.String("index_block_hash", update.Block.IndexBlockHash),
		zap.Int("names", len(names)),
		zap.Int("namespaces", len(namespaces)),
		zap.Int("subdomains", len(subdomains)),
	)
	return nil
}

// resolveZonefiles fills in the zonefile of every name and returns the
// subdomains they publish. A name whose zonefile cannot be loaded is kept
// without one.
func (p *Processor) resolveZonefiles(ctx context.Context, names []model.BNSName) []model.BNSSubdomain {
	results := workerpool.Map(ctx, p.workers, names, func(ctx context.Context, name model.BNSName) ([]byte, error) {
		return p.zonefile(ctx, name.ZonefileHash)
	})

	var subdomains []model.BNSSubdomain
	for _, r := range results {
		name := &names[r.Index]
		if r.Err != nil {
			p.logger.Warn("zonefile unavailable",
				zap.String("name", name.Name),
				zap.String("zonefile_hash", name.ZonefileHash),
				zap.Error(r.Err),
			)
			continue
		}
		name.Zonefile = string(r.Value)

		subs, err := ParseSubdomains(name.Zonefile, *name)
		if err != nil {
			p.logger.Warn("invalid subdomain records", zap.String("name", name.Name), zap.Error(err))
			continue
		}
		subdomains = append(subdomains, subs...)
	}
	return subdomains
}

func (p *Processor) zonefile(ctx context.Context, hash string) ([]byte, error) {
	if p.cache != nil {
		zonefile, found, err := p.cache.Get(ctx, hash)
		if err != nil {
			p.logger.Debug("zonefile cache get failed", zap.String("zonefile_hash", hash), zap.Error(err))
		}
		if found {
			return zonefile, nil
		}
	}

	zonefile, err := p.fetcher.Attachment(ctx, hash)
	if err != nil {
		return nil, err
	}
	if p.cache != nil {
		if err := p.cache.Set(ctx, hash, zonefile); err != nil {
			p.logger.Debug("zonefile cache set failed", zap.String("zonefile_hash", hash), zap.Error(err))
		}
	}
	return zonefile, nil
}
