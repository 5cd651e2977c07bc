package chain

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/codec"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

// Search resolves term to a transaction, mempool transaction or block when
// it is a 32 byte hash, and to a contract or standard address when it is a
// principal. Any other term is a DecodeError.
func Search(ctx context.Context, r ReadTx, term string) (model.SearchResult, bool, error) {
	term = strings.TrimSpace(term)
	if hash, ok := normalizeHash(term); ok {
		return searchHash(ctx, r, hash)
	}
	if codec.IsValidPrincipal(term) {
		return searchPrincipal(ctx, r, term)
	}
	return model.SearchResult{}, false, model.DecodeErrorf("search term", "%q is not a hash or principal", term)
}

func normalizeHash(term string) (string, bool) {
	h := strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(term, "0x"), "0X"))
	if len(h) != 64 {
		return "", false
	}
	if _, err := hex.DecodeString(h); err != nil {
		return "", false
	}
	return "0x" + h, true
}

func searchHash(ctx context.Context, r ReadTx, hash string) (model.SearchResult, bool, error) {
	tx, found, err := r.TxByID(ctx, hash)
	if err != nil {
		return model.SearchResult{}, false, fmt.Errorf("get tx: %w", err)
	}
	if found {
		return model.SearchResult{Entity: model.SearchTx, ID: hash, Tx: &tx}, true, nil
	}

	mtx, found, err := r.MempoolTx(ctx, hash)
	if err != nil {
		return model.SearchResult{}, false, fmt.Errorf("get mempool tx: %w", err)
	}
	if found {
		return model.SearchResult{Entity: model.SearchMempoolTx, ID: hash, MempoolTx: &mtx}, true, nil
	}

	block, found, err := r.BlockByHash(ctx, hash)
	if err != nil {
		return model.SearchResult{}, false, fmt.Errorf("get block: %w", err)
	}
	if found {
		return model.SearchResult{Entity: model.SearchBlock, ID: hash, Block: &block}, true, nil
	}
	return model.SearchResult{}, false, nil
}

func searchPrincipal(ctx context.Context, r ReadTx, principal string) (model.SearchResult, bool, error) {
	if codec.IsContractPrincipal(principal) {
		mtx, found, err := r.MempoolTxByContractID(ctx, principal)
		if err != nil {
			return model.SearchResult{}, false, fmt.Errorf("get mempool contract deploy: %w", err)
		}
		if found {
			return model.SearchResult{Entity: model.SearchContractAddress, ID: principal, MempoolTx: &mtx}, true, nil
		}

		tx, found, err := r.TxByContractID(ctx, principal)
		if err != nil {
			return model.SearchResult{}, false, fmt.Errorf("get contract deploy: %w", err)
		}
		if found {
			return model.SearchResult{Entity: model.SearchContractAddress, ID: principal, Tx: &tx}, true, nil
		}
		return model.SearchResult{}, false, nil
	}

	seen, err := r.PrincipalSeen(ctx, principal)
	if err != nil {
		return model.SearchResult{}, false, fmt.Errorf("get principal activity: %w", err)
	}
	if !seen {
		return model.SearchResult{}, false, nil
	}
	return model.SearchResult{Entity: model.SearchStandardAddress, ID: principal}, true, nil
}
