package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/goodnatureofminers/stacks-indexer/pkg/safe"
)

// SmartContract returns a deployed contract, preferring the canonical row.
func (s *session) SmartContract(ctx context.Context, contractID string) (model.SmartContract, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("smart_contract", err, start)
	}()

	var (
		c      model.SmartContract
		height int64
	)
	found, err := s.queryRow(ctx,
		psql.Select("tx_id", "contract_id", "block_height", "index_block_hash", "source_code", "abi", "canonical").
			From("smart_contracts").
			Where(sq.Eq{"contract_id": contractID}).
			OrderBy("canonical DESC", "block_height DESC").
			Limit(1),
		&c.TxID, &c.ContractID, &height, &c.IndexBlockHash, &c.SourceCode, &c.ABI, &c.Canonical,
	)
	if err != nil {
		return model.SmartContract{}, false, fmt.Errorf("query contract %s: %w", contractID, err)
	}
	if c.BlockHeight, err = safe.Uint64(height); err != nil {
		return model.SmartContract{}, false, fmt.Errorf("contract %s height: %w", contractID, err)
	}
	return c, found, nil
}

// PrincipalSeen reports whether a principal ever sent or received a
// transaction or an asset.
func (s *session) PrincipalSeen(ctx context.Context, principal string) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("principal_seen", err, start)
	}()

	probes := []sq.SelectBuilder{
		psql.Select("1").From("txs").Where(sq.Or{
			sq.Eq{"sender_address": principal},
			sq.Eq{"token_transfer_recipient_address": principal},
		}),
		psql.Select("1").From("stx_events").Where(senderOrRecipient(principal)),
		psql.Select("1").From("ft_events").Where(senderOrRecipient(principal)),
		psql.Select("1").From("nft_events").Where(senderOrRecipient(principal)),
	}
	for _, probe := range probes {
		var one int
		var found bool
		found, err = s.queryRow(ctx, probe.Limit(1), &one)
		if err != nil {
			return false, fmt.Errorf("probe principal %s: %w", principal, err)
		}
		if found {
			return true, nil
		}
	}
	return false, nil
}
