package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

// MarkEntitiesCanonical sets the canonical flag of every row owned by the
// block and returns how many rows changed per table.
func (s *session) MarkEntitiesCanonical(ctx context.Context, indexBlockHash string, canonical bool) (model.MarkedEntities, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("mark_entities_canonical", err, start)
	}()

	var marked model.MarkedEntities
	marked.TxIDs, marked.Counts.Txs, err = s.markTxs(ctx, indexBlockHash, canonical)
	if err != nil {
		return model.MarkedEntities{}, err
	}

	for _, target := range []struct {
		table string
		count *int
	}{
		{"miner_rewards", &marked.Counts.MinerRewards},
		{"stx_lock_events", &marked.Counts.StxLockEvents},
		{"stx_events", &marked.Counts.StxEvents},
		{"ft_events", &marked.Counts.FtEvents},
		{"nft_events", &marked.Counts.NftEvents},
		{"contract_logs", &marked.Counts.ContractLogs},
		{"smart_contracts", &marked.Counts.SmartContracts},
	} {
		n, execErr := s.exec(ctx, markCanonical(target.table, indexBlockHash, canonical))
		if execErr != nil {
			err = fmt.Errorf("mark %s canonical=%v: %w", target.table, canonical, execErr)
			return model.MarkedEntities{}, err
		}
		*target.count = n
	}
	return marked, nil
}

func markCanonical(table, indexBlockHash string, canonical bool) sq.UpdateBuilder {
	return psql.Update(table).
		Set("canonical", canonical).
		Where(sq.Eq{"index_block_hash": indexBlockHash}).
		Where(sq.NotEq{"canonical": canonical})
}

func (s *session) markTxs(ctx context.Context, indexBlockHash string, canonical bool) ([]string, int, error) {
	rows, err := s.query(ctx, markCanonical("txs", indexBlockHash, canonical).Suffix("RETURNING tx_id, type_id"))
	if err != nil {
		return nil, 0, fmt.Errorf("mark txs canonical=%v: %w", canonical, err)
	}
	defer rows.Close()

	var (
		ids   []string
		count int
	)
	for rows.Next() {
		var (
			id     string
			typeID int16
		)
		if err := rows.Scan(&id, &typeID); err != nil {
			return nil, 0, fmt.Errorf("scan marked tx: %w", err)
		}
		count++
		if model.TxType(typeID) != model.TxTypeCoinbase {
			ids = append(ids, id)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate marked txs: %w", err)
	}
	return ids, count, nil
}
