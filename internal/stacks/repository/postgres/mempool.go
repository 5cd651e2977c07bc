package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

func pendingMempool() sq.SelectBuilder {
	return psql.Select(mempoolTxColumns...).
		From("mempool_txs").
		Where(sq.Eq{"pruned": false})
}

func (s *session) queryMempoolTxs(ctx context.Context, b sq.Sqlizer) ([]model.MempoolTx, error) {
	rows, err := s.query(ctx, b)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []model.MempoolTx
	for rows.Next() {
		tx, err := scanMempoolTx(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mempool tx: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mempool txs: %w", err)
	}
	return txs, nil
}

func (s *session) firstMempoolTx(ctx context.Context, where sq.Sqlizer) (model.MempoolTx, bool, error) {
	txs, err := s.queryMempoolTxs(ctx, pendingMempool().Where(where).OrderBy("receipt_time DESC").Limit(1))
	if err != nil || len(txs) == 0 {
		return model.MempoolTx{}, false, err
	}
	return txs[0], true, nil
}

// MempoolTx returns a pending transaction. Pruned rows are not reported.
func (s *session) MempoolTx(ctx context.Context, txID string) (model.MempoolTx, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("mempool_tx", err, start)
	}()

	tx, found, err := s.firstMempoolTx(ctx, sq.Eq{"tx_id": txID})
	if err != nil {
		return model.MempoolTx{}, false, fmt.Errorf("query mempool tx %s: %w", txID, err)
	}
	return tx, found, nil
}

// MempoolTxByContractID returns a pending deploy of a contract.
func (s *session) MempoolTxByContractID(ctx context.Context, contractID string) (model.MempoolTx, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("mempool_tx_by_contract_id", err, start)
	}()

	tx, found, err := s.firstMempoolTx(ctx, sq.Eq{"smart_contract_contract_id": contractID})
	if err != nil {
		return model.MempoolTx{}, false, fmt.Errorf("query pending deploy of %s: %w", contractID, err)
	}
	return tx, found, nil
}

// MempoolTxList returns a page of pending transactions, newest first, and the
// total.
func (s *session) MempoolTxList(ctx context.Context, page model.Page) ([]model.MempoolTx, int, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("mempool_tx_list", err, start)
	}()

	var total int
	if _, err = s.queryRow(ctx,
		psql.Select("COUNT(*)").From("mempool_txs").Where(sq.Eq{"pruned": false}),
		&total,
	); err != nil {
		return nil, 0, fmt.Errorf("count mempool txs: %w", err)
	}

	txs, err := s.queryMempoolTxs(ctx, paged(pendingMempool().OrderBy("receipt_time DESC", "tx_id"), page))
	if err != nil {
		return nil, 0, fmt.Errorf("query mempool txs: %w", err)
	}
	return txs, total, nil
}
