package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

func (s *session) queryTxs(ctx context.Context, b sq.Sqlizer) ([]model.Tx, error) {
	rows, err := s.query(ctx, b)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []model.Tx
	for rows.Next() {
		tx, err := scanTx(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tx: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate txs: %w", err)
	}
	return txs, nil
}

// firstTx returns the preferred row among the matches: canonical first, then
// the highest block.
func (s *session) firstTx(ctx context.Context, where sq.Sqlizer) (model.Tx, bool, error) {
	txs, err := s.queryTxs(ctx,
		psql.Select(txColumns...).
			From("txs").
			Where(where).
			OrderBy("canonical DESC", "block_height DESC").
			Limit(1),
	)
	if err != nil || len(txs) == 0 {
		return model.Tx{}, false, err
	}
	return txs[0], true, nil
}

// TxByID returns a mined transaction, preferring the canonical row.
func (s *session) TxByID(ctx context.Context, txID string) (model.Tx, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("tx_by_id", err, start)
	}()

	tx, found, err := s.firstTx(ctx, sq.Eq{"tx_id": txID})
	if err != nil {
		return model.Tx{}, false, fmt.Errorf("query tx %s: %w", txID, err)
	}
	return tx, found, nil
}

// TxByContractID returns the mined deploy of a contract.
func (s *session) TxByContractID(ctx context.Context, contractID string) (model.Tx, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("tx_by_contract_id", err, start)
	}()

	tx, found, err := s.firstTx(ctx, sq.Eq{"smart_contract_contract_id": contractID})
	if err != nil {
		return model.Tx{}, false, fmt.Errorf("query deploy of %s: %w", contractID, err)
	}
	return tx, found, nil
}

func (s *session) canonicalTxPage(ctx context.Context, where sq.Sqlizer, page model.Page) ([]model.Tx, int, error) {
	var total int
	if _, err := s.queryRow(ctx,
		psql.Select("COUNT(*)").From("txs").Where(sq.Eq{"canonical": true}).Where(where),
		&total,
	); err != nil {
		return nil, 0, fmt.Errorf("count txs: %w", err)
	}

	txs, err := s.queryTxs(ctx, paged(
		psql.Select(txColumns...).
			From("txs").
			Where(sq.Eq{"canonical": true}).
			Where(where).
			OrderBy("block_height DESC", "tx_index DESC"),
		page,
	))
	if err != nil {
		return nil, 0, fmt.Errorf("query txs: %w", err)
	}
	return txs, total, nil
}

// TxList returns a page of canonical transactions, optionally restricted to
// some types, and the total.
func (s *session) TxList(ctx context.Context, filter model.TxFilter, page model.Page) ([]model.Tx, int, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("tx_list", err, start)
	}()

	where := sq.And{}
	if len(filter.Types) > 0 {
		types := make([]int16, 0, len(filter.Types))
		for _, t := range filter.Types {
			types = append(types, int16(t))
		}
		where = append(where, sq.Eq{"type_id": types})
	}

	txs, total, err := s.canonicalTxPage(ctx, where, page)
	if err != nil {
		return nil, 0, fmt.Errorf("list txs: %w", err)
	}
	return txs, total, nil
}

// AddressTxs returns a page of canonical transactions the address sent,
// sponsored, received or deployed.
func (s *session) AddressTxs(ctx context.Context, address string, page model.Page) ([]model.Tx, int, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("address_txs", err, start)
	}()

	txs, total, err := s.canonicalTxPage(ctx, sq.Or{
		sq.Eq{"sender_address": address},
		sq.Eq{"sponsor_address": address},
		sq.Eq{"token_transfer_recipient_address": address},
		sq.Eq{"smart_contract_contract_id": address},
		sq.Eq{"contract_call_contract_id": address},
	}, page)
	if err != nil {
		return nil, 0, fmt.Errorf("list txs of %s: %w", address, err)
	}
	return txs, total, nil
}
