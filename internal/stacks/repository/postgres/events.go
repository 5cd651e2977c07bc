package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

// eventSource reads one per-kind event table.
type eventSource struct {
	table   string
	columns []string
	scan    func(row scanner) (model.Event, error)
	// owner matches the rows that touch an address. Nil for contract logs.
	owner func(address string) sq.Sqlizer
}

type eventBaseScan struct {
	eventIndex, txIndex int32
	blockHeight         int64
}

func (s *eventBaseScan) dest(b *model.EventBase) []any {
	return []any{&s.eventIndex, &b.TxID, &s.txIndex, &s.blockHeight, &b.IndexBlockHash, &b.Canonical}
}

func (s *eventBaseScan) apply(b *model.EventBase) {
	b.EventIndex = uint32(s.eventIndex)
	b.TxIndex = uint32(s.txIndex)
	b.BlockHeight = uint64(s.blockHeight)
}

func senderOrRecipient(address string) sq.Sqlizer {
	return sq.Or{sq.Eq{"sender": address}, sq.Eq{"recipient": address}}
}

var (
	stxEventSource = eventSource{
		table:   "stx_events",
		columns: append(append([]string(nil), eventBaseColumns...), "asset_event_type_id", "sender", "recipient", "amount"),
		scan: func(row scanner) (model.Event, error) {
			var (
				e     model.StxEvent
				base  eventBaseScan
				typID int16
			)
			if err := row.Scan(append(base.dest(&e.EventBase), &typID, &e.Sender, &e.Recipient, &e.Amount)...); err != nil {
				return nil, err
			}
			base.apply(&e.EventBase)
			e.AssetEventType = model.AssetEventType(typID)
			return &e, nil
		},
		owner: senderOrRecipient,
	}

	stxLockEventSource = eventSource{
		table:   "stx_lock_events",
		columns: append(append([]string(nil), eventBaseColumns...), "locked_amount", "unlock_height", "locked_address"),
		scan: func(row scanner) (model.Event, error) {
			var (
				e      model.StxLockEvent
				base   eventBaseScan
				unlock int64
			)
			if err := row.Scan(append(base.dest(&e.EventBase), &e.LockedAmount, &unlock, &e.LockedAddress)...); err != nil {
				return nil, err
			}
			base.apply(&e.EventBase)
			e.UnlockHeight = uint64(unlock)
			return &e, nil
		},
		owner: func(address string) sq.Sqlizer {
			return sq.Eq{"locked_address": address}
		},
	}

	ftEventSource = eventSource{
		table:   "ft_events",
		columns: append(append([]string(nil), eventBaseColumns...), "asset_event_type_id", "asset_identifier", "sender", "recipient", "amount"),
		scan: func(row scanner) (model.Event, error) {
			var (
				e     model.FtEvent
				base  eventBaseScan
				typID int16
			)
			if err := row.Scan(append(base.dest(&e.EventBase), &typID, &e.AssetIdentifier, &e.Sender, &e.Recipient, &e.Amount)...); err != nil {
				return nil, err
			}
			base.apply(&e.EventBase)
			e.AssetEventType = model.AssetEventType(typID)
			return &e, nil
		},
		owner: senderOrRecipient,
	}

	nftEventSource = eventSource{
		table:   "nft_events",
		columns: append(append([]string(nil), eventBaseColumns...), "asset_event_type_id", "asset_identifier", "sender", "recipient", "value"),
		scan: func(row scanner) (model.Event, error) {
			var (
				e     model.NftEvent
				base  eventBaseScan
				typID int16
			)
			if err := row.Scan(append(base.dest(&e.EventBase), &typID, &e.AssetIdentifier, &e.Sender, &e.Recipient, &e.Value)...); err != nil {
				return nil, err
			}
			base.apply(&e.EventBase)
			e.AssetEventType = model.AssetEventType(typID)
			return &e, nil
		},
		owner: senderOrRecipient,
	}

	contractLogSource = eventSource{
		table:   "contract_logs",
		columns: append(append([]string(nil), eventBaseColumns...), "contract_identifier", "topic", "value"),
		scan: func(row scanner) (model.Event, error) {
			var (
				e    model.ContractLogEvent
				base eventBaseScan
			)
			if err := row.Scan(append(base.dest(&e.EventBase), &e.ContractIdentifier, &e.Topic, &e.Value)...); err != nil {
				return nil, err
			}
			base.apply(&e.EventBase)
			return &e, nil
		},
	}

	allEventSources   = []eventSource{stxEventSource, stxLockEventSource, ftEventSource, nftEventSource, contractLogSource}
	assetEventSources = []eventSource{stxEventSource, stxLockEventSource, ftEventSource, nftEventSource}
)

const eventOrderDesc = "block_height DESC, tx_index DESC, event_index DESC"

func (s *session) queryEvents(ctx context.Context, src eventSource, b sq.SelectBuilder) ([]model.Event, error) {
	rows, err := s.query(ctx, b)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows, src)
}

func collectEvents(rows *sql.Rows, src eventSource) ([]model.Event, error) {
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		ev, err := src.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", src.table, err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", src.table, err)
	}
	return events, nil
}

// TxEvents returns every event of a transaction in one block, ordered by
// event index.
func (s *session) TxEvents(ctx context.Context, txID string, indexBlockHash string) ([]model.Event, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("tx_events", err, start)
	}()

	var events []model.Event
	for _, src := range allEventSources {
		var batch []model.Event
		batch, err = s.queryEvents(ctx, src,
			psql.Select(src.columns...).
				From(src.table).
				Where(sq.Eq{"tx_id": txID, "index_block_hash": indexBlockHash}),
		)
		if err != nil {
			return nil, fmt.Errorf("query %s of tx %s: %w", src.table, txID, err)
		}
		events = append(events, batch...)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Base().EventIndex < events[j].Base().EventIndex
	})
	return events, nil
}

// AddressAssetEvents returns a page of canonical asset events touching the
// address, newest first. Every table is read up to the end of the page and
// the results are merged.
func (s *session) AddressAssetEvents(ctx context.Context, address string, page model.Page) ([]model.Event, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("address_asset_events", err, start)
	}()

	window := model.Page{}
	if page.Limit > 0 {
		window.Limit = page.Offset + page.Limit
	}

	var events []model.Event
	for _, src := range assetEventSources {
		var batch []model.Event
		batch, err = s.queryEvents(ctx, src, paged(
			psql.Select(src.columns...).
				From(src.table).
				Where(sq.Eq{"canonical": true}).
				Where(src.owner(address)).
				OrderBy(eventOrderDesc),
			window,
		))
		if err != nil {
			return nil, fmt.Errorf("query %s of %s: %w", src.table, address, err)
		}
		events = append(events, batch...)
	}

	sort.Slice(events, func(i, j int) bool {
		a, b := events[i].Base(), events[j].Base()
		if a.BlockHeight != b.BlockHeight {
			return a.BlockHeight > b.BlockHeight
		}
		if a.TxIndex != b.TxIndex {
			return a.TxIndex > b.TxIndex
		}
		return a.EventIndex > b.EventIndex
	})
	if page.Offset >= len(events) {
		return nil, nil
	}
	events = events[page.Offset:]
	if page.Limit > 0 && page.Limit < len(events) {
		events = events[:page.Limit]
	}
	return events, nil
}

// ContractLogs returns a page of canonical prints of a contract, newest first.
func (s *session) ContractLogs(ctx context.Context, contractID string, page model.Page) ([]model.ContractLogEvent, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("contract_logs", err, start)
	}()

	events, err := s.queryEvents(ctx, contractLogSource, paged(
		psql.Select(contractLogSource.columns...).
			From(contractLogSource.table).
			Where(sq.Eq{"canonical": true, "contract_identifier": contractID}).
			OrderBy(eventOrderDesc),
		page,
	))
	if err != nil {
		return nil, fmt.Errorf("query logs of %s: %w", contractID, err)
	}

	logs := make([]model.ContractLogEvent, 0, len(events))
	for _, ev := range events {
		logs = append(logs, *ev.(*model.ContractLogEvent))
	}
	return logs, nil
}
