package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

var eventBaseColumns = []string{"event_index", "tx_id", "tx_index", "block_height", "index_block_hash", "canonical"}

func eventBaseValues(b model.EventBase) []any {
	return []any{int32(b.EventIndex), b.TxID, int32(b.TxIndex), int64(b.BlockHeight), b.IndexBlockHash, b.Canonical}
}

// InsertEvents stores events into their per-kind tables in batches.
func (s *session) InsertEvents(ctx context.Context, events []model.Event) error {
	start := time.Now()
	var err error
	defer func() {
		s.observe("insert_events", err, start)
	}()

	buckets := model.BucketEvents(events)

	for _, chunk := range chunks(buckets.Stx, insertBatchSize) {
		b := psql.Insert("stx_events").Columns(append(eventBaseColumns, "asset_event_type_id", "sender", "recipient", "amount")...)
		for _, e := range chunk {
			b = b.Values(append(eventBaseValues(e.EventBase), int16(e.AssetEventType), e.Sender, e.Recipient, e.Amount)...)
		}
		if _, err = s.exec(ctx, b); err != nil {
			return fmt.Errorf("insert stx events: %w", err)
		}
	}

	for _, chunk := range chunks(buckets.StxLocks, insertBatchSize) {
		b := psql.Insert("stx_lock_events").Columns(append(eventBaseColumns, "locked_amount", "unlock_height", "locked_address")...)
		for _, e := range chunk {
			b = b.Values(append(eventBaseValues(e.EventBase), e.LockedAmount, int64(e.UnlockHeight), e.LockedAddress)...)
		}
		if _, err = s.exec(ctx, b); err != nil {
			return fmt.Errorf("insert stx lock events: %w", err)
		}
	}

	for _, chunk := range chunks(buckets.Ft, insertBatchSize) {
		b := psql.Insert("ft_events").Columns(append(eventBaseColumns, "asset_event_type_id", "asset_identifier", "sender", "recipient", "amount")...)
		for _, e := range chunk {
			b = b.Values(append(eventBaseValues(e.EventBase), int16(e.AssetEventType), e.AssetIdentifier, e.Sender, e.Recipient, e.Amount)...)
		}
		if _, err = s.exec(ctx, b); err != nil {
			return fmt.Errorf("insert ft events: %w", err)
		}
	}

	for _, chunk := range chunks(buckets.Nft, insertBatchSize) {
		b := psql.Insert("nft_events").Columns(append(eventBaseColumns, "asset_event_type_id", "asset_identifier", "sender", "recipient", "value")...)
		for _, e := range chunk {
			b = b.Values(append(eventBaseValues(e.EventBase), int16(e.AssetEventType), e.AssetIdentifier, e.Sender, e.Recipient, nonNil(e.Value))...)
		}
		if _, err = s.exec(ctx, b); err != nil {
			return fmt.Errorf("insert nft events: %w", err)
		}
	}

	for _, chunk := range chunks(buckets.ContractLogs, insertBatchSize) {
		b := psql.Insert("contract_logs").Columns(append(eventBaseColumns, "contract_identifier", "topic", "value")...)
		for _, e := range chunk {
			b = b.Values(append(eventBaseValues(e.EventBase), e.ContractIdentifier, e.Topic, nonNil(e.Value))...)
		}
		if _, err = s.exec(ctx, b); err != nil {
			return fmt.Errorf("insert contract logs: %w", err)
		}
	}

	return nil
}
