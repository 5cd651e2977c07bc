package ingester

import (
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/codec"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/decoder"
	"github.com/stretchr/testify/require"
)

// tokenTransferHex serializes a mainnet single-sig STX transfer.
func tokenTransferHex(nonce, amount uint64) string {
	u64 := func(v uint64) []byte {
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, v)
		return b
	}

	raw := []byte{0x00, 0x00, 0x00, 0x00, 0x01, byte(codec.AuthTypeStandard), codec.HashModeP2PKH}
	raw = append(raw, make([]byte, 20)...)
	raw = append(raw, u64(nonce)...)
	raw = append(raw, u64(180)...)
	raw = append(raw, 0x00)
	raw = append(raw, make([]byte, 65)...)
	raw = append(raw, 0x03, 0x01, 0x00, 0x00, 0x00, 0x00, byte(codec.PayloadTokenTransfer))
	raw = append(raw, 0x05, 22)
	raw = append(raw, make([]byte, 20)...)
	raw = append(raw, u64(amount)...)
	raw = append(raw, make([]byte, 34)...)
	return "0x" + hex.EncodeToString(raw)
}

// decodeMempool runs raw transactions through the real decoder.
func decodeMempool(t *testing.T, receiptTime int64, rawHex ...string) []decoder.ParsedMempoolTx {
	t.Helper()

	d, err := decoder.New(&chaincfg.MainNetParams)
	require.NoError(t, err)
	parsed, err := d.DecodeMempoolTxs(rawHex, receiptTime)
	require.NoError(t, err)
	return parsed
}
