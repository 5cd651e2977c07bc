package postgres

import (
	"database/sql"
	"fmt"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/goodnatureofminers/stacks-indexer/pkg/safe"
)

var blockColumns = []string{
	"index_block_hash",
	"block_hash",
	"parent_index_block_hash",
	"parent_block_hash",
	"parent_microblock",
	"block_height",
	"burn_block_time",
	"burn_block_hash",
	"burn_block_height",
	"miner_txid",
	"canonical",
}

type scanner interface {
	Scan(dest ...any) error
}

func blockDest(b *model.Block) []any {
	return []any{
		&b.IndexBlockHash,
		&b.BlockHash,
		&b.ParentIndexBlockHash,
		&b.ParentBlockHash,
		&b.ParentMicroblock,
		&b.BlockHeight,
		&b.BurnBlockTime,
		&b.BurnBlockHash,
		&b.BurnBlockHeight,
		&b.MinerTxID,
		&b.Canonical,
	}
}

func blockValues(b model.Block) []any {
	return []any{
		b.IndexBlockHash,
		b.BlockHash,
		b.ParentIndexBlockHash,
		b.ParentBlockHash,
		b.ParentMicroblock,
		int64(b.BlockHeight),
		b.BurnBlockTime,
		b.BurnBlockHash,
		int64(b.BurnBlockHeight),
		b.MinerTxID,
		b.Canonical,
	}
}

// txBaseColumns are shared by txs and mempool_txs.
var txBaseColumns = []string{
	"tx_id",
	"raw_tx",
	"type_id",
	"status",
	"post_conditions",
	"fee_rate",
	"nonce",
	"sponsored",
	"sponsor_address",
	"sender_address",
	"origin_hash_mode",
	"token_transfer_recipient_address",
	"token_transfer_amount",
	"token_transfer_memo",
	"smart_contract_contract_id",
	"smart_contract_source_code",
	"contract_call_contract_id",
	"contract_call_function_name",
	"contract_call_function_args",
	"poison_microblock_header_1",
	"poison_microblock_header_2",
	"coinbase_payload",
}

var txColumns = append(append([]string(nil), txBaseColumns...),
	"index_block_hash",
	"block_hash",
	"block_height",
	"burn_block_time",
	"tx_index",
	"raw_result",
	"canonical",
)

var mempoolTxColumns = append(append([]string(nil), txBaseColumns...),
	"receipt_time",
	"pruned",
)

func txBaseValues(t model.TxBase) []any {
	var (
		recipient, contractDeployID, sourceCode, contractCallID, functionName sql.NullString
		amount                                                                sql.NullInt64
		memo, functionArgs, header1, header2, coinbase                        any
	)
	if p := t.TokenTransfer; p != nil {
		recipient = sql.NullString{String: p.Recipient, Valid: true}
		amount = sql.NullInt64{Int64: int64(p.Amount), Valid: true}
		memo = nonNil(p.Memo)
	}
	if p := t.SmartContract; p != nil {
		contractDeployID = sql.NullString{String: p.ContractID, Valid: true}
		sourceCode = sql.NullString{String: p.SourceCode, Valid: true}
	}
	if p := t.ContractCall; p != nil {
		contractCallID = sql.NullString{String: p.ContractID, Valid: true}
		functionName = sql.NullString{String: p.FunctionName, Valid: true}
		functionArgs = nonNil(p.FunctionArgs)
	}
	if p := t.PoisonMicroblock; p != nil {
		header1 = nonNil(p.Header1)
		header2 = nonNil(p.Header2)
	}
	if p := t.Coinbase; p != nil {
		coinbase = nonNil(p.Payload)
	}

	return []any{
		t.TxID,
		nonNil(t.RawTx),
		int16(t.Type),
		int16(t.Status),
		nonNil(t.PostConditions),
		int64(t.FeeRate),
		int64(t.Nonce),
		t.Sponsored,
		t.SponsorAddress,
		t.SenderAddress,
		int16(t.OriginHashMode),
		recipient,
		amount,
		memo,
		contractDeployID,
		sourceCode,
		contractCallID,
		functionName,
		functionArgs,
		header1,
		header2,
		coinbase,
	}
}

func txValues(t model.Tx) []any {
	return append(txBaseValues(t.TxBase),
		t.IndexBlockHash,
		t.BlockHash,
		int64(t.BlockHeight),
		t.BurnBlockTime,
		int32(t.TxIndex),
		t.RawResult,
		t.Canonical,
	)
}

func mempoolTxValues(t model.MempoolTx) []any {
	return append(txBaseValues(t.TxBase), t.ReceiptTime, t.Pruned)
}

// txBaseScan collects the nullable payload columns of a tx row.
type txBaseScan struct {
	typeID, status, hashMode                                              int16
	feeRate, nonce                                                        int64
	recipient, contractDeployID, sourceCode, contractCallID, functionName sql.NullString
	amount                                                                sql.NullInt64
	memo, functionArgs, header1, header2, coinbase                        []byte
}

func (s *txBaseScan) dest(t *model.TxBase) []any {
	return []any{
		&t.TxID,
		&t.RawTx,
		&s.typeID,
		&s.status,
		&t.PostConditions,
		&s.feeRate,
		&s.nonce,
		&t.Sponsored,
		&t.SponsorAddress,
		&t.SenderAddress,
		&s.hashMode,
		&s.recipient,
		&s.amount,
		&s.memo,
		&s.contractDeployID,
		&s.sourceCode,
		&s.contractCallID,
		&s.functionName,
		&s.functionArgs,
		&s.header1,
		&s.header2,
		&s.coinbase,
	}
}

func (s *txBaseScan) apply(t *model.TxBase) {
	t.Type = model.TxType(s.typeID)
	t.Status = model.TxStatus(s.status)
	t.FeeRate = uint64(s.feeRate)
	t.Nonce = uint64(s.nonce)
	t.OriginHashMode = uint8(s.hashMode)

	switch t.Type {
	case model.TxTypeTokenTransfer:
		t.TokenTransfer = &model.TokenTransferPayload{
			Recipient: s.recipient.String,
			Amount:    uint64(s.amount.Int64),
			Memo:      s.memo,
		}
	case model.TxTypeSmartContract:
		t.SmartContract = &model.SmartContractPayload{
			ContractID: s.contractDeployID.String,
			SourceCode: s.sourceCode.String,
		}
	case model.TxTypeContractCall:
		t.ContractCall = &model.ContractCallPayload{
			ContractID:   s.contractCallID.String,
			FunctionName: s.functionName.String,
			FunctionArgs: s.functionArgs,
		}
	case model.TxTypePoisonMicroblock:
		t.PoisonMicroblock = &model.PoisonMicroblockPayload{Header1: s.header1, Header2: s.header2}
	case model.TxTypeCoinbase:
		t.Coinbase = &model.CoinbasePayload{Payload: s.coinbase}
	}
}

func scanTx(row scanner) (model.Tx, error) {
	var (
		tx     model.Tx
		base   txBaseScan
		height int64
		index  int32
	)
	dest := append(base.dest(&tx.TxBase),
		&tx.IndexBlockHash,
		&tx.BlockHash,
		&height,
		&tx.BurnBlockTime,
		&index,
		&tx.RawResult,
		&tx.Canonical,
	)
	if err := row.Scan(dest...); err != nil {
		return model.Tx{}, err
	}
	base.apply(&tx.TxBase)

	var err error
	if tx.BlockHeight, err = safe.Uint64(height); err != nil {
		return model.Tx{}, fmt.Errorf("tx block height: %w", err)
	}
	if tx.TxIndex, err = safe.Uint32(index); err != nil {
		return model.Tx{}, fmt.Errorf("tx index: %w", err)
	}
	return tx, nil
}

func scanMempoolTx(row scanner) (model.MempoolTx, error) {
	var (
		tx   model.MempoolTx
		base txBaseScan
	)
	dest := append(base.dest(&tx.TxBase), &tx.ReceiptTime, &tx.Pruned)
	if err := row.Scan(dest...); err != nil {
		return model.MempoolTx{}, err
	}
	base.apply(&tx.TxBase)
	return tx, nil
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
