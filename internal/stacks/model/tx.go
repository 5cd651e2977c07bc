package model

// TxType is the payload type of a Stacks transaction.
type TxType uint8

const (
	TxTypeTokenTransfer    TxType = 0
	TxTypeSmartContract    TxType = 1
	TxTypeContractCall     TxType = 2
	TxTypePoisonMicroblock TxType = 3
	TxTypeCoinbase         TxType = 4
)

var txTypeNames = map[TxType]string{
	TxTypeTokenTransfer:    "token_transfer",
	TxTypeSmartContract:    "smart_contract",
	TxTypeContractCall:     "contract_call",
	TxTypePoisonMicroblock: "poison_microblock",
	TxTypeCoinbase:         "coinbase",
}

func (t TxType) String() string {
	if name, ok := txTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseTxType maps the string form of a tx type back to its value.
func ParseTxType(s string) (TxType, bool) {
	for t, name := range txTypeNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

// TxStatus is the execution result of a transaction.
type TxStatus int8

const (
	TxStatusPending              TxStatus = 0
	TxStatusSuccess              TxStatus = 1
	TxStatusAbortByResponse      TxStatus = -1
	TxStatusAbortByPostCondition TxStatus = -2
)

func (s TxStatus) String() string {
	switch s {
	case TxStatusPending:
		return "pending"
	case TxStatusSuccess:
		return "success"
	case TxStatusAbortByResponse:
		return "abort_by_response"
	case TxStatusAbortByPostCondition:
		return "abort_by_post_condition"
	default:
		return "unknown"
	}
}

// TokenTransferPayload holds the fields of a token-transfer transaction.
type TokenTransferPayload struct {
	Recipient string
	Amount    uint64
	Memo      []byte
}

// SmartContractPayload holds the fields of a contract deploy transaction.
type SmartContractPayload struct {
	ContractID string
	SourceCode string
}

// ContractCallPayload holds the fields of a contract-call transaction.
type ContractCallPayload struct {
	ContractID   string
	FunctionName string
	FunctionArgs []byte
}

// PoisonMicroblockPayload holds the two conflicting microblock headers.
type PoisonMicroblockPayload struct {
	Header1 []byte
	Header2 []byte
}

// CoinbasePayload holds the coinbase buffer.
type CoinbasePayload struct {
	Payload []byte
}

// TxBase carries the fields shared by mined and mempool transactions.
type TxBase struct {
	TxID           string
	RawTx          []byte
	Type           TxType
	Status         TxStatus
	PostConditions []byte
	FeeRate        uint64
	Nonce          uint64
	Sponsored      bool
	SponsorAddress string
	SenderAddress  string
	OriginHashMode uint8

	TokenTransfer    *TokenTransferPayload
	SmartContract    *SmartContractPayload
	ContractCall     *ContractCallPayload
	PoisonMicroblock *PoisonMicroblockPayload
	Coinbase         *CoinbasePayload
}

// ContractID returns the contract a call or deploy transaction refers to.
func (t TxBase) ContractID() string {
	switch {
	case t.ContractCall != nil:
		return t.ContractCall.ContractID
	case t.SmartContract != nil:
		return t.SmartContract.ContractID
	default:
		return ""
	}
}

// Tx is a transaction mined into a specific block version.
type Tx struct {
	TxBase
	IndexBlockHash string
	BlockHash      string
	BlockHeight    uint64
	BurnBlockTime  int64
	TxIndex        uint32
	RawResult      string
	Canonical      bool
}

// MempoolTx is a received but unconfirmed transaction.
type MempoolTx struct {
	TxBase
	ReceiptTime int64
	Pruned      bool
}
