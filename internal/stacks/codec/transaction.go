package codec

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
)

// TransactionVersion is the network byte of a transaction.
type TransactionVersion byte

const (
	TransactionVersionMainnet TransactionVersion = 0x00
	TransactionVersionTestnet TransactionVersion = 0x80
)

// AuthType distinguishes standard from sponsored authorization.
type AuthType byte

const (
	AuthTypeStandard  AuthType = 0x04
	AuthTypeSponsored AuthType = 0x05
)

// Hash modes of a spending condition.
const (
	HashModeP2PKH              byte = 0x00
	HashModeP2SH               byte = 0x01
	HashModeP2WPKH             byte = 0x02
	HashModeP2WSH              byte = 0x03
	HashModeP2SHNonSequential  byte = 0x05
	HashModeP2WSHNonSequential byte = 0x07
)

// Multisig auth field types.
const (
	authFieldPublicKeyCompressed   byte = 0x00
	authFieldPublicKeyUncompressed byte = 0x01
	authFieldSignatureCompressed   byte = 0x02
	authFieldSignatureUncompressed byte = 0x03
)

// PayloadType is the wire tag of a transaction payload.
type PayloadType byte

const (
	PayloadTokenTransfer          PayloadType = 0x00
	PayloadSmartContract          PayloadType = 0x01
	PayloadContractCall           PayloadType = 0x02
	PayloadPoisonMicroblock       PayloadType = 0x03
	PayloadCoinbase               PayloadType = 0x04
	PayloadCoinbaseToAltRecipient PayloadType = 0x05
	PayloadVersionedSmartContract PayloadType = 0x06
)

const (
	memoLength             = 34
	microblockHeaderLength = 132
	coinbaseBufferLength   = 32
	recoverableSigLength   = 65
	compressedPubKeyLength = 33
	hash160Length          = 20
)

// ErrUnsupported is returned for well-formed input this decoder does not handle.
var ErrUnsupported = errors.New("unsupported transaction feature")

// AuthField is a public key or signature of a multisig spending condition.
type AuthField struct {
	Type byte
	Data []byte
}

// SpendingCondition authorizes the origin or sponsor of a transaction.
type SpendingCondition struct {
	HashMode           byte
	Signer             []byte
	Nonce              uint64
	Fee                uint64
	KeyEncoding        byte
	Signature          []byte
	Fields             []AuthField
	SignaturesRequired uint16
}

// Multisig reports whether the condition is a multisig condition.
func (c SpendingCondition) Multisig() bool {
	switch c.HashMode {
	case HashModeP2SH, HashModeP2WSH, HashModeP2SHNonSequential, HashModeP2WSHNonSequential:
		return true
	default:
		return false
	}
}

// Address returns the Stacks address of the signer for the given network.
func (c SpendingCondition) Address(version TransactionVersion) string {
	mainnet := version == TransactionVersionMainnet
	var addrVersion byte
	switch {
	case mainnet && c.Multisig():
		addrVersion = AddressVersionMainnetMultiSig
	case mainnet:
		addrVersion = AddressVersionMainnetSingleSig
	case c.Multisig():
		addrVersion = AddressVersionTestnetMultiSig
	default:
		addrVersion = AddressVersionTestnetSingleSig
	}
	return Address(addrVersion, c.Signer)
}

// Authorization holds the origin and optional sponsor conditions.
type Authorization struct {
	Type    AuthType
	Origin  SpendingCondition
	Sponsor *SpendingCondition
}

// PostConditionType is the asset class a post condition guards.
type PostConditionType byte

const (
	PostConditionSTX PostConditionType = 0x00
	PostConditionFT  PostConditionType = 0x01
	PostConditionNFT PostConditionType = 0x02
)

// AssetInfo identifies a fungible or non-fungible asset.
type AssetInfo struct {
	ContractAddress string
	ContractName    string
	AssetName       string
}

// Identifier renders the asset as address.contract::name.
func (a AssetInfo) Identifier() string {
	return a.ContractAddress + "." + a.ContractName + "::" + a.AssetName
}

// PostCondition is a decoded post condition.
type PostCondition struct {
	Type          PostConditionType
	Principal     string
	Asset         *AssetInfo
	AssetValue    *ClarityValue
	ConditionCode byte
	Amount        uint64
}

// TokenTransfer is the payload of an STX transfer.
type TokenTransfer struct {
	Recipient *ClarityValue
	Amount    uint64
	Memo      []byte
}

// SmartContract is the payload of a contract deploy.
type SmartContract struct {
	ClarityVersion byte
	Name           string
	CodeBody       string
}

// ContractCall is the payload of a public function call.
type ContractCall struct {
	Address      string
	ContractName string
	FunctionName string
	Args         []*ClarityValue
	RawArgs      []byte
}

// ContractID returns address.contract.
func (c ContractCall) ContractID() string {
	return c.Address + "." + c.ContractName
}

// PoisonMicroblock carries two conflicting microblock headers.
type PoisonMicroblock struct {
	Header1 []byte
	Header2 []byte
}

// Coinbase carries the coinbase buffer and an optional alternate recipient.
type Coinbase struct {
	Payload      []byte
	AltRecipient *ClarityValue
}

// Payload is the tagged transaction payload. Exactly one field matches Type.
type Payload struct {
	Type             PayloadType
	TokenTransfer    *TokenTransfer
	SmartContract    *SmartContract
	ContractCall     *ContractCall
	PoisonMicroblock *PoisonMicroblock
	Coinbase         *Coinbase
}

// Transaction is a decoded Stacks transaction.
type Transaction struct {
	TxID              string
	Version           TransactionVersion
	ChainID           uint32
	Auth              Authorization
	AnchorMode        byte
	PostConditionMode byte
	PostConditions    []PostCondition
	// RawPostConditions is the serialized post condition list including its length prefix.
	RawPostConditions []byte
	Payload           Payload
}

// SenderAddress returns the origin address.
func (t *Transaction) SenderAddress() string {
	return t.Auth.Origin.Address(t.Version)
}

// SponsorAddress returns the sponsor address or an empty string.
func (t *Transaction) SponsorAddress() string {
	if t.Auth.Sponsor == nil {
		return ""
	}
	return t.Auth.Sponsor.Address(t.Version)
}

// Fee returns the fee rate paid by the transaction. A sponsored
// transaction pays the sponsor's fee.
func (t *Transaction) Fee() uint64 {
	if t.Auth.Sponsor != nil {
		return t.Auth.Sponsor.Fee
	}
	return t.Auth.Origin.Fee
}

// TxID returns the 0x-prefixed sha512/256 of the raw transaction bytes.
func TxID(raw []byte) string {
	sum := sha512.Sum512_256(raw)
	return "0x" + hex.EncodeToString(sum[:])
}

// DecodeTransaction decodes a serialized transaction.
func DecodeTransaction(raw []byte) (*Transaction, error) {
	r := newReader(raw)
	tx := &Transaction{TxID: TxID(raw)}

	version, err := r.u8()
	if err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}
	tx.Version = TransactionVersion(version)
	if tx.Version != TransactionVersionMainnet && tx.Version != TransactionVersionTestnet {
		return nil, fmt.Errorf("unknown transaction version 0x%02x", version)
	}
	if tx.ChainID, err = r.u32(); err != nil {
		return nil, fmt.Errorf("read chain id: %w", err)
	}
	if tx.Auth, err = readAuthorization(r); err != nil {
		return nil, fmt.Errorf("read authorization: %w", err)
	}
	if tx.AnchorMode, err = r.u8(); err != nil {
		return nil, fmt.Errorf("read anchor mode: %w", err)
	}
	if tx.PostConditionMode, err = r.u8(); err != nil {
		return nil, fmt.Errorf("read post condition mode: %w", err)
	}

	pcStart := r.offset()
	if tx.PostConditions, err = readPostConditions(r); err != nil {
		return nil, fmt.Errorf("read post conditions: %w", err)
	}
	tx.RawPostConditions = append([]byte(nil), raw[pcStart:r.offset()]...)

	if tx.Payload, err = readPayload(r); err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	if r.remaining() != 0 {
		return nil, fmt.Errorf("%d trailing bytes after payload", r.remaining())
	}
	return tx, nil
}

// DecodeTransactionHex decodes a 0x-prefixed hex transaction.
func DecodeTransactionHex(s string) (*Transaction, []byte, error) {
	raw, err := DecodeHex(s)
	if err != nil {
		return nil, nil, err
	}
	tx, err := DecodeTransaction(raw)
	if err != nil {
		return nil, nil, err
	}
	return tx, raw, nil
}

// DecodeHex decodes a string with an optional 0x prefix.
func DecodeHex(s string) ([]byte, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return b, nil
}

func readAuthorization(r *reader) (Authorization, error) {
	var auth Authorization
	t, err := r.u8()
	if err != nil {
		return auth, err
	}
	auth.Type = AuthType(t)
	switch auth.Type {
	case AuthTypeStandard:
		if auth.Origin, err = readSpendingCondition(r); err != nil {
			return auth, fmt.Errorf("origin: %w", err)
		}
	case AuthTypeSponsored:
		if auth.Origin, err = readSpendingCondition(r); err != nil {
			return auth, fmt.Errorf("origin: %w", err)
		}
		sponsor, err := readSpendingCondition(r)
		if err != nil {
			return auth, fmt.Errorf("sponsor: %w", err)
		}
		auth.Sponsor = &sponsor
	default:
		return auth, fmt.Errorf("unknown auth type 0x%02x", t)
	}
	return auth, nil
}

func readSpendingCondition(r *reader) (SpendingCondition, error) {
	var c SpendingCondition
	var err error
	if c.HashMode, err = r.u8(); err != nil {
		return c, err
	}
	if c.Signer, err = r.copyBytes(hash160Length); err != nil {
		return c, err
	}
	if c.Nonce, err = r.u64(); err != nil {
		return c, err
	}
	if c.Fee, err = r.u64(); err != nil {
		return c, err
	}

	switch c.HashMode {
	case HashModeP2PKH, HashModeP2WPKH:
		if c.KeyEncoding, err = r.u8(); err != nil {
			return c, err
		}
		if c.Signature, err = r.copyBytes(recoverableSigLength); err != nil {
			return c, err
		}
	case HashModeP2SH, HashModeP2WSH, HashModeP2SHNonSequential, HashModeP2WSHNonSequential:
		n, err := r.u32()
		if err != nil {
			return c, err
		}
		if int64(n) > int64(r.remaining()) {
			return c, fmt.Errorf("auth field count %d: %w", n, ErrShortBuffer)
		}
		c.Fields = make([]AuthField, 0, n)
		for i := uint32(0); i < n; i++ {
			field, err := readAuthField(r)
			if err != nil {
				return c, err
			}
			c.Fields = append(c.Fields, field)
		}
		if c.SignaturesRequired, err = r.u16(); err != nil {
			return c, err
		}
	default:
		return c, fmt.Errorf("unknown hash mode 0x%02x", c.HashMode)
	}
	return c, nil
}

func readAuthField(r *reader) (AuthField, error) {
	t, err := r.u8()
	if err != nil {
		return AuthField{}, err
	}
	var size int
	switch t {
	case authFieldPublicKeyCompressed, authFieldPublicKeyUncompressed:
		size = compressedPubKeyLength
	case authFieldSignatureCompressed, authFieldSignatureUncompressed:
		size = recoverableSigLength
	default:
		return AuthField{}, fmt.Errorf("unknown auth field type 0x%02x", t)
	}
	data, err := r.copyBytes(size)
	if err != nil {
		return AuthField{}, err
	}
	return AuthField{Type: t, Data: data}, nil
}

func readPostConditions(r *reader) ([]PostCondition, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	if int64(n) > int64(r.remaining()) {
		return nil, fmt.Errorf("post condition count %d: %w", n, ErrShortBuffer)
	}
	out := make([]PostCondition, 0, n)
	for i := uint32(0); i < n; i++ {
		pc, err := readPostCondition(r)
		if err != nil {
			return nil, fmt.Errorf("post condition %d: %w", i, err)
		}
		out = append(out, pc)
	}
	return out, nil
}

func readPostCondition(r *reader) (PostCondition, error) {
	var pc PostCondition
	t, err := r.u8()
	if err != nil {
		return pc, err
	}
	pc.Type = PostConditionType(t)
	if pc.Principal, err = readPostConditionPrincipal(r); err != nil {
		return pc, err
	}

	switch pc.Type {
	case PostConditionSTX:
	case PostConditionFT, PostConditionNFT:
		asset, err := readAssetInfo(r)
		if err != nil {
			return pc, err
		}
		pc.Asset = &asset
	default:
		return pc, fmt.Errorf("unknown post condition type 0x%02x", t)
	}

	if pc.Type == PostConditionNFT {
		if pc.AssetValue, err = readClarityValue(r, 0); err != nil {
			return pc, err
		}
	}
	if pc.ConditionCode, err = r.u8(); err != nil {
		return pc, err
	}
	if pc.Type != PostConditionNFT {
		if pc.Amount, err = r.u64(); err != nil {
			return pc, err
		}
	}
	return pc, nil
}

// Post condition principal tags.
const (
	postConditionPrincipalOrigin   byte = 0x01
	postConditionPrincipalStandard byte = 0x02
	postConditionPrincipalContract byte = 0x03
)

func readPostConditionPrincipal(r *reader) (string, error) {
	t, err := r.u8()
	if err != nil {
		return "", err
	}
	switch t {
	case postConditionPrincipalOrigin:
		return "origin", nil
	case postConditionPrincipalStandard:
		return readStandardPrincipal(r)
	case postConditionPrincipalContract:
		addr, err := readStandardPrincipal(r)
		if err != nil {
			return "", err
		}
		name, err := r.lpString()
		if err != nil {
			return "", err
		}
		return addr + "." + name, nil
	default:
		return "", fmt.Errorf("unknown post condition principal 0x%02x", t)
	}
}

func readAssetInfo(r *reader) (AssetInfo, error) {
	var a AssetInfo
	var err error
	if a.ContractAddress, err = readStandardPrincipal(r); err != nil {
		return a, err
	}
	if a.ContractName, err = r.lpString(); err != nil {
		return a, err
	}
	if a.AssetName, err = r.lpString(); err != nil {
		return a, err
	}
	return a, nil
}

func readPayload(r *reader) (Payload, error) {
	var p Payload
	t, err := r.u8()
	if err != nil {
		return p, err
	}
	p.Type = PayloadType(t)

	switch p.Type {
	case PayloadTokenTransfer:
		var tt TokenTransfer
		if tt.Recipient, err = readClarityValue(r, 0); err != nil {
			return p, fmt.Errorf("recipient: %w", err)
		}
		if tt.Recipient.Type != ClarityPrincipalStandard && tt.Recipient.Type != ClarityPrincipalContract {
			return p, fmt.Errorf("recipient is %s, not a principal", tt.Recipient.TypeName())
		}
		if tt.Amount, err = r.u64(); err != nil {
			return p, err
		}
		if tt.Memo, err = r.copyBytes(memoLength); err != nil {
			return p, err
		}
		p.TokenTransfer = &tt
	case PayloadSmartContract, PayloadVersionedSmartContract:
		var sc SmartContract
		if p.Type == PayloadVersionedSmartContract {
			if sc.ClarityVersion, err = r.u8(); err != nil {
				return p, err
			}
			p.Type = PayloadSmartContract
		}
		if sc.Name, err = r.lpString(); err != nil {
			return p, err
		}
		code, err := r.lpBytes()
		if err != nil {
			return p, err
		}
		sc.CodeBody = string(code)
		p.SmartContract = &sc
	case PayloadContractCall:
		var cc ContractCall
		if cc.Address, err = readStandardPrincipal(r); err != nil {
			return p, err
		}
		if cc.ContractName, err = r.lpString(); err != nil {
			return p, err
		}
		if cc.FunctionName, err = r.lpString(); err != nil {
			return p, err
		}
		argsStart := r.offset()
		n, err := r.u32()
		if err != nil {
			return p, err
		}
		if int64(n) > int64(r.remaining()) {
			return p, fmt.Errorf("argument count %d: %w", n, ErrShortBuffer)
		}
		for i := uint32(0); i < n; i++ {
			arg, err := readClarityValue(r, 0)
			if err != nil {
				return p, fmt.Errorf("argument %d: %w", i, err)
			}
			cc.Args = append(cc.Args, arg)
		}
		cc.RawArgs = append([]byte(nil), r.buf[argsStart:r.offset()]...)
		p.ContractCall = &cc
	case PayloadPoisonMicroblock:
		var pm PoisonMicroblock
		if pm.Header1, err = r.copyBytes(microblockHeaderLength); err != nil {
			return p, err
		}
		if pm.Header2, err = r.copyBytes(microblockHeaderLength); err != nil {
			return p, err
		}
		p.PoisonMicroblock = &pm
	case PayloadCoinbase, PayloadCoinbaseToAltRecipient:
		var cb Coinbase
		if cb.Payload, err = r.copyBytes(coinbaseBufferLength); err != nil {
			return p, err
		}
		if p.Type == PayloadCoinbaseToAltRecipient {
			if cb.AltRecipient, err = readClarityValue(r, 0); err != nil {
				return p, err
			}
			p.Type = PayloadCoinbase
		}
		p.Coinbase = &cb
	default:
		return p, fmt.Errorf("payload type 0x%02x: %w", t, ErrUnsupported)
	}
	return p, nil
}
