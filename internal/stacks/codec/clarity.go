package codec

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ClarityType is the serialization prefix of a Clarity value.
type ClarityType byte

const (
	ClarityInt               ClarityType = 0x00
	ClarityUInt              ClarityType = 0x01
	ClarityBuffer            ClarityType = 0x02
	ClarityBoolTrue          ClarityType = 0x03
	ClarityBoolFalse         ClarityType = 0x04
	ClarityPrincipalStandard ClarityType = 0x05
	ClarityPrincipalContract ClarityType = 0x06
	ClarityResponseOk        ClarityType = 0x07
	ClarityResponseErr       ClarityType = 0x08
	ClarityOptionalNone      ClarityType = 0x09
	ClarityOptionalSome      ClarityType = 0x0a
	ClarityList              ClarityType = 0x0b
	ClarityTuple             ClarityType = 0x0c
	ClarityStringASCII       ClarityType = 0x0d
	ClarityStringUTF8        ClarityType = 0x0e
)

const maxClarityDepth = 64

// TupleEntry is a named tuple member.
type TupleEntry struct {
	Name  string
	Value *ClarityValue
}

// ClarityValue is a deserialized Clarity value.
type ClarityValue struct {
	Type      ClarityType
	Int       *big.Int
	Buffer    []byte
	Principal string
	Inner     *ClarityValue
	List      []*ClarityValue
	Tuple     []TupleEntry
}

// DecodeClarityValue deserializes a single Clarity value that spans all of b.
func DecodeClarityValue(b []byte) (*ClarityValue, error) {
	r := newReader(b)
	v, err := readClarityValue(r, 0)
	if err != nil {
		return nil, err
	}
	if r.remaining() != 0 {
		return nil, fmt.Errorf("clarity value: %d trailing bytes", r.remaining())
	}
	return v, nil
}

// DecodeClarityValueHex deserializes a 0x-prefixed hex Clarity value.
func DecodeClarityValueHex(s string) (*ClarityValue, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("clarity value hex: %w", err)
	}
	return DecodeClarityValue(b)
}

func readClarityValue(r *reader, depth int) (*ClarityValue, error) {
	if depth > maxClarityDepth {
		return nil, fmt.Errorf("clarity value nested deeper than %d", maxClarityDepth)
	}
	prefix, err := r.u8()
	if err != nil {
		return nil, err
	}
	v := &ClarityValue{Type: ClarityType(prefix)}

	switch v.Type {
	case ClarityInt, ClarityUInt:
		raw, err := r.bytes(16)
		if err != nil {
			return nil, err
		}
		v.Int = new(big.Int).SetBytes(raw)
		if v.Type == ClarityInt && raw[0]&0x80 != 0 {
			v.Int.Sub(v.Int, new(big.Int).Lsh(big.NewInt(1), 128))
		}
	case ClarityBuffer, ClarityStringASCII, ClarityStringUTF8:
		raw, err := r.lpBytes()
		if err != nil {
			return nil, err
		}
		v.Buffer = append([]byte(nil), raw...)
	case ClarityBoolTrue, ClarityBoolFalse, ClarityOptionalNone:
	case ClarityPrincipalStandard:
		addr, err := readStandardPrincipal(r)
		if err != nil {
			return nil, err
		}
		v.Principal = addr
	case ClarityPrincipalContract:
		addr, err := readStandardPrincipal(r)
		if err != nil {
			return nil, err
		}
		name, err := r.lpString()
		if err != nil {
			return nil, err
		}
		v.Principal = addr + "." + name
	case ClarityResponseOk, ClarityResponseErr, ClarityOptionalSome:
		inner, err := readClarityValue(r, depth+1)
		if err != nil {
			return nil, err
		}
		v.Inner = inner
	case ClarityList:
		n, err := r.u32()
		if err != nil {
			return nil, err
		}
		if int64(n) > int64(r.remaining()) {
			return nil, fmt.Errorf("list length %d: %w", n, ErrShortBuffer)
		}
		v.List = make([]*ClarityValue, 0, n)
		for i := uint32(0); i < n; i++ {
			item, err := readClarityValue(r, depth+1)
			if err != nil {
				return nil, err
			}
			v.List = append(v.List, item)
		}
	case ClarityTuple:
		n, err := r.u32()
		if err != nil {
			return nil, err
		}
		if int64(n) > int64(r.remaining()) {
			return nil, fmt.Errorf("tuple length %d: %w", n, ErrShortBuffer)
		}
		v.Tuple = make([]TupleEntry, 0, n)
		for i := uint32(0); i < n; i++ {
			name, err := r.lpString()
			if err != nil {
				return nil, err
			}
			item, err := readClarityValue(r, depth+1)
			if err != nil {
				return nil, err
			}
			v.Tuple = append(v.Tuple, TupleEntry{Name: name, Value: item})
		}
	default:
		return nil, fmt.Errorf("unknown clarity type prefix 0x%02x", prefix)
	}
	return v, nil
}

func readStandardPrincipal(r *reader) (string, error) {
	version, err := r.u8()
	if err != nil {
		return "", err
	}
	hash, err := r.bytes(20)
	if err != nil {
		return "", err
	}
	return Address(version, hash), nil
}

// Field returns the tuple member with the given name.
func (v *ClarityValue) Field(name string) (*ClarityValue, bool) {
	if v == nil || v.Type != ClarityTuple {
		return nil, false
	}
	for _, e := range v.Tuple {
		if e.Name == name {
			return e.Value, true
		}
	}
	return nil, false
}

// Bool reports the value of a boolean.
func (v *ClarityValue) Bool() bool {
	return v != nil && v.Type == ClarityBoolTrue
}

// String returns the text of a string-ascii or string-utf8 value.
func (v *ClarityValue) String() string {
	if v == nil {
		return ""
	}
	return string(v.Buffer)
}

// Uint64 returns an int or uint value that fits in 64 bits.
func (v *ClarityValue) Uint64() (uint64, error) {
	if v == nil || v.Int == nil {
		return 0, fmt.Errorf("clarity value is not an integer")
	}
	if v.Int.Sign() < 0 || !v.Int.IsUint64() {
		return 0, fmt.Errorf("clarity integer %s out of range", v.Int)
	}
	return v.Int.Uint64(), nil
}

// Repr renders the value in Clarity syntax.
func (v *ClarityValue) Repr() string {
	if v == nil {
		return ""
	}
	switch v.Type {
	case ClarityInt:
		return v.Int.String()
	case ClarityUInt:
		return "u" + v.Int.String()
	case ClarityBuffer:
		return "0x" + hex.EncodeToString(v.Buffer)
	case ClarityBoolTrue:
		return "true"
	case ClarityBoolFalse:
		return "false"
	case ClarityPrincipalStandard, ClarityPrincipalContract:
		return "'" + v.Principal
	case ClarityResponseOk:
		return "(ok " + v.Inner.Repr() + ")"
	case ClarityResponseErr:
		return "(err " + v.Inner.Repr() + ")"
	case ClarityOptionalNone:
		return "none"
	case ClarityOptionalSome:
		return "(some " + v.Inner.Repr() + ")"
	case ClarityList:
		parts := make([]string, 0, len(v.List)+1)
		parts = append(parts, "list")
		for _, item := range v.List {
			parts = append(parts, item.Repr())
		}
		return "(" + strings.Join(parts, " ") + ")"
	case ClarityTuple:
		parts := make([]string, 0, len(v.Tuple)+1)
		parts = append(parts, "tuple")
		for _, e := range v.Tuple {
			parts = append(parts, "("+e.Name+" "+e.Value.Repr()+")")
		}
		return "(" + strings.Join(parts, " ") + ")"
	case ClarityStringASCII:
		return strconv.Quote(string(v.Buffer))
	case ClarityStringUTF8:
		return "u" + strconv.Quote(string(v.Buffer))
	default:
		return ""
	}
}

// TypeName returns the Clarity type signature name of the value.
func (v *ClarityValue) TypeName() string {
	switch v.Type {
	case ClarityInt:
		return "int"
	case ClarityUInt:
		return "uint"
	case ClarityBuffer:
		return "buff"
	case ClarityBoolTrue, ClarityBoolFalse:
		return "bool"
	case ClarityPrincipalStandard, ClarityPrincipalContract:
		return "principal"
	case ClarityResponseOk, ClarityResponseErr:
		return "response"
	case ClarityOptionalNone, ClarityOptionalSome:
		return "optional"
	case ClarityList:
		return "list"
	case ClarityTuple:
		return "tuple"
	case ClarityStringASCII:
		return "string-ascii"
	case ClarityStringUTF8:
		return "string-utf8"
	default:
		return "unknown"
	}
}
