package codec

import (
	"encoding/binary"
	"math/big"
)

func u16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

func u32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func u64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func lp(s string) []byte {
	return append([]byte{byte(len(s))}, s...)
}

func cvUint(v uint64) []byte {
	b := new(big.Int).SetUint64(v).FillBytes(make([]byte, 16))
	return append([]byte{0x01}, b...)
}

func cvBuffer(b []byte) []byte {
	return concat([]byte{0x02}, u32(uint32(len(b))), b)
}

func cvASCII(s string) []byte {
	return concat([]byte{0x0d}, u32(uint32(len(s))), []byte(s))
}

func cvPrincipal(version byte, hash []byte) []byte {
	return concat([]byte{0x05, version}, hash)
}

func cvContract(version byte, hash []byte, name string) []byte {
	return concat([]byte{0x06, version}, hash, lp(name))
}

func cvList(items ...[]byte) []byte {
	return concat([]byte{0x0b}, u32(uint32(len(items))), concat(items...))
}

func cvEntry(name string, value []byte) []byte {
	return concat(lp(name), value)
}

func cvTuple(entries ...[]byte) []byte {
	return concat([]byte{0x0c}, u32(uint32(len(entries))), concat(entries...))
}

func singleSig(hashMode byte, signer []byte, nonce, fee uint64) []byte {
	return concat([]byte{hashMode}, signer, u64(nonce), u64(fee), []byte{0x00}, make([]byte, 65))
}

func standardAuth(cond []byte) []byte {
	return concat([]byte{byte(AuthTypeStandard)}, cond)
}

func sponsoredAuth(origin, sponsor []byte) []byte {
	return concat([]byte{byte(AuthTypeSponsored)}, origin, sponsor)
}

func rawTx(version TransactionVersion, auth, postConditions, payload []byte) []byte {
	if postConditions == nil {
		postConditions = u32(0)
	}
	return concat([]byte{byte(version)}, u32(1), auth, []byte{0x03, 0x01}, postConditions, payload)
}
