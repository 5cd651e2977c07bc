package bns

import (
	"bytes"
	"encoding/binary"
	"math/big"
)

type entry struct {
	name  string
	value []byte
}

func cvUint(v uint64) []byte {
	b := make([]byte, 17)
	b[0] = 0x01
	new(big.Int).SetUint64(v).FillBytes(b[1:])
	return b
}

func withLength(prefix byte, data []byte) []byte {
	b := make([]byte, 5, 5+len(data))
	b[0] = prefix
	binary.BigEndian.PutUint32(b[1:], uint32(len(data)))
	return append(b, data...)
}

func cvBuffer(data []byte) []byte { return withLength(0x02, data) }

func cvASCII(s string) []byte { return withLength(0x0d, []byte(s)) }

func cvPrincipal(version byte, hash []byte) []byte {
	return append([]byte{0x05, version}, hash...)
}

func cvSome(v []byte) []byte { return append([]byte{0x0a}, v...) }

func cvList(items ...[]byte) []byte {
	var buf bytes.Buffer
	buf.WriteByte(0x0b)
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(items)))
	for _, item := range items {
		buf.Write(item)
	}
	return buf.Bytes()
}

func cvTuple(entries ...entry) []byte {
	var buf bytes.Buffer
	buf.WriteByte(0x0c)
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(entries)))
	for _, e := range entries {
		buf.WriteByte(byte(len(e.name)))
		buf.WriteString(e.name)
		buf.Write(e.value)
	}
	return buf.Bytes()
}
