// Package codec decodes the Stacks transaction wire format and Clarity values.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrShortBuffer is returned when the input ends before a field is complete.
var ErrShortBuffer = errors.New("unexpected end of input")

type reader struct {
	buf []byte
	pos int
}

func newReader(b []byte) *reader {
	return &reader{buf: b}
}

func (r *reader) remaining() int {
	return len(r.buf) - r.pos
}

func (r *reader) offset() int {
	return r.pos
}

func (r *reader) bytes(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, fmt.Errorf("read %d bytes at offset %d: %w", n, r.pos, ErrShortBuffer)
	}
	out := r.buf[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

func (r *reader) u8() (byte, error) {
	b, err := r.bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) u16() (uint16, error) {
	b, err := r.bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *reader) u32() (uint32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *reader) u64() (uint64, error) {
	b, err := r.bytes(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// lpString reads a string prefixed with a one byte length.
func (r *reader) lpString() (string, error) {
	n, err := r.u8()
	if err != nil {
		return "", err
	}
	b, err := r.bytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// lpBytes reads a byte slice prefixed with a four byte length.
func (r *reader) lpBytes() ([]byte, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	if int64(n) > int64(r.remaining()) {
		return nil, fmt.Errorf("length %d exceeds remaining %d: %w", n, r.remaining(), ErrShortBuffer)
	}
	return r.bytes(int(n))
}

func (r *reader) copyBytes(n int) ([]byte, error) {
	b, err := r.bytes(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}
