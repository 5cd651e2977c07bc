package codec

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const c32Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// Address versions.
const (
	AddressVersionMainnetSingleSig byte = 22
	AddressVersionMainnetMultiSig  byte = 20
	AddressVersionTestnetSingleSig byte = 26
	AddressVersionTestnetMultiSig  byte = 21
)

var (
	// ErrInvalidAddress is returned for strings that are not c32check addresses.
	ErrInvalidAddress = errors.New("invalid c32 address")
	// ErrChecksum is returned when an address checksum does not match.
	ErrChecksum = errors.New("c32 checksum mismatch")

	big32 = big.NewInt(32)
)

// C32Encode encodes data in Crockford base32 using the Stacks alphabet.
// Each leading zero byte is kept as a leading '0'.
func C32Encode(data []byte) string {
	n := new(big.Int).SetBytes(data)
	mod := new(big.Int)
	var digits []byte
	for n.Sign() > 0 {
		n.DivMod(n, big32, mod)
		digits = append(digits, c32Alphabet[mod.Int64()])
	}
	for _, b := range data {
		if b != 0 {
			break
		}
		digits = append(digits, '0')
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// C32Decode reverses C32Encode.
func C32Decode(s string) ([]byte, error) {
	s = normalizeC32(s)
	n := new(big.Int)
	leadingZeros := 0
	leading := true
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte(c32Alphabet, s[i])
		if idx < 0 {
			return nil, fmt.Errorf("character %q: %w", s[i], ErrInvalidAddress)
		}
		if leading && idx == 0 {
			leadingZeros++
			continue
		}
		leading = false
		n.Mul(n, big32)
		n.Add(n, big.NewInt(int64(idx)))
	}
	out := make([]byte, leadingZeros, leadingZeros+len(n.Bytes()))
	return append(out, n.Bytes()...), nil
}

func normalizeC32(s string) string {
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "O", "0")
	s = strings.ReplaceAll(s, "L", "1")
	return strings.ReplaceAll(s, "I", "1")
}

func c32Checksum(version byte, data []byte) []byte {
	first := sha256.Sum256(append([]byte{version}, data...))
	second := sha256.Sum256(first[:])
	return second[:4]
}

// C32CheckEncode encodes data with a version prefix and a 4 byte checksum.
func C32CheckEncode(version byte, data []byte) string {
	payload := make([]byte, 0, len(data)+4)
	payload = append(payload, data...)
	payload = append(payload, c32Checksum(version, data)...)
	return string(c32Alphabet[version&0x1f]) + C32Encode(payload)
}

// C32CheckDecode returns the version and data of a c32check string.
func C32CheckDecode(s string) (byte, []byte, error) {
	if len(s) < 2 {
		return 0, nil, ErrInvalidAddress
	}
	s = normalizeC32(s)
	version := strings.IndexByte(c32Alphabet, s[0])
	if version < 0 {
		return 0, nil, ErrInvalidAddress
	}
	payload, err := C32Decode(s[1:])
	if err != nil {
		return 0, nil, err
	}
	if len(payload) < 4 {
		return 0, nil, ErrInvalidAddress
	}
	data, sum := payload[:len(payload)-4], payload[len(payload)-4:]
	if !bytes.Equal(sum, c32Checksum(byte(version), data)) {
		return 0, nil, ErrChecksum
	}
	return byte(version), data, nil
}

// Address renders a Stacks address for a version and hash160.
func Address(version byte, hash160 []byte) string {
	return "S" + C32CheckEncode(version, hash160)
}

// ParseAddress validates a Stacks address and returns its parts.
func ParseAddress(addr string) (byte, []byte, error) {
	if len(addr) < 3 || (addr[0] != 'S' && addr[0] != 's') {
		return 0, nil, ErrInvalidAddress
	}
	version, data, err := C32CheckDecode(addr[1:])
	if err != nil {
		return 0, nil, err
	}
	if len(data) != 20 {
		return 0, nil, fmt.Errorf("hash length %d: %w", len(data), ErrInvalidAddress)
	}
	return version, data, nil
}

// IsValidPrincipal reports whether s is a standard or contract principal.
func IsValidPrincipal(s string) bool {
	addr, name, isContract := strings.Cut(s, ".")
	if isContract && (name == "" || len(name) > 128) {
		return false
	}
	_, _, err := ParseAddress(addr)
	return err == nil
}

// IsContractPrincipal reports whether s names a contract.
func IsContractPrincipal(s string) bool {
	return strings.Contains(s, ".")
}
