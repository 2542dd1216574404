package types

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	"github.com/mr-tron/base58"
)

// HashSize is the fixed width of a Hash, in bytes.
const HashSize = 32

// Hash is a 32-byte digest. It is used both as a cryptographic identifier
// and as the Poh chain link between consecutive entries within a slot.
type Hash [HashSize]byte

// Ordering is the result of comparing two Hash values.
type Ordering int

const (
	Less Ordering = iota - 1
	Equal
	Greater
)

// ZeroHash returns the all-zero hash used as the previous-blockhash of a
// slot whose parent has no recorded entries.
func ZeroHash() Hash {
	return Hash{}
}

// HashFromBytes computes the SHA-256 digest of payload.
func HashFromBytes(payload []byte) Hash {
	return Hash(sha256.Sum256(payload))
}

// Compare performs a bytewise, most-significant-byte-first comparison.
func (h Hash) Compare(other Hash) Ordering {
	switch bytes.Compare(h[:], other[:]) {
	case -1:
		return Less
	case 1:
		return Greater
	default:
		return Equal
	}
}

// IsZero reports whether h is the all-zero hash.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// Extend computes sha256(h ‖ suffix), the Poh hash-extend operation.
// Note Extend(Extend(h, a), b) != Extend(h, a‖b) in general: extending
// twice hashes twice, it does not flatten the two suffixes into one input.
func (h Hash) Extend(suffix []byte) Hash {
	buf := make([]byte, 0, HashSize+len(suffix))
	buf = append(buf, h[:]...)
	buf = append(buf, suffix...)
	return HashFromBytes(buf)
}

// Bytes returns the underlying bytes as a slice.
func (h Hash) Bytes() []byte {
	return h[:]
}

// String renders the hash base58-encoded, the conventional Solana
// ledger-tool representation.
func (h Hash) String() string {
	return base58.Encode(h[:])
}

// Hex renders the hash as lowercase hex, useful in log lines where
// base58's variable width is inconvenient to scan.
func (h Hash) Hex() string {
	return hex.EncodeToString(h[:])
}

// HashFromBase58 parses a base58-encoded 32-byte hash.
func HashFromBase58(s string) (Hash, error) {
	var h Hash
	decoded, err := base58.Decode(s)
	if err != nil {
		return h, err
	}
	if len(decoded) != HashSize {
		return h, ErrInvalidLength
	}
	copy(h[:], decoded)
	return h, nil
}
