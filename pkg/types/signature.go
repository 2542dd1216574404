package types

import (
	"github.com/mr-tron/base58"
)

// SignatureSize is the fixed width of a Signature, in bytes.
const SignatureSize = 64

// Signature uniquely identifies one transaction attempt. It is the first
// signature in a VersionedTransaction's signature list.
type Signature [SignatureSize]byte

// Equal reports whether two signatures are byte-identical.
func (s Signature) Equal(other Signature) bool {
	return s == other
}

// IsZero reports whether s is the zero signature (never a valid signed
// transaction identity, used as a sentinel in range-seek keys).
func (s Signature) IsZero() bool {
	return s == Signature{}
}

// Bytes returns the underlying bytes as a slice.
func (s Signature) Bytes() []byte {
	return s[:]
}

// String renders the signature base58-encoded.
func (s Signature) String() string {
	return base58.Encode(s[:])
}

// SignatureFromBase58 parses a base58-encoded 64-byte signature.
func SignatureFromBase58(str string) (Signature, error) {
	var s Signature
	decoded, err := base58.Decode(str)
	if err != nil {
		return s, err
	}
	if len(decoded) != SignatureSize {
		return s, ErrInvalidLength
	}
	copy(s[:], decoded)
	return s, nil
}

// SignatureFromBytes copies a 64-byte slice into a Signature.
func SignatureFromBytes(b []byte) (Signature, error) {
	var s Signature
	if len(b) != SignatureSize {
		return s, ErrInvalidLength
	}
	copy(s[:], b)
	return s, nil
}
