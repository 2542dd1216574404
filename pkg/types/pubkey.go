package types

import (
	"github.com/mr-tron/base58"
)

// PubkeySize is the fixed width of a Pubkey, in bytes.
const PubkeySize = 32

// Pubkey identifies an account or a leader (validator identity).
type Pubkey [PubkeySize]byte

// Equal reports whether two public keys are byte-identical.
func (p Pubkey) Equal(other Pubkey) bool {
	return p == other
}

// IsZero reports whether p is the zero pubkey.
func (p Pubkey) IsZero() bool {
	return p == Pubkey{}
}

// Bytes returns the underlying bytes as a slice.
func (p Pubkey) Bytes() []byte {
	return p[:]
}

// String renders the public key base58-encoded.
func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

// PubkeyFromBase58 parses a base58-encoded 32-byte public key.
func PubkeyFromBase58(s string) (Pubkey, error) {
	var p Pubkey
	decoded, err := base58.Decode(s)
	if err != nil {
		return p, err
	}
	if len(decoded) != PubkeySize {
		return p, ErrInvalidLength
	}
	copy(p[:], decoded)
	return p, nil
}

// PubkeyFromBytes copies a 32-byte slice into a Pubkey.
func PubkeyFromBytes(b []byte) (Pubkey, error) {
	var p Pubkey
	if len(b) != PubkeySize {
		return p, ErrInvalidLength
	}
	copy(p[:], b)
	return p, nil
}
