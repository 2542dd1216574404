package types

import "errors"

// ErrInvalidLength is returned when decoding a fixed-width value
// (Hash, Signature, Pubkey) from a byte slice or base58 string of the
// wrong length.
var ErrInvalidLength = errors.New("types: invalid encoded length")
