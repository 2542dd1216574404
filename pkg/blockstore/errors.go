package blockstore

import "errors"

// Consistency-violation errors: the store observed data that should be
// impossible under the cleanup/rooting invariants.
var (
	// ErrSlotCleanedUp is returned when a query targets a slot at or below
	// lowestCleanupSlot: the background cleaner may have already purged it.
	ErrSlotCleanedUp = errors.New("blockstore: slot cleaned up")

	// ErrCorruptedBlockstore is returned when a shred expected to exist
	// (the slot is above lowestCleanupSlot, so cleanup cannot explain the
	// miss) is absent.
	ErrCorruptedBlockstore = errors.New("blockstore: corrupted blockstore")

	// ErrUnwrap is returned when an iterator key-match guarantees a value
	// exists but the value column lookup misses it.
	ErrUnwrap = errors.New("blockstore: missing value for known key")

	// ErrTransactionStatusSlotMismatch names a transaction status record
	// whose slot disagrees with the slot it was looked up under. No Reader
	// method returns it.
	ErrTransactionStatusSlotMismatch = errors.New("blockstore: transaction status slot mismatch")
)

// Not-found / unavailable errors: the requested data is well-formed but
// does not (yet, or ever) exist.
var (
	ErrSlotUnavailable          = errors.New("blockstore: slot unavailable")
	ErrSlotNotRooted            = errors.New("blockstore: slot not rooted")
	ErrDeadSlot                 = errors.New("blockstore: dead slot")
	ErrMissingTransactionMetadata = errors.New("blockstore: missing transaction metadata")
	ErrMissingParentSlot        = errors.New("blockstore: missing parent slot")
	ErrParentEntriesUnavailable = errors.New("blockstore: parent entries unavailable")
)

// Malformed-data errors.
var (
	ErrInvalidDataShred = errors.New("blockstore: invalid data shred")
	ErrInvalidShredData = errors.New("blockstore: invalid shred data")
)

// Iterator-invariant errors.
var (
	ErrIteratorMissingKey   = errors.New("blockstore: iterator missing key")
	ErrIteratorMissingValue = errors.New("blockstore: iterator missing value")
)
