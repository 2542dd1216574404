// Package blockstore is the read side of the ledger storage engine: it
// reconstructs confirmed blocks, entries, and transactions out of the
// shred-indexed column families pkg/kvstore exposes.
//
// A shred is the atomic, erasure-coded unit a block is physically stored
// as. Reconstructing a block means: find the slot's metadata, derive which
// contiguous shred-index ranges form complete data blocks, fetch every
// shred in those ranges, deshred them into a flat byte buffer, and decode
// that buffer into the entries (and, transitively, transactions) it
// encodes. Reader.GetCompleteBlockWithEntries is the composition of all of
// that plus transaction-status lookups, reward/blocktime/block-height
// attachment, and previous-blockhash resolution against the parent slot.
//
// The defining difficulty of this package is not the happy path above —
// it's that a background cleaner (external to this package; represented
// here only by the writer side of the lowestCleanupSlot guard) may be
// deleting old slots out from under a read in progress. CleanupGuard is
// the mechanism that makes a multi-column read either observe a fully
// pre-cleanup snapshot or fail explicitly with ErrSlotCleanedUp — it is
// never allowed to silently return a partial or zero-value result. Every
// Reader method that touches more than one column family takes a
// CleanupGuard before its first dependent read and holds it through the
// last.
//
// Two collaborators are deliberately kept external and passed in as
// interfaces rather than implemented here: Deshredder (erasure
// reconstruction of a data block from its shred payloads) and
// EntryDecoder (the ledger's canonical binary encoding of an entry list).
// Both are protocol-format concerns orthogonal to the consistency and
// range-resolution logic this package owns.
//
// Reader holds two pieces of process-wide state for its whole lifetime:
// lowestCleanupSlot (reader-writer guarded, written by the external
// cleaner) and maxRoot (atomic, monotonically non-decreasing, written by
// the external consensus/commitment layer). Every other piece of state a
// Reader method needs is read fresh from the column-family store on each
// call; Reader itself is stateless beyond those two fields and is safe
// for concurrent use by many caller goroutines.
package blockstore
