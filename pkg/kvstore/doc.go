// Package kvstore is the column-family key-value engine the blockstore
// reader is built on.
//
// Shreds, slot metadata, transaction statuses, and every other persisted
// ledger artifact live in one bbolt database, partitioned into named
// column families. A column family here is a bbolt bucket: Store opens (or
// creates) every bucket named in the CF list up front, in a single startup
// transaction, the same way pkg/storage's BoltStore pre-creates its
// buckets — so a running Store never has to fall back to lazy bucket
// creation on a write path.
//
// Keys are fixed-width and big-endian encoded field-by-field (see
// pkg/types/keys.go). bbolt orders keys by byte comparison; only a
// big-endian encoding makes that byte order equal the numeric/tuple order
// callers actually want (slot 10 sorting after slot 9, not before, the way
// a naive ASCII or little-endian encoding would produce). Every range scan
// the blockstore reader performs — address-signature pagination,
// transaction-status lookup, missing-shred discovery — depends on this
// property holding.
//
// Store's read surface is split in two:
//
//   - Get / Iterator give callers a decoded, directional view over a CF,
//     suitable for the common case of "find the next/previous key at or
//     after X".
//   - RawIterator, handed out by View, exposes the underlying *bolt.Cursor
//     one-to-one (Seek, Valid, Key, Value, Next, Prev), for callers — the
//     blockstore's missing-shred scan and transaction-status lookup — that
//     need to interleave cursor movement with application logic bbolt's
//     own API doesn't model directly.
//
// A Store is safe for concurrent use by multiple goroutines; bbolt permits
// many concurrent read transactions alongside a single writer.
package kvstore
