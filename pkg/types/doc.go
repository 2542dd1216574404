/*
Package types defines the core data structures shared by the blockstore
reader and the transaction forwarding service.

This package contains the fixed-width protocol primitives (Hash, Slot,
Signature, Pubkey), the per-slot metadata and shred/entry/transaction shapes
persisted in the ledger, and the forwarding service's in-memory bookkeeping
types (TransactionInfo, ServiceInfo). These types carry no behavior beyond
what the specification assigns them — no database access, no network calls.

# Architecture

	┌─────────────────────── PROTOCOL PRIMITIVES ───────────────────────┐
	│  Hash (32B)     Signature (64B)     Pubkey (32B)     Slot (u64)    │
	└─────────────────────────────────────────────────────────────────┘
	                              │
	┌─────────────────────────────▼─────────────────────────────────────┐
	│                      LEDGER VALUE TYPES                            │
	│  SlotMeta   Shred (Data/Code)   Entry   VersionedTransaction       │
	│  TransactionStatusMeta   Rewards   PerfSample   BankHash           │
	└─────────────────────────────────────────────────────────────────┘
	                              │
	┌─────────────────────────────▼─────────────────────────────────────┐
	│                    FORWARDING BOOKKEEPING                           │
	│  TransactionInfo   ServiceInfo   SlotLeader                        │
	└─────────────────────────────────────────────────────────────────┘

# Core Types

Protocol primitives:
  - Hash: 32-byte digest with lexicographic compare and hash-extend.
  - Slot: unsigned 64-bit ledger-time index.
  - Signature: 64-byte transaction identity.
  - Pubkey: 32-byte account/leader identifier.

Ledger value types:
  - SlotMeta: per-slot shred bookkeeping (received, consumed, parent,
    children, completed data ranges).
  - Shred: DataShred or CodeShred, the atomic erasure-coded unit.
  - Entry: a Poh-chained (num_hashes, hash, transactions) triple.
  - VersionedTransaction: signatures plus a versioned message.
  - TransactionStatusMeta: optional execution result.

Forwarding bookkeeping:
  - TransactionInfo: one pending transaction's retry/send state.
  - ServiceInfo: the refreshed epoch/leader-schedule/blockhash snapshot.

# Thread Safety

Values in this package carry no synchronization of their own — callers
(pkg/blockstore, pkg/forwarding) own whatever locking their containing
structure requires. Hash, Slot, Signature and Pubkey are plain value types
and are safe to copy and compare freely.

# See Also

  - pkg/kvstore for the column-family store these types are persisted in.
  - pkg/blockstore for the read API built on top of them.
  - pkg/forwarding for TransactionInfo/ServiceInfo's lifecycle.
*/
package types
