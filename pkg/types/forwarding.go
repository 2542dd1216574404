package types

import (
	"net"
	"time"
)

// TransactionInfo is the forwarding pending-pool's bookkeeping record for
// one in-flight client transaction.
type TransactionInfo struct {
	Signature Signature
	// WireBytes is the fully-signed, serialized transaction ready to be
	// pushed to a leader's TPU socket as-is.
	WireBytes []byte

	LastValidBlockHeight uint64

	// DurableNonceInfo is set for nonce-based transactions, which remain
	// valid indefinitely rather than expiring at LastValidBlockHeight.
	DurableNonceInfo *DurableNonceInfo

	// MaxRetries caps the number of resend attempts; nil means unlimited
	// (bounded only by LastValidBlockHeight expiry).
	MaxRetries *int

	Retries      int
	LastSentTime *time.Time
}

// DurableNonceInfo identifies the nonce account and stored nonce value a
// durable-nonce transaction was built against.
type DurableNonceInfo struct {
	NonceAccount Pubkey
	NonceValue   Hash
}

// EpochInfo is the epoch metadata returned by the RPC oracle's
// GetEpochInfo, captured together with the instant it was fetched so that
// slot-elapsed arithmetic has a stable reference point.
type EpochInfo struct {
	Epoch      uint64
	SlotIndex  uint64
	SlotsInEpoch uint64
	AbsoluteSlot Slot
}

// SlotLeader pairs a slot with the leader pubkey scheduled for it.
type SlotLeader struct {
	Slot   Slot
	Leader Pubkey
}

// ServiceInfo is the forwarding service's refreshed snapshot of external
// state: epoch info, the leader schedule for the epoch, a leader pubkey ->
// TPU address map, and the most recent blockhash.
type ServiceInfo struct {
	EpochInfo         EpochInfo
	EpochInfoInstant  time.Time
	LatestBlockhash   Hash
	// SlotLeaders is sorted ascending by Slot; StartSlot is the slot
	// SlotLeaders[0] corresponds to.
	SlotLeaders []SlotLeader
	StartSlot   Slot
	// LeaderAddresses maps a leader pubkey to its advertised TPU socket,
	// for every leader currently reachable through gossip.
	LeaderAddresses map[Pubkey]*net.UDPAddr
}
