package types

// Reward is a single account's reward for a slot (staking/voting payout,
// rent reclaim, etc).
type Reward struct {
	Pubkey      Pubkey
	Lamports    int64
	PostBalance uint64
	RewardType  string
	Commission  *uint8
}

// BlockRewards is the rewards column family's persisted value for a slot.
type BlockRewards struct {
	Rewards       []Reward
	NumPartitions *uint64
}

// PerfSample is a recent-performance-samples column family entry.
type PerfSample struct {
	Slot              Slot
	NumTransactions   uint64
	NumSlots          uint64
	SamplePeriodSecs  uint16
	NumNonVoteTransactions uint64
}

// ProgramCost is the cost-tracker estimate for a program, persisted keyed
// by program Pubkey.
type ProgramCost struct {
	Cost uint64
}

// BankHash is the bank_hash column family's persisted value for a slot.
type BankHash struct {
	FrozenHash          Hash
	IsDuplicateConfirmed bool
}

// OptimisticSlot is the optimistic_slots column family's persisted value:
// a slot that received optimistic confirmation but may not yet be rooted.
type OptimisticSlot struct {
	Hash      Hash
	Timestamp UnixTimestamp
}

// DuplicateSlotProof is the duplicate_slots column family's persisted
// value: evidence of two conflicting versions of the same slot.
type DuplicateSlotProof struct {
	ShredSlot    Slot
	ShredIndex   uint64
	ShredPayload []byte
	ConflictingPayload []byte
}
