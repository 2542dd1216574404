package types

// Entry is a single step of the Proof-of-History chain within a slot:
// NumHashes ticks of the hash chain were computed since the previous
// entry, landing on Hash, optionally with transactions mixed in.
type Entry struct {
	NumHashes    uint64
	Hash         Hash
	Transactions []VersionedTransaction
}

// EntrySummary is the per-entry view returned by
// Reader.GetCompleteBlockWithEntries when populateEntries is requested.
type EntrySummary struct {
	NumHashes               uint64
	Hash                    Hash
	NumTransactions         int
	StartingTransactionIndex int
}
