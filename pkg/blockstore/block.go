package blockstore

import (
	"github.com/cuemby/ledgerd/pkg/kvstore"
	"github.com/cuemby/ledgerd/pkg/types"
)

// CompleteBlock is the composite value GetCompleteBlockWithEntries
// returns: a full reconstruction of a slot's transactions plus the
// metadata an RPC-style block response attaches.
type CompleteBlock struct {
	Blockhash         types.Hash
	PreviousBlockhash types.Hash
	ParentSlot        *types.Slot
	Transactions      []BlockTransaction
	Entries           []types.EntrySummary // only populated if requested
	Rewards           types.BlockRewards
	BlockTime         *types.UnixTimestamp
	BlockHeight       *uint64
}

// BlockTransaction pairs a transaction with its execution status.
type BlockTransaction struct {
	Transaction types.VersionedTransaction
	Meta        types.TransactionStatusMeta
}

// getSlotEntriesWithShredInfo resolves completed ranges, checks deadness
// (after range resolution, deliberately, so the dead check is never older
// than the slot_meta read the ranges came from), and assembles entries.
// Returns (entries, numShreds, isFull).
func (r *Reader) getSlotEntriesWithShredInfo(slot types.Slot, startIdx uint64, allowDead bool) ([]types.Entry, uint64, bool, error) {
	meta, found, err := r.getSlotMeta(slot)
	if err != nil {
		return nil, 0, false, err
	}
	if !found {
		return nil, 0, false, nil
	}

	ranges := ResolveCompletedRanges(slot, startIdx, meta)

	dead, err := r.IsDead(slot)
	if err != nil {
		return nil, 0, false, err
	}
	if dead && !allowDead {
		return nil, 0, false, ErrDeadSlot
	}

	if len(ranges) == 0 {
		return nil, 0, false, nil
	}

	entries, err := r.assembleBlock(slot, ranges, r.cleanup.get())
	if err != nil {
		return nil, 0, false, err
	}

	lastRange := ranges[len(ranges)-1]
	numShreds := lastRange.End - startIdx + 1
	return entries, numShreds, meta.IsFull(), nil
}

// GetSlotEntries assembles the entries for slot starting at startIdx,
// disallowing dead slots.
func (r *Reader) GetSlotEntries(slot types.Slot, startIdx uint64) ([]types.Entry, error) {
	r.count("get_slot_entries")
	entries, _, _, err := r.getSlotEntriesWithShredInfo(slot, startIdx, false)
	return entries, err
}

// GetCompleteBlockWithEntries reconstructs the full block for slot.
func (r *Reader) GetCompleteBlockWithEntries(slot types.Slot, requirePreviousBlockhash, populateEntries, allowDead bool) (*CompleteBlock, error) {
	r.count("get_complete_block_with_entries")

	guard, err := r.cleanup.checkLowestCleanupSlot(slot)
	if err != nil {
		return nil, err
	}
	defer guard.Unlock()

	meta, found, err := r.getSlotMeta(slot)
	if err != nil {
		return nil, err
	}
	if !found || !meta.IsFull() {
		return nil, ErrSlotUnavailable
	}

	entries, _, _, err := r.getSlotEntriesWithShredInfo(slot, 0, allowDead)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrSlotUnavailable
	}

	blockhash := entries[len(entries)-1].Hash

	var entrySummaries []types.EntrySummary
	if populateEntries {
		startingIndex := 0
		entrySummaries = make([]types.EntrySummary, 0, len(entries))
		for _, e := range entries {
			entrySummaries = append(entrySummaries, types.EntrySummary{
				NumHashes:                e.NumHashes,
				Hash:                     e.Hash,
				NumTransactions:          len(e.Transactions),
				StartingTransactionIndex: startingIndex,
			})
			startingIndex += len(e.Transactions)
		}
	}

	var blockTxs []BlockTransaction
	for _, entry := range entries {
		for _, tx := range entry.Transactions {
			if err := tx.Sanitize(); err != nil {
				// Warn-and-continue: sanitize failures do not drop the
				// transaction from the block.
				if r.logger != nil {
					r.logger.Errorf("blockstore: transaction in slot %d failed sanitize: %v", slot, err)
				}
			}
			sig := tx.ID()
			meta, found, err := r.getTransactionStatusMeta(sig, slot)
			if err != nil {
				return nil, err
			}
			if !found {
				return nil, ErrMissingTransactionMetadata
			}
			blockTxs = append(blockTxs, BlockTransaction{Transaction: tx, Meta: meta})
		}
	}

	previousBlockhash := types.ZeroHash()
	if meta.ParentSlot != nil {
		parentEntries, _, _, err := r.getSlotEntriesWithShredInfo(*meta.ParentSlot, 0, allowDead)
		if err != nil {
			return nil, err
		}
		if len(parentEntries) == 0 {
			if requirePreviousBlockhash {
				return nil, ErrParentEntriesUnavailable
			}
		} else {
			previousBlockhash = parentEntries[len(parentEntries)-1].Hash
		}
	}

	rewards, _, err := r.getBlockRewards(slot)
	if err != nil {
		return nil, err
	}

	blockTime, _, err := r.getBlocktime(slot)
	if err != nil {
		return nil, err
	}
	blockHeight, _, err := r.getBlockHeightForSlot(slot)
	if err != nil {
		return nil, err
	}

	return &CompleteBlock{
		Blockhash:         blockhash,
		PreviousBlockhash: previousBlockhash,
		ParentSlot:        meta.ParentSlot,
		Transactions:      blockTxs,
		Entries:           entrySummaries,
		Rewards:           rewards,
		BlockTime:         blockTime,
		BlockHeight:       blockHeight,
	}, nil
}

func (r *Reader) getTransactionStatusMeta(sig types.Signature, slot types.Slot) (types.TransactionStatusMeta, bool, error) {
	key := types.TransactionStatusKey(sig, slot)
	raw, found, err := r.store.Get(kvstore.CFTransactionStatus, key[:])
	if err != nil || !found {
		return types.TransactionStatusMeta{}, found, err
	}
	var meta types.TransactionStatusMeta
	if err := decodeValue(raw, &meta); err != nil {
		return types.TransactionStatusMeta{}, false, err
	}
	return meta, true, nil
}

func (r *Reader) getBlockRewards(slot types.Slot) (types.BlockRewards, bool, error) {
	key := types.SlotKey(slot)
	raw, found, err := r.store.Get(kvstore.CFRewards, key[:])
	if err != nil {
		return types.BlockRewards{}, false, err
	}
	if !found {
		return types.BlockRewards{}, false, nil
	}
	var rewards types.BlockRewards
	if err := decodeValue(raw, &rewards); err != nil {
		return types.BlockRewards{}, false, err
	}
	return rewards, true, nil
}

func (r *Reader) getBlocktime(slot types.Slot) (*types.UnixTimestamp, bool, error) {
	key := types.SlotKey(slot)
	raw, found, err := r.store.Get(kvstore.CFBlocktime, key[:])
	if err != nil || !found {
		return nil, found, err
	}
	var ts types.UnixTimestamp
	if err := decodeValue(raw, &ts); err != nil {
		return nil, false, err
	}
	return &ts, true, nil
}

func (r *Reader) getBlockHeightForSlot(slot types.Slot) (*uint64, bool, error) {
	key := types.SlotKey(slot)
	raw, found, err := r.store.Get(kvstore.CFBlockHeight, key[:])
	if err != nil || !found {
		return nil, found, err
	}
	var height uint64
	if err := decodeValue(raw, &height); err != nil {
		return nil, false, err
	}
	return &height, true, nil
}

// FindTransactionInSlot linearly scans the slot's entries for a
// transaction whose first signature matches sig. Documented performance
// hot-spot: this is an O(transactions in slot) scan, not an index lookup.
func (r *Reader) FindTransactionInSlot(slot types.Slot, sig types.Signature) (*types.VersionedTransaction, error) {
	r.count("find_transaction_in_slot")
	entries, err := r.GetSlotEntries(slot, 0)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		for _, tx := range entry.Transactions {
			if tx.ID() == sig {
				found := tx
				return &found, nil
			}
		}
	}
	return nil, nil
}
