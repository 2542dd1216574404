package blockstore

import (
	"github.com/cuemby/ledgerd/pkg/kvstore"
	"github.com/cuemby/ledgerd/pkg/types"
)

// GetTransactionStatus looks up a signature's execution status, only
// considering it found if the slot it was recorded under is rooted or
// present in confirmedUnrooted. Iterates transaction_status keys starting
// at (sig, firstAvailableBlock); stops the moment the signature prefix no
// longer matches. Returns the loop count as a test hook, matching the
// original's instrumentation for verifying early-exit behavior.
func (r *Reader) GetTransactionStatus(sig types.Signature, confirmedUnrooted map[types.Slot]bool) (types.Slot, types.TransactionStatusMeta, bool, int, error) {
	r.count("get_transaction_status")

	guard, _ := r.cleanup.ensureLowestCleanupSlot()
	defer guard.Unlock()

	firstAvailable, err := r.GetFirstAvailableBlock()
	if err != nil {
		return 0, types.TransactionStatusMeta{}, false, 0, err
	}

	seek := types.TransactionStatusKey(sig, firstAvailable)
	loopCount := 0
	var (
		foundSlot types.Slot
		foundMeta types.TransactionStatusMeta
		found     bool
	)

	err = r.store.View(kvstore.CFTransactionStatus, func(it kvstore.RawIterator) error {
		for ok := it.Seek(seek[:]); ok; ok = it.Next() {
			loopCount++
			keySig, keySlot, parsed := types.ParseTransactionStatusKey(it.Key())
			if !parsed || keySig != sig {
				return nil
			}

			rooted, err := r.IsRoot(keySlot)
			if err != nil {
				return err
			}
			if !rooted && !confirmedUnrooted[keySlot] {
				continue
			}

			raw, ok2, err := r.store.Get(kvstore.CFTransactionStatus, it.Key())
			if err != nil {
				return err
			}
			if !ok2 {
				return ErrUnwrap
			}
			var meta types.TransactionStatusMeta
			if err := decodeValue(raw, &meta); err != nil {
				return err
			}
			foundSlot, foundMeta, found = keySlot, meta, true
			return nil
		}
		return nil
	})
	if err != nil {
		return 0, types.TransactionStatusMeta{}, false, loopCount, err
	}
	return foundSlot, foundMeta, found, loopCount, nil
}

// CompleteTransaction is the composite result of GetCompleteTransaction.
type CompleteTransaction struct {
	Transaction types.VersionedTransaction
	Meta        types.TransactionStatusMeta
	Slot        types.Slot
}

// GetCompleteTransaction resolves a transaction's status against the
// confirmed-unrooted set derived from highestConfirmedSlot's ancestors
// (stopping at maxRoot), then locates the transaction itself in its slot.
func (r *Reader) GetCompleteTransaction(sig types.Signature, highestConfirmedSlot types.Slot) (*CompleteTransaction, error) {
	r.count("get_complete_transaction")

	ancestors, err := CollectAncestors(r, highestConfirmedSlot, r.MaxRoot())
	if err != nil {
		return nil, err
	}
	confirmedUnrooted := make(map[types.Slot]bool, len(ancestors))
	for _, slot := range ancestors {
		confirmedUnrooted[slot] = true
	}

	slot, meta, found, _, err := r.GetTransactionStatus(sig, confirmedUnrooted)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	tx, err := r.FindTransactionInSlot(slot, sig)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, ErrUnwrap
	}

	return &CompleteTransaction{Transaction: *tx, Meta: meta, Slot: slot}, nil
}
