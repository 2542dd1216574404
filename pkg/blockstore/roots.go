package blockstore

import (
	"github.com/cuemby/ledgerd/pkg/kvstore"
	"github.com/cuemby/ledgerd/pkg/types"
)

// IsRoot reports whether slot has an entry in the roots column family.
func (r *Reader) IsRoot(slot types.Slot) (bool, error) {
	r.count("is_root")
	key := types.SlotKey(slot)
	_, found, err := r.store.Get(kvstore.CFRoots, key[:])
	return found, err
}

// IsDead reports whether slot is recorded as dead.
func (r *Reader) IsDead(slot types.Slot) (bool, error) {
	r.count("is_dead")
	key := types.SlotKey(slot)
	_, found, err := r.store.Get(kvstore.CFDeadSlots, key[:])
	return found, err
}

// IsSkipped reports whether slot was skipped: it has no root entry, and
// lowestRoot < slot < maxRoot.
func (r *Reader) IsSkipped(slot types.Slot) (bool, error) {
	r.count("is_skipped")
	isRoot, err := r.IsRoot(slot)
	if err != nil {
		return false, err
	}
	if isRoot {
		return false, nil
	}

	lowest, err := r.lowestRoot()
	if err != nil {
		return false, err
	}
	maxRoot := r.MaxRoot()
	return lowest < slot && slot < maxRoot, nil
}

// lowestRoot returns the smallest rooted slot, or 0 if none is rooted.
func (r *Reader) lowestRoot() (types.Slot, error) {
	it, err := r.store.Iterator(kvstore.CFRoots, kvstore.Forward, nil)
	if err != nil {
		return 0, err
	}
	defer it.Close()

	if !it.Next() {
		return 0, nil
	}
	slot, ok := types.ParseSlotKey(it.Entry().Key)
	if !ok {
		return 0, nil
	}
	return slot, nil
}

// LowestSlot returns the smallest rooted slot, or 0 if none is rooted.
func (r *Reader) LowestSlot() (types.Slot, error) {
	r.count("lowest_slot")
	return r.lowestRoot()
}

// HighestSlot returns the largest rooted slot, or 0 if none is rooted.
func (r *Reader) HighestSlot() (types.Slot, error) {
	r.count("highest_slot")
	it, err := r.store.Iterator(kvstore.CFRoots, kvstore.Reverse, nil)
	if err != nil {
		return 0, err
	}
	defer it.Close()

	if !it.Next() {
		return 0, nil
	}
	slot, ok := types.ParseSlotKey(it.Entry().Key)
	if !ok {
		return 0, nil
	}
	return slot, nil
}

// lowestSlotWithGenesis forward-scans slot_meta for the first entry with
// Received > 0; falls back to maxRoot if none is found.
func (r *Reader) lowestSlotWithGenesis() (types.Slot, error) {
	it, err := r.store.Iterator(kvstore.CFSlotMeta, kvstore.Forward, nil)
	if err != nil {
		return 0, err
	}
	defer it.Close()

	for it.Next() {
		var meta types.SlotMeta
		if err := decodeValue(it.Entry().Value, &meta); err != nil {
			return 0, err
		}
		if meta.Received > 0 {
			return meta.Slot, nil
		}
	}
	return r.MaxRoot(), nil
}

// GetFirstAvailableBlock walks roots forward from lowestSlotWithGenesis.
// If the first root is 0 (genesis, always complete), returns 0. Otherwise
// returns the second root — the first root is missing its parent
// blockhash dependency — or 0 if there is no second root.
func (r *Reader) GetFirstAvailableBlock() (types.Slot, error) {
	r.count("get_first_available_block")
	genesis, err := r.lowestSlotWithGenesis()
	if err != nil {
		return 0, err
	}

	seek := types.SlotKey(genesis)
	it, err := r.store.Iterator(kvstore.CFRoots, kvstore.Forward, seek[:])
	if err != nil {
		return 0, err
	}
	defer it.Close()

	if !it.Next() {
		return 0, nil
	}
	first, ok := types.ParseSlotKey(it.Entry().Key)
	if !ok {
		return 0, nil
	}
	if first == 0 {
		return 0, nil
	}

	if !it.Next() {
		return 0, nil
	}
	second, ok := types.ParseSlotKey(it.Entry().Key)
	if !ok {
		return 0, nil
	}
	return second, nil
}

// GetBankHash returns the persisted bank hash record for slot.
func (r *Reader) GetBankHash(slot types.Slot) (*types.BankHash, bool, error) {
	r.count("get_bank_hash")
	key := types.SlotKey(slot)
	raw, found, err := r.store.Get(kvstore.CFBankHash, key[:])
	if err != nil || !found {
		return nil, found, err
	}
	var bh types.BankHash
	if err := decodeValue(raw, &bh); err != nil {
		return nil, false, err
	}
	return &bh, true, nil
}

// IsDuplicateConfirmed reports the IsDuplicateConfirmed flag on slot's
// bank hash record, defaulting to false if absent.
func (r *Reader) IsDuplicateConfirmed(slot types.Slot) (bool, error) {
	r.count("is_duplicate_confirmed")
	bh, found, err := r.GetBankHash(slot)
	if err != nil || !found {
		return false, err
	}
	return bh.IsDuplicateConfirmed, nil
}

// GetOptimisticSlot returns the optimistic-confirmation record for slot.
func (r *Reader) GetOptimisticSlot(slot types.Slot) (*types.OptimisticSlot, bool, error) {
	r.count("get_optimistic_slot")
	key := types.SlotKey(slot)
	raw, found, err := r.store.Get(kvstore.CFOptimisticSlots, key[:])
	if err != nil || !found {
		return nil, found, err
	}
	var os types.OptimisticSlot
	if err := decodeValue(raw, &os); err != nil {
		return nil, false, err
	}
	return &os, true, nil
}

// GetLatestOptimisticSlots returns at most num optimistically-confirmed
// slots, in descending slot order.
func (r *Reader) GetLatestOptimisticSlots(num int) ([]types.Slot, error) {
	r.count("get_latest_optimistic_slots")
	if num <= 0 {
		return nil, nil
	}
	it, err := r.store.Iterator(kvstore.CFOptimisticSlots, kvstore.Reverse, nil)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []types.Slot
	for it.Next() && len(out) < num {
		slot, ok := types.ParseSlotKey(it.Entry().Key)
		if !ok {
			continue
		}
		out = append(out, slot)
	}
	return out, nil
}

// GetFirstDuplicateProof returns the first (lowest-slot) duplicate-slot
// proof recorded, if any.
func (r *Reader) GetFirstDuplicateProof() (types.Slot, *types.DuplicateSlotProof, bool, error) {
	r.count("get_first_duplicate_proof")
	it, err := r.store.Iterator(kvstore.CFDuplicateSlots, kvstore.Forward, nil)
	if err != nil {
		return 0, nil, false, err
	}
	defer it.Close()

	if !it.Next() {
		return 0, nil, false, nil
	}
	slot, ok := types.ParseSlotKey(it.Entry().Key)
	if !ok {
		return 0, nil, false, nil
	}
	var proof types.DuplicateSlotProof
	if err := decodeValue(it.Entry().Value, &proof); err != nil {
		return 0, nil, false, err
	}
	return slot, &proof, true, nil
}

// GetRecentPerfSamples returns up to num of the most recent performance
// samples, newest first.
func (r *Reader) GetRecentPerfSamples(num int) ([]types.PerfSample, error) {
	r.count("get_recent_perf_samples")
	if num <= 0 {
		return nil, nil
	}
	it, err := r.store.Iterator(kvstore.CFPerfSamples, kvstore.Reverse, nil)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []types.PerfSample
	for it.Next() && len(out) < num {
		var sample types.PerfSample
		if err := decodeValue(it.Entry().Value, &sample); err != nil {
			return nil, err
		}
		out = append(out, sample)
	}
	return out, nil
}

// ReadProgramCosts returns the persisted cost tracker estimate for every
// program pubkey recorded.
func (r *Reader) ReadProgramCosts() (map[types.Pubkey]types.ProgramCost, error) {
	r.count("read_program_costs")
	it, err := r.store.Iterator(kvstore.CFProgramCosts, kvstore.Forward, nil)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	out := make(map[types.Pubkey]types.ProgramCost)
	for it.Next() {
		pubkey, err := types.PubkeyFromBytes(it.Entry().Key)
		if err != nil {
			continue
		}
		var cost types.ProgramCost
		if err := decodeValue(it.Entry().Value, &cost); err != nil {
			return nil, err
		}
		out[pubkey] = cost
	}
	return out, nil
}
