package blockstore

import (
	"github.com/cuemby/ledgerd/pkg/kvstore"
	"github.com/cuemby/ledgerd/pkg/types"
)

// AddressSignatureEntry is one row of a GetConfirmedSignaturesForAddress
// result.
type AddressSignatureEntry struct {
	Signature types.Signature
	Slot      types.Slot
	Err       types.TransactionErrorCode
	Memo      []byte
	BlockTime *types.UnixTimestamp
}

type signatureAtSlot struct {
	Slot      types.Slot
	Signature types.Signature
	TxIndex   uint32
}

var maxSignature = func() types.Signature {
	var s types.Signature
	for i := range s {
		s[i] = 0xff
	}
	return s
}()

// findAddressSignaturesForSlot scans the address_signatures rows for
// exactly (addr, slot), in ascending or descending transaction-index
// order. The emitted pairs carry the passed-in slot; since the scan stops
// at the first key whose slot field differs from it, this always equals
// the matched key's slot.
func (r *Reader) findAddressSignaturesForSlot(addr types.Pubkey, slot types.Slot, reverse bool) ([]signatureAtSlot, error) {
	var seek [types.AddressSignatureKeySize]byte
	dir := kvstore.Forward
	if reverse {
		seek = types.AddressSignatureKey(addr, slot, ^uint32(0), maxSignature)
		dir = kvstore.Reverse
	} else {
		seek = types.AddressSignatureKey(addr, slot, 0, types.Signature{})
	}

	it, err := r.store.Iterator(kvstore.CFAddressSignatures, dir, seek[:])
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []signatureAtSlot
	for it.Next() {
		keyAddr, keySlot, txIndex, sig, ok := types.ParseAddressSignatureKey(it.Entry().Key)
		if !ok || keyAddr != addr || keySlot != slot {
			break
		}
		out = append(out, signatureAtSlot{Slot: slot, Signature: sig, TxIndex: txIndex})
	}
	return out, nil
}

func containsSig(set map[types.Signature]bool, sig types.Signature) bool {
	return set != nil && set[sig]
}

// GetConfirmedSignaturesForAddress returns up to limit confirmed
// signatures involving addr, ordered newest-to-oldest, optionally bounded
// by a before/until signature pair.
func (r *Reader) GetConfirmedSignaturesForAddress(addr types.Pubkey, highestSlot types.Slot, before, until *types.Signature, limit int) ([]AddressSignatureEntry, bool, error) {
	r.count("get_confirmed_signatures_for_address")

	ancestors, err := CollectAncestors(r, highestSlot, r.MaxRoot())
	if err != nil {
		return nil, false, err
	}
	confirmedUnrooted := make(map[types.Slot]bool, len(ancestors))
	for _, slot := range ancestors {
		confirmedUnrooted[slot] = true
	}

	var (
		startSlot      types.Slot
		beforeExcluded = make(map[types.Signature]bool)
	)
	if before != nil {
		slot, _, found, _, err := r.GetTransactionStatus(*before, confirmedUnrooted)
		if err != nil {
			return nil, false, err
		}
		if !found {
			return nil, false, nil
		}
		startSlot = slot
		sigs, err := r.findAddressSignaturesForSlot(addr, slot, true)
		if err != nil {
			return nil, false, err
		}
		for _, s := range sigs {
			beforeExcluded[s.Signature] = true
			if s.Signature == *before {
				break
			}
		}
	} else {
		startSlot = highestSlot
	}

	var (
		lowestSlot    types.Slot
		untilExcluded = make(map[types.Signature]bool)
	)
	if until != nil {
		slot, _, found, _, err := r.GetTransactionStatus(*until, confirmedUnrooted)
		if err != nil {
			return nil, false, err
		}
		if found {
			lowestSlot = slot
			sigs, err := r.findAddressSignaturesForSlot(addr, slot, false)
			if err != nil {
				return nil, false, err
			}
			for _, s := range sigs {
				untilExcluded[s.Signature] = true
				if s.Signature == *until {
					break
				}
			}
		}
	} else {
		lowestSlot, err = r.GetFirstAvailableBlock()
		if err != nil {
			return nil, false, err
		}
	}

	var results []AddressSignatureEntry

	startSigs, err := r.findAddressSignaturesForSlot(addr, startSlot, true)
	if err != nil {
		return nil, false, err
	}
	for _, s := range startSigs {
		if len(results) >= limit {
			return results, true, nil
		}
		if containsSig(beforeExcluded, s.Signature) || containsSig(untilExcluded, s.Signature) {
			continue
		}
		results = append(results, r.materializeAddressSignature(s))
	}

	seek := types.AddressSignatureKey(addr, startSlot, 0, types.Signature{})
	it, err := r.store.Iterator(kvstore.CFAddressSignatures, kvstore.Reverse, seek[:])
	if err != nil {
		return nil, false, err
	}
	defer it.Close()

	for it.Next() && len(results) < limit {
		keyAddr, keySlot, _, sig, ok := types.ParseAddressSignatureKey(it.Entry().Key)
		if !ok || keyAddr != addr {
			break
		}
		if keySlot == startSlot {
			// Already handled via findAddressSignaturesForSlot above.
			continue
		}
		if keySlot < lowestSlot {
			break
		}
		rooted, err := r.IsRoot(keySlot)
		if err != nil {
			return nil, false, err
		}
		if !rooted && !confirmedUnrooted[keySlot] {
			continue
		}
		if containsSig(untilExcluded, sig) {
			continue
		}
		results = append(results, r.materializeAddressSignature(signatureAtSlot{Slot: keySlot, Signature: sig}))
	}

	return results, true, nil
}

func (r *Reader) materializeAddressSignature(s signatureAtSlot) AddressSignatureEntry {
	entry := AddressSignatureEntry{Signature: s.Signature, Slot: s.Slot}

	meta, found, err := r.getTransactionStatusMeta(s.Signature, s.Slot)
	if err == nil && found {
		entry.Err = meta.Err
	}

	memoKey := types.TransactionStatusKey(s.Signature, s.Slot)
	if memo, found, err := r.store.Get(kvstore.CFTransactionMemos, memoKey[:]); err == nil && found {
		entry.Memo = memo
	}

	if bt, found, err := r.getBlocktime(s.Slot); err == nil && found {
		entry.BlockTime = bt
	}

	return entry
}
