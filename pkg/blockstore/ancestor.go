package blockstore

import "github.com/cuemby/ledgerd/pkg/types"

// AncestorIterator lazily walks parent_slot links starting at a given
// slot, until either slot 0 is yielded or a slot_meta lookup comes back
// absent. The first value it yields is the starting slot itself.
type AncestorIterator struct {
	reader *Reader
	next   *types.Slot
	done   bool
}

// NewAncestorIterator builds an iterator starting at start. start itself
// is the first value Next returns, regardless of whether it has
// slot_meta.
func NewAncestorIterator(r *Reader, start types.Slot) *AncestorIterator {
	s := start
	return &AncestorIterator{reader: r, next: &s}
}

// Next returns the next ancestor slot, or (0, false, nil) when the walk is
// exhausted. A non-nil error means the underlying store failed; the
// iterator should not be used further after an error.
func (a *AncestorIterator) Next() (types.Slot, bool, error) {
	if a.done || a.next == nil {
		return 0, false, nil
	}
	slot := *a.next
	a.next = nil

	if slot == 0 {
		a.done = true
		return slot, true, nil
	}

	meta, found, err := a.reader.getSlotMeta(slot)
	if err != nil {
		return 0, false, err
	}
	if !found || meta.ParentSlot == nil {
		a.done = true
	} else {
		parent := *meta.ParentSlot
		a.next = &parent
	}
	return slot, true, nil
}

// CollectAncestors drains an AncestorIterator rooted at start into a slice,
// stopping (inclusive) at the first slot <= stopAtOrBelow, or at
// exhaustion. It is the
// building block for confirmed_unrooted sets: callers typically stop at
// maxRoot.
func CollectAncestors(r *Reader, start types.Slot, stopAtOrBelow types.Slot) ([]types.Slot, error) {
	it := NewAncestorIterator(r, start)
	var out []types.Slot
	for {
		slot, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		out = append(out, slot)
		if slot <= stopAtOrBelow {
			break
		}
	}
	return out, nil
}
