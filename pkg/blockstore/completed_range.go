package blockstore

import "github.com/cuemby/ledgerd/pkg/types"

// Range is an inclusive shred-index range forming one complete data block.
type Range struct {
	Begin, End uint64
}

// ResolveCompletedRanges derives the contiguous shred-index ranges that
// form complete data blocks within [startIndex, meta.Consumed), from the
// slot's completed_data_indexes ordered set.
//
// Precondition: meta.Consumed is never itself a member of
// completed_data_indexes (asserted by the slot_meta invariant); callers
// that violate it will see it silently excluded from iteration rather
// than cause a panic, since CompletedDataIndexSet.Range's upper bound is
// already exclusive of Consumed.
func ResolveCompletedRanges(slot types.Slot, startIndex uint64, meta *types.SlotMeta) []Range {
	if meta.CompletedDataIndexes == nil || meta.Consumed <= startIndex {
		return nil
	}

	var ranges []Range
	begin := startIndex
	meta.CompletedDataIndexes.Range(startIndex, meta.Consumed, func(end uint64) bool {
		ranges = append(ranges, Range{Begin: begin, End: end})
		begin = end + 1
		return true
	})
	return ranges
}
