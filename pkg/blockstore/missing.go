package blockstore

import (
	"time"

	"github.com/cuemby/ledgerd/pkg/kvstore"
	"github.com/cuemby/ledgerd/pkg/types"
)

// FindMissingDataIndexes finds holes in the data-shred index space of slot
// within [start, end) and returns at most max strictly increasing indices.
// The scan ends at the first stored shred that is still inside its
// deferTicks grace period; no hole from the previous stored shred onward is
// reported.
func (r *Reader) FindMissingDataIndexes(slot types.Slot, firstTimestampMs int64, deferTicks uint64, start, end uint64, max int) ([]uint64, error) {
	r.count("find_missing_data_indexes")
	if start >= end || max == 0 {
		return nil, nil
	}

	var missing []uint64
	prevIdx := start
	nowMs := time.Now().UnixMilli()

	err := r.store.View(kvstore.CFDataShred, func(it kvstore.RawIterator) error {
		seek := types.ShredKey(slot, start)
		ok := it.Seek(seek[:])

		for {
			if !ok {
				// Iterator exhausted before reaching end: flush the
				// trailing hole.
				appendRange(&missing, prevIdx, end, max)
				return nil
			}

			curSlot, curIdx, parsed := types.ParseShredKey(it.Key())
			if !parsed {
				appendRange(&missing, prevIdx, end, max)
				return nil
			}

			upper := end
			if curSlot > slot {
				upper = end
				appendRange(&missing, prevIdx, upper, max)
				return nil
			}
			if curSlot < slot {
				ok = it.Next()
				continue
			}

			elapsedMs := nowMs - firstTimestampMs
			if elapsedMs < 0 {
				elapsedMs = 0
			}
			ticksSinceFirstInsert := uint64(DefaultTicksPerSecond) * uint64(elapsedMs) / 1000

			shred, err := r.shredCodec.DecodeDataShred(curSlot, curIdx, it.Value())
			if err != nil {
				return err
			}
			if ticksSinceFirstInsert < uint64(shred.ReferenceTick)+deferTicks {
				return nil
			}

			if curIdx >= end {
				appendRange(&missing, prevIdx, end, max)
				return nil
			}

			appendRange(&missing, prevIdx, curIdx, max)
			prevIdx = curIdx + 1

			if len(missing) >= max || prevIdx >= end {
				return nil
			}
			ok = it.Next()
		}
	})
	if err != nil {
		return nil, err
	}
	if len(missing) > max {
		missing = missing[:max]
	}
	return missing, nil
}

// appendRange appends [from, to) to missing, up to the remaining budget
// (max - len(missing)).
func appendRange(missing *[]uint64, from, to uint64, max int) {
	for i := from; i < to; i++ {
		if len(*missing) >= max {
			return
		}
		*missing = append(*missing, i)
	}
}
