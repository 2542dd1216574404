package blockstore

import (
	"fmt"

	"github.com/cuemby/ledgerd/pkg/types"
)

// Deshredder reconstructs the contiguous byte buffer of serialized entries
// from an ordered group of data-shred payloads covering one complete data
// block. Shred parsing and erasure decoding are out of scope for this
// package; a real implementation lives alongside the shred wire format.
type Deshredder interface {
	Deshred(shreds []types.Shred) ([]byte, error)
}

// EntryDecoder decodes a flat byte buffer produced by a Deshredder into the
// entries it encodes, using the ledger's canonical binary encoding.
type EntryDecoder interface {
	DecodeEntries(buf []byte) ([]types.Entry, error)
}

// assembleBlock fetches every data shred in ranges, deshreds each range
// independently, decodes the resulting buffers into entries, and
// concatenates the per-range entry lists in range order.
//
// ranges must be contiguous and sorted: ranges[i+1].Begin == ranges[i].End+1.
// Fetch failures for a shred below lowestCleanupSlot are reported as
// ErrInvalidShredData (the cleaner may legitimately have removed it);
// above lowestCleanupSlot the same miss is ErrCorruptedBlockstore, since
// cleanup cannot explain it.
func (r *Reader) assembleBlock(slot types.Slot, ranges []Range, lowestCleanupSlot types.Slot) ([]types.Entry, error) {
	if len(ranges) == 0 {
		return nil, nil
	}

	var allEntries []types.Entry
	for _, rng := range ranges {
		shreds := make([]types.Shred, 0, rng.End-rng.Begin+1)
		for idx := rng.Begin; idx <= rng.End; idx++ {
			payload, found, err := r.getDataShredPayload(slot, idx)
			if err != nil {
				return nil, err
			}
			if !found {
				if slot > lowestCleanupSlot {
					return nil, fmt.Errorf("%w: slot %d index %d", ErrCorruptedBlockstore, slot, idx)
				}
				return nil, fmt.Errorf("%w: slot %d index %d", ErrInvalidShredData, slot, idx)
			}
			shreds = append(shreds, payload)
		}

		last := shreds[len(shreds)-1]
		if !last.DataComplete && !last.IsLastInSlot {
			return nil, fmt.Errorf("%w: slot %d range end %d not marked complete", ErrInvalidShredData, slot, rng.End)
		}

		buf, err := r.deshredder.Deshred(shreds)
		if err != nil {
			return nil, err
		}
		entries, err := r.entryDecoder.DecodeEntries(buf)
		if err != nil {
			return nil, err
		}
		allEntries = append(allEntries, entries...)
	}
	return allEntries, nil
}
