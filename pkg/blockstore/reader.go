package blockstore

import (
	"fmt"
	"sync/atomic"

	"github.com/cuemby/ledgerd/pkg/kvstore"
	"github.com/cuemby/ledgerd/pkg/types"
)

// Reader is the public read API over a column-family ledger store: blocks,
// entries, transactions, signatures-by-address, roots, duplicates, and
// optimistic/dead-slot bookkeeping. See the package doc for the
// consistency model it enforces.
type Reader struct {
	store *kvstore.Store

	shredCodec   ShredCodec
	deshredder   Deshredder
	entryDecoder EntryDecoder
	counters     MethodCounters

	cleanup cleanupState
	maxRoot atomic.Uint64

	logger Logger
}

// Logger is the narrow logging seam the reader uses for best-effort
// warnings that should not fail the calling method (e.g. a shred
// re-encode failure in IsShredDuplicate). A nil Logger means log calls
// are silently dropped.
type Logger interface {
	Errorf(format string, args ...any)
}

// NewReader builds a Reader over store. codec, deshredder, and decoder are
// the external collaborators for shred-header parsing, erasure
// reconstruction, and entry decoding respectively; counters may be nil, in
// which case method calls are simply not counted.
func NewReader(store *kvstore.Store, codec ShredCodec, deshredder Deshredder, decoder EntryDecoder, counters MethodCounters) *Reader {
	if counters == nil {
		counters = noopCounters{}
	}
	return &Reader{
		store:        store,
		shredCodec:   codec,
		deshredder:   deshredder,
		entryDecoder: decoder,
		counters:     counters,
	}
}

// SetLogger installs the logger used for best-effort warnings.
func (r *Reader) SetLogger(logger Logger) {
	r.logger = logger
}

// SetLowestCleanupSlot is the cleanup service's write entry point.
func (r *Reader) SetLowestCleanupSlot(slot types.Slot) {
	r.cleanup.set(slot)
}

// LowestCleanupSlot returns the current lowestCleanupSlot, for callers
// (such as the cleanup service itself) that need to read it without going
// through a guard.
func (r *Reader) LowestCleanupSlot() types.Slot {
	return r.cleanup.get()
}

// AdvanceMaxRoot sets maxRoot to slot if slot is greater than the current
// value; external writer entry point, monotonic by construction.
func (r *Reader) AdvanceMaxRoot(slot types.Slot) {
	for {
		cur := r.maxRoot.Load()
		if uint64(slot) <= cur {
			return
		}
		if r.maxRoot.CompareAndSwap(cur, uint64(slot)) {
			return
		}
	}
}

// MaxRoot returns the current maxRoot.
func (r *Reader) MaxRoot() types.Slot {
	return types.Slot(r.maxRoot.Load())
}

// Ready reports whether the reader's underlying store is open and able to
// start a transaction.
func (r *Reader) Ready() (bool, string) {
	if err := r.store.Ping(); err != nil {
		return false, err.Error()
	}
	return true, ""
}

func (r *Reader) count(method string) {
	r.counters.IncCounter(method)
}

// getSlotMeta is the unexported, uncounted slot_meta fetch every public
// method and the ancestor iterator build on.
func (r *Reader) getSlotMeta(slot types.Slot) (*types.SlotMeta, bool, error) {
	key := types.SlotKey(slot)
	raw, found, err := r.store.Get(kvstore.CFSlotMeta, key[:])
	if err != nil || !found {
		return nil, found, err
	}
	var meta types.SlotMeta
	if err := decodeValue(raw, &meta); err != nil {
		return nil, false, err
	}
	return &meta, true, nil
}

func (r *Reader) putSlotMeta(meta *types.SlotMeta) error {
	key := types.SlotKey(meta.Slot)
	raw, err := encodeValue(meta)
	if err != nil {
		return err
	}
	return r.store.Put(kvstore.CFSlotMeta, key[:], raw)
}

// IsFull reports whether every shred for slot has been observed. Absent
// slot_meta is false, not an error.
func (r *Reader) IsFull(slot types.Slot) (bool, error) {
	r.count("is_full")
	meta, found, err := r.getSlotMeta(slot)
	if err != nil || !found {
		return false, err
	}
	return meta.IsFull(), nil
}

// SlotRangeConnected reports whether a chain of full slots connects start
// to end via next_slots links, visiting candidates in the order they
// appear in each slot's next_slots. Every visited slot must exist in
// slot_meta and be full; the traversal returns false the moment that
// fails, even for slots other than the two endpoints — a broader check
// than "are start and end specifically full", preserved deliberately.
func (r *Reader) SlotRangeConnected(start, end types.Slot) (bool, error) {
	r.count("slot_range_connected")
	if start == end {
		return true, nil
	}
	if start > end {
		return false, nil
	}

	type frame struct {
		slot types.Slot
	}
	queue := []frame{{slot: start}}
	visited := map[types.Slot]bool{start: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		meta, found, err := r.getSlotMeta(cur.slot)
		if err != nil {
			return false, err
		}
		if !found || !meta.IsFull() {
			return false, nil
		}

		for _, child := range meta.NextSlots {
			if child != cur.slot+1 {
				return false, fmt.Errorf("blockstore: non-contiguous child slot %d after %d", child, cur.slot)
			}
			if child == end {
				return true, nil
			}
			if child > end {
				continue
			}
			if !visited[child] {
				visited[child] = true
				queue = append(queue, frame{slot: child})
			}
		}
	}
	return false, nil
}

// GetDataShred returns the raw payload bytes stored for (slot, index), or
// found=false if absent. The stored bytes are decoded through the
// ShredCodec, and a decode error is returned as ErrInvalidDataShred; no
// separate check of the payload's size is made.
func (r *Reader) GetDataShred(slot types.Slot, index uint64) ([]byte, bool, error) {
	r.count("get_data_shred")
	shred, found, err := r.getDataShredPayload(slot, index)
	if err != nil || !found {
		return nil, found, err
	}
	return shred.Payload, true, nil
}

// GetCodeShred returns the raw payload bytes stored for (slot, index), or
// found=false if absent.
func (r *Reader) GetCodeShred(slot types.Slot, index uint64) ([]byte, bool, error) {
	r.count("get_code_shred")
	shred, found, err := r.getCodeShredPayload(slot, index)
	if err != nil || !found {
		return nil, found, err
	}
	return shred.Payload, true, nil
}

func (r *Reader) getDataShredPayload(slot types.Slot, index uint64) (types.Shred, bool, error) {
	key := types.ShredKey(slot, index)
	raw, found, err := r.store.Get(kvstore.CFDataShred, key[:])
	if err != nil || !found {
		return types.Shred{}, found, err
	}
	shred, err := r.shredCodec.DecodeDataShred(slot, index, raw)
	if err != nil {
		return types.Shred{}, false, fmt.Errorf("%w: %v", ErrInvalidDataShred, err)
	}
	return shred, true, nil
}

func (r *Reader) getCodeShredPayload(slot types.Slot, index uint64) (types.Shred, bool, error) {
	key := types.ShredKey(slot, index)
	raw, found, err := r.store.Get(kvstore.CFCodeShred, key[:])
	if err != nil || !found {
		return types.Shred{}, found, err
	}
	shred, err := r.shredCodec.DecodeCodeShred(slot, index, raw)
	if err != nil {
		return types.Shred{}, false, fmt.Errorf("%w: %v", ErrInvalidDataShred, err)
	}
	return shred, true, nil
}

// GetShredsForSlot forward-iterates cf from (slot, startIdx), stopping the
// instant a key's slot no longer matches slot.
func (r *Reader) GetShredsForSlot(cf string, slot types.Slot, startIdx uint64) ([]types.Shred, error) {
	r.count("get_shreds_for_slot")
	if cf != kvstore.CFDataShred && cf != kvstore.CFCodeShred {
		return nil, ErrUnknownColumnFamilyForShreds(cf)
	}

	seek := types.ShredKey(slot, startIdx)
	it, err := r.store.Iterator(cf, kvstore.Forward, seek[:])
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []types.Shred
	for it.Next() {
		entry := it.Entry()
		keySlot, index, ok := types.ParseShredKey(entry.Key)
		if !ok || keySlot != slot {
			break
		}
		var shred types.Shred
		if cf == kvstore.CFDataShred {
			shred, err = r.shredCodec.DecodeDataShred(keySlot, index, entry.Value)
		} else {
			shred, err = r.shredCodec.DecodeCodeShred(keySlot, index, entry.Value)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDataShred, err)
		}
		out = append(out, shred)
	}
	return out, nil
}

// ErrUnknownColumnFamilyForShreds reports that GetShredsForSlot was asked
// to iterate a column family that isn't a shred column.
func ErrUnknownColumnFamilyForShreds(cf string) error {
	return fmt.Errorf("blockstore: %q is not a shred column family", cf)
}
