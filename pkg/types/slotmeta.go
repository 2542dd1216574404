package types

// SlotMeta is the per-slot shred bookkeeping record persisted in the
// slot_meta column family.
type SlotMeta struct {
	Slot Slot

	// Received is the highest shred index seen for this slot. Zero means
	// the slot is empty (no shreds have arrived yet).
	Received uint64

	// Consumed is the next missing data-shred index: the boundary up to
	// which contiguous data shreds have been observed.
	Consumed uint64

	// ParentSlot is the slot's ancestor, if known.
	ParentSlot *Slot

	// NextSlots lists children slots observed so far.
	NextSlots []Slot

	// CompletedDataIndexes holds the ordered set of shred indices at
	// which a data block ends. Invariant: Consumed is never a member of
	// this set.
	CompletedDataIndexes *CompletedDataIndexSet
}

// IsFull reports whether every shred for this slot has been observed:
// Consumed must have caught up to one past the highest received index.
func (m *SlotMeta) IsFull() bool {
	if m == nil {
		return false
	}
	return m.Received > 0 && m.Consumed == m.Received+1
}

// NewSlotMeta returns an empty SlotMeta for slot s.
func NewSlotMeta(s Slot) *SlotMeta {
	return &SlotMeta{
		Slot:                 s,
		CompletedDataIndexes: NewCompletedDataIndexSet(),
	}
}
