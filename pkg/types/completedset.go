package types

import (
	"encoding/json"

	"github.com/google/btree"
)

// CompletedDataIndexSet is the ordered set of completed-data-block boundary
// indices referenced by SlotMeta.CompletedDataIndexes. It backs the
// completed-range resolver's restricted range walk (spec §4.4), which needs
// ordered iteration over a [start, end) window rather than a full scan of
// an unordered set.
type CompletedDataIndexSet struct {
	tree *btree.BTreeG[uint64]
}

// NewCompletedDataIndexSet returns an empty set.
func NewCompletedDataIndexSet() *CompletedDataIndexSet {
	return &CompletedDataIndexSet{
		tree: btree.NewG(32, func(a, b uint64) bool { return a < b }),
	}
}

// Insert adds index to the set.
func (s *CompletedDataIndexSet) Insert(index uint64) {
	s.tree.ReplaceOrInsert(index)
}

// Contains reports whether index is a recorded completed-block boundary.
func (s *CompletedDataIndexSet) Contains(index uint64) bool {
	_, ok := s.tree.Get(index)
	return ok
}

// Len returns the number of recorded boundaries.
func (s *CompletedDataIndexSet) Len() int {
	if s.tree == nil {
		return 0
	}
	return s.tree.Len()
}

// Range calls visit for every boundary index in [start, end), in
// ascending order, stopping early if visit returns false.
func (s *CompletedDataIndexSet) Range(start, end uint64, visit func(index uint64) bool) {
	if s.tree == nil || start >= end {
		return
	}
	s.tree.AscendRange(start, end, visit)
}

// Slice returns every boundary index in [start, end) in ascending order.
func (s *CompletedDataIndexSet) Slice(start, end uint64) []uint64 {
	var out []uint64
	s.Range(start, end, func(index uint64) bool {
		out = append(out, index)
		return true
	})
	return out
}

// MarshalJSON encodes the set as a sorted array of its members; the btree
// itself has no exported fields, so this is the set's entire persisted
// representation.
func (s *CompletedDataIndexSet) MarshalJSON() ([]byte, error) {
	members := s.Slice(0, ^uint64(0))
	if s.Contains(^uint64(0)) {
		members = append(members, ^uint64(0))
	}
	return json.Marshal(members)
}

// UnmarshalJSON rebuilds the set from an array of its members.
func (s *CompletedDataIndexSet) UnmarshalJSON(data []byte) error {
	var members []uint64
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	s.tree = btree.NewG(32, func(a, b uint64) bool { return a < b })
	for _, m := range members {
		s.tree.ReplaceOrInsert(m)
	}
	return nil
}
