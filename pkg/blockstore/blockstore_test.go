package blockstore

import (
	"testing"

	"github.com/cuemby/ledgerd/pkg/kvstore"
	"github.com/cuemby/ledgerd/pkg/types"
)

type fakeShredCodec struct{}

func (fakeShredCodec) DecodeDataShred(slot types.Slot, index uint64, raw []byte) (types.Shred, error) {
	s := types.Shred{Kind: types.DataShredKind, Slot: slot, Index: index, Payload: raw}
	if len(raw) > 0 {
		s.ReferenceTick = raw[0]
	}
	if len(raw) > 1 {
		s.DataComplete = raw[1]&0x1 != 0
		s.IsLastInSlot = raw[1]&0x2 != 0
	}
	return s, nil
}

func (fakeShredCodec) DecodeCodeShred(slot types.Slot, index uint64, raw []byte) (types.Shred, error) {
	return types.Shred{Kind: types.CodeShredKind, Slot: slot, Index: index, Payload: raw}, nil
}

func (fakeShredCodec) EncodeShred(shred types.Shred) ([]byte, error) {
	return shred.Payload, nil
}

type fakeDeshredder struct{}

func (fakeDeshredder) Deshred(shreds []types.Shred) ([]byte, error) {
	var buf []byte
	for _, s := range shreds {
		if len(s.Payload) > 2 {
			buf = append(buf, s.Payload[2:]...)
		}
	}
	return buf, nil
}

type fakeEntryDecoder struct{}

func (fakeEntryDecoder) DecodeEntries(buf []byte) ([]types.Entry, error) {
	if len(buf) == 0 {
		return nil, nil
	}
	return []types.Entry{{NumHashes: 1, Hash: types.HashFromBytes(buf)}}, nil
}

func newTestReader(t *testing.T) (*Reader, *kvstore.Store) {
	t.Helper()
	store, err := kvstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("kvstore.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	r := NewReader(store, fakeShredCodec{}, fakeDeshredder{}, fakeEntryDecoder{}, nil)
	return r, store
}

func putSlotMeta(t *testing.T, r *Reader, meta *types.SlotMeta) {
	t.Helper()
	if err := r.putSlotMeta(meta); err != nil {
		t.Fatalf("putSlotMeta(%d) error = %v", meta.Slot, err)
	}
}

func fullMeta(slot types.Slot, parent *types.Slot, next []types.Slot) *types.SlotMeta {
	m := types.NewSlotMeta(slot)
	m.ParentSlot = parent
	m.NextSlots = next
	m.Received = 3
	m.Consumed = 4
	return m
}

func TestIsFullAndSlotRangeConnected(t *testing.T) {
	r, _ := newTestReader(t)

	s1 := types.Slot(1)
	putSlotMeta(t, r, fullMeta(1, nil, []types.Slot{2}))
	putSlotMeta(t, r, fullMeta(2, &s1, []types.Slot{3}))
	putSlotMeta(t, r, fullMeta(3, func() *types.Slot { s := types.Slot(2); return &s }(), nil))

	connected, err := r.SlotRangeConnected(1, 3)
	if err != nil {
		t.Fatalf("SlotRangeConnected() error = %v", err)
	}
	if !connected {
		t.Error("SlotRangeConnected(1, 3) = false, want true")
	}

	// Break slot 2's fullness.
	meta2, _, err := r.getSlotMeta(2)
	if err != nil {
		t.Fatalf("getSlotMeta(2) error = %v", err)
	}
	meta2.Consumed = meta2.Received // no longer full
	putSlotMeta(t, r, meta2)

	connected, err = r.SlotRangeConnected(1, 3)
	if err != nil {
		t.Fatalf("SlotRangeConnected() error = %v", err)
	}
	if connected {
		t.Error("SlotRangeConnected(1, 3) = true after breaking slot 2, want false")
	}
}

func TestSlotRangeConnectedSameSlotAbsent(t *testing.T) {
	r, _ := newTestReader(t)
	connected, err := r.SlotRangeConnected(5, 5)
	if err != nil {
		t.Fatalf("SlotRangeConnected() error = %v", err)
	}
	if !connected {
		t.Error("SlotRangeConnected(5, 5) = false, want true even for an absent slot")
	}
}

func TestFindMissingDataIndexes(t *testing.T) {
	r, store := newTestReader(t)

	for _, idx := range []uint64{0, 2, 5} {
		key := types.ShredKey(10, idx)
		if err := store.Put(kvstore.CFDataShred, key[:], []byte{0, 0}); err != nil {
			t.Fatalf("Put(%d) error = %v", idx, err)
		}
	}

	got, err := r.FindMissingDataIndexes(10, 0, 0, 0, 6, 10)
	if err != nil {
		t.Fatalf("FindMissingDataIndexes() error = %v", err)
	}
	want := []uint64{1, 3, 4}
	if !equalUint64(got, want) {
		t.Errorf("FindMissingDataIndexes() = %v, want %v", got, want)
	}

	got, err = r.FindMissingDataIndexes(10, 0, 0, 0, 6, 2)
	if err != nil {
		t.Fatalf("FindMissingDataIndexes() error = %v", err)
	}
	want = []uint64{1, 3}
	if !equalUint64(got, want) {
		t.Errorf("FindMissingDataIndexes(max=2) = %v, want %v", got, want)
	}
}

func TestFindMissingDataIndexesEmptyRange(t *testing.T) {
	r, _ := newTestReader(t)
	got, err := r.FindMissingDataIndexes(10, 0, 0, 6, 6, 10)
	if err != nil {
		t.Fatalf("FindMissingDataIndexes() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("FindMissingDataIndexes(start==end) = %v, want empty", got)
	}

	got, err = r.FindMissingDataIndexes(10, 0, 0, 0, 6, 0)
	if err != nil {
		t.Fatalf("FindMissingDataIndexes() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("FindMissingDataIndexes(max=0) = %v, want empty", got)
	}
}

func equalUint64(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGetFirstAvailableBlock(t *testing.T) {
	r, store := newTestReader(t)

	for _, slot := range []types.Slot{5, 7, 9} {
		key := types.SlotKey(slot)
		if err := store.Put(kvstore.CFRoots, key[:], []byte{1}); err != nil {
			t.Fatalf("Put(roots, %d) error = %v", slot, err)
		}
	}
	meta := types.NewSlotMeta(5)
	meta.Received = 1
	putSlotMeta(t, r, meta)

	got, err := r.GetFirstAvailableBlock()
	if err != nil {
		t.Fatalf("GetFirstAvailableBlock() error = %v", err)
	}
	if got != 7 {
		t.Errorf("GetFirstAvailableBlock() = %d, want 7", got)
	}
}

func TestGetFirstAvailableBlockGenesis(t *testing.T) {
	r, store := newTestReader(t)
	key := types.SlotKey(0)
	if err := store.Put(kvstore.CFRoots, key[:], []byte{1}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	got, err := r.GetFirstAvailableBlock()
	if err != nil {
		t.Fatalf("GetFirstAvailableBlock() error = %v", err)
	}
	if got != 0 {
		t.Errorf("GetFirstAvailableBlock() = %d, want 0", got)
	}
}

func TestIsSkipped(t *testing.T) {
	r, store := newTestReader(t)

	for _, slot := range []types.Slot{1, 5} {
		key := types.SlotKey(slot)
		if err := store.Put(kvstore.CFRoots, key[:], []byte{1}); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
	}
	r.AdvanceMaxRoot(5)

	cases := map[types.Slot]bool{
		3: true,
		5: false,
		0: false,
		6: false,
	}
	for slot, want := range cases {
		got, err := r.IsSkipped(slot)
		if err != nil {
			t.Fatalf("IsSkipped(%d) error = %v", slot, err)
		}
		if got != want {
			t.Errorf("IsSkipped(%d) = %v, want %v", slot, got, want)
		}
	}
}

func TestGetTransactionStatusRequiresConfirmedUnrooted(t *testing.T) {
	r, store := newTestReader(t)

	var sig types.Signature
	sig[0] = 0xAB
	key := types.TransactionStatusKey(sig, 4)
	raw, _ := encodeValue(types.TransactionStatusMeta{})
	if err := store.Put(kvstore.CFTransactionStatus, key[:], raw); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	_, _, found, _, err := r.GetTransactionStatus(sig, nil)
	if err != nil {
		t.Fatalf("GetTransactionStatus() error = %v", err)
	}
	if found {
		t.Error("GetTransactionStatus() found = true with empty confirmedUnrooted, want false")
	}

	slot, _, found, _, err := r.GetTransactionStatus(sig, map[types.Slot]bool{4: true})
	if err != nil {
		t.Fatalf("GetTransactionStatus() error = %v", err)
	}
	if !found || slot != 4 {
		t.Errorf("GetTransactionStatus() = (%d, found=%v), want (4, true)", slot, found)
	}
}

func TestGetCompleteBlockOnNonFullSlotIsUnavailable(t *testing.T) {
	r, _ := newTestReader(t)
	meta := types.NewSlotMeta(1)
	meta.Received = 5
	meta.Consumed = 2 // not full
	putSlotMeta(t, r, meta)

	_, err := r.GetCompleteBlockWithEntries(1, false, false, false)
	if err != ErrSlotUnavailable {
		t.Errorf("GetCompleteBlockWithEntries() error = %v, want ErrSlotUnavailable", err)
	}
}
