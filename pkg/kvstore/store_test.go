package kvstore

import (
	"bytes"
	"testing"
)

func TestOpenCreatesColumnFamilies(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := Open(tmpDir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	for _, cf := range columnFamilies {
		if _, _, err := store.Get(cf, []byte("missing")); err != nil {
			t.Errorf("Get(%s) on fresh column family returned error: %v", cf, err)
		}
	}
}

func TestGetUnknownColumnFamily(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	if _, _, err := store.Get("not_a_cf", []byte("x")); err != ErrUnknownColumnFamily {
		t.Errorf("Get() error = %v, want ErrUnknownColumnFamily", err)
	}
}

func TestPutGetDelete(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	key, value := []byte("key-1"), []byte("value-1")
	if err := store.Put(CFSlotMeta, key, value); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, found, err := store.Get(CFSlotMeta, key)
	if err != nil || !found {
		t.Fatalf("Get() = (%v, %v, %v), want value present", got, found, err)
	}
	if !bytes.Equal(got, value) {
		t.Errorf("Get() = %q, want %q", got, value)
	}

	if err := store.Delete(CFSlotMeta, key); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, found, _ := store.Get(CFSlotMeta, key); found {
		t.Error("Get() found value after Delete()")
	}
}

func TestIteratorForwardOrder(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	keys := [][]byte{[]byte("a"), []byte("b"), []byte("c")}
	for _, k := range keys {
		if err := store.Put(CFRoots, k, k); err != nil {
			t.Fatalf("Put(%s) error = %v", k, err)
		}
	}

	it, err := store.Iterator(CFRoots, Forward, nil)
	if err != nil {
		t.Fatalf("Iterator() error = %v", err)
	}
	defer it.Close()

	var seen [][]byte
	for it.Next() {
		seen = append(seen, it.Entry().Key)
	}
	if len(seen) != len(keys) {
		t.Fatalf("Iterator() yielded %d entries, want %d", len(seen), len(keys))
	}
	for i, k := range keys {
		if !bytes.Equal(seen[i], k) {
			t.Errorf("Iterator()[%d] = %q, want %q", i, seen[i], k)
		}
	}
}

func TestIteratorReverseFromSeek(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	for _, k := range []string{"a", "b", "c", "d"} {
		if err := store.Put(CFRoots, []byte(k), []byte(k)); err != nil {
			t.Fatalf("Put(%s) error = %v", k, err)
		}
	}

	it, err := store.Iterator(CFRoots, Reverse, []byte("c"))
	if err != nil {
		t.Fatalf("Iterator() error = %v", err)
	}
	defer it.Close()

	var seen []string
	for it.Next() {
		seen = append(seen, string(it.Entry().Key))
	}
	want := []string{"c", "b", "a"}
	if len(seen) != len(want) {
		t.Fatalf("Iterator() yielded %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("Iterator()[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestDeleteRange(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	for _, k := range []string{"a", "b", "c", "d"} {
		if err := store.Put(CFDataShred, []byte(k), []byte(k)); err != nil {
			t.Fatalf("Put(%s) error = %v", k, err)
		}
	}

	if err := store.DeleteRange(CFDataShred, []byte("b"), []byte("d")); err != nil {
		t.Fatalf("DeleteRange() error = %v", err)
	}

	for k, wantFound := range map[string]bool{"a": true, "b": false, "c": false, "d": true} {
		_, found, _ := store.Get(CFDataShred, []byte(k))
		if found != wantFound {
			t.Errorf("Get(%s) found = %v, want %v", k, found, wantFound)
		}
	}
}

func TestViewRawIterator(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	for _, k := range []string{"a", "b", "c"} {
		if err := store.Put(CFRoots, []byte(k), []byte(k)); err != nil {
			t.Fatalf("Put(%s) error = %v", k, err)
		}
	}

	var seen []string
	err = store.View(CFRoots, func(it RawIterator) error {
		for ok := it.Seek([]byte("a")); ok; ok = it.Next() {
			seen = append(seen, string(it.Key()))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	if len(seen) != 3 {
		t.Fatalf("View() visited %v, want 3 keys", seen)
	}
}
