package gossip

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/cuemby/ledgerd/pkg/types"
)

func pubkeyWithByte(b byte) types.Pubkey {
	var p types.Pubkey
	p[0] = b
	return p
}

func TestContactTableUpsertAndGet(t *testing.T) {
	table := NewContactTable(0)
	addr := &net.UDPAddr{IP: net.ParseIP("10.0.0.1"), Port: 8001}
	pk := pubkeyWithByte(1)

	table.Upsert(pk, addr, time.Now())

	got, ok := table.GetThreadSafeContactInfo(pk)
	if !ok {
		t.Fatal("GetThreadSafeContactInfo() ok = false, want true")
	}
	if got.String() != addr.String() {
		t.Errorf("GetThreadSafeContactInfo() = %v, want %v", got, addr)
	}
}

func TestContactTableMissingPeer(t *testing.T) {
	table := NewContactTable(0)
	if _, ok := table.GetThreadSafeContactInfo(pubkeyWithByte(9)); ok {
		t.Error("GetThreadSafeContactInfo() ok = true for unknown peer, want false")
	}
}

func TestContactTableExpiry(t *testing.T) {
	table := NewContactTable(time.Minute)
	pk := pubkeyWithByte(2)
	addr := &net.UDPAddr{IP: net.ParseIP("10.0.0.2"), Port: 8002}

	table.Upsert(pk, addr, time.Now().Add(-2*time.Minute))

	if _, ok := table.GetThreadSafeContactInfo(pk); ok {
		t.Error("GetThreadSafeContactInfo() ok = true for expired entry, want false")
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (expiry hides entries, it does not remove them)", table.Len())
	}
}

func TestContactTableRemove(t *testing.T) {
	table := NewContactTable(0)
	pk := pubkeyWithByte(3)
	table.Upsert(pk, &net.UDPAddr{Port: 8003}, time.Now())

	table.Remove(pk)

	if _, ok := table.GetThreadSafeContactInfo(pk); ok {
		t.Error("GetThreadSafeContactInfo() ok = true after Remove, want false")
	}
}

func TestContactTablePrune(t *testing.T) {
	table := NewContactTable(time.Minute)
	now := time.Now()
	table.Upsert(pubkeyWithByte(4), &net.UDPAddr{Port: 8004}, now.Add(-2*time.Minute))
	table.Upsert(pubkeyWithByte(5), &net.UDPAddr{Port: 8005}, now)

	removed := table.Prune(now)

	if removed != 1 {
		t.Fatalf("Prune() removed = %d, want 1", removed)
	}
	if table.Len() != 1 {
		t.Errorf("Len() after Prune = %d, want 1", table.Len())
	}
}

func TestPrunerRunStopsOnCancel(t *testing.T) {
	table := NewContactTable(time.Millisecond)
	table.Upsert(pubkeyWithByte(6), &net.UDPAddr{Port: 8006}, time.Now().Add(-time.Hour))

	pruner := NewPruner(table, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		pruner.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Pruner.Run did not return after context cancellation")
	}

	if table.Len() != 0 {
		t.Errorf("Len() after pruning = %d, want 0", table.Len())
	}
}
