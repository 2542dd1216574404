package gossip

import (
	"net"
	"sync"
	"time"

	"github.com/cuemby/ledgerd/pkg/forwarding"
	"github.com/cuemby/ledgerd/pkg/types"
)

var _ forwarding.GossipTable = (*ContactTable)(nil)

// ContactInfo is a single peer's advertised TPU socket, plus the time it
// was last refreshed so stale entries can be pruned.
type ContactInfo struct {
	TPU     *net.UDPAddr
	Updated time.Time
}

// ContactTable is a thread-safe pubkey -> contact info map. It satisfies
// forwarding.GossipTable and is the single place the forwarding sender
// resolves a leader pubkey to a socket to push transactions at.
type ContactTable struct {
	mu      sync.RWMutex
	entries map[types.Pubkey]ContactInfo
	maxAge  time.Duration
}

// NewContactTable builds an empty table. Entries older than maxAge are
// treated as absent by GetThreadSafeContactInfo; maxAge <= 0 disables
// expiry.
func NewContactTable(maxAge time.Duration) *ContactTable {
	return &ContactTable{
		entries: make(map[types.Pubkey]ContactInfo),
		maxAge:  maxAge,
	}
}

// GetThreadSafeContactInfo resolves pubkey to its advertised TPU socket.
// It satisfies forwarding.GossipTable.
func (t *ContactTable) GetThreadSafeContactInfo(pubkey types.Pubkey) (*net.UDPAddr, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	info, ok := t.entries[pubkey]
	if !ok {
		return nil, false
	}
	if t.maxAge > 0 && time.Since(info.Updated) > t.maxAge {
		return nil, false
	}
	return info.TPU, true
}

// Upsert records or replaces a peer's contact info.
func (t *ContactTable) Upsert(pubkey types.Pubkey, addr *net.UDPAddr, now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[pubkey] = ContactInfo{TPU: addr, Updated: now}
}

// Remove drops a peer from the table, e.g. once gossip marks it dead.
func (t *ContactTable) Remove(pubkey types.Pubkey) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, pubkey)
}

// Len reports the number of tracked peers, expired or not.
func (t *ContactTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Prune removes entries older than maxAge as of now. It is a no-op when
// maxAge <= 0. Callers typically run this on a ticker alongside the
// forwarding service's own refresh loop.
func (t *ContactTable) Prune(now time.Time) int {
	if t.maxAge <= 0 {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for pubkey, info := range t.entries {
		if now.Sub(info.Updated) > t.maxAge {
			delete(t.entries, pubkey)
			removed++
		}
	}
	return removed
}

// Snapshot returns a copy of every currently tracked pubkey, unfiltered
// by expiry. Used by diagnostics and tests.
func (t *ContactTable) Snapshot() map[types.Pubkey]ContactInfo {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[types.Pubkey]ContactInfo, len(t.entries))
	for k, v := range t.entries {
		out[k] = v
	}
	return out
}
