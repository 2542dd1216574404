package forwarding

import (
	"sync"
	"time"

	"github.com/cuemby/ledgerd/pkg/types"
)

// PendingPool is the insertion-ordered Signature -> TransactionInfo map
// shared by the receiver and processor threads. A plain map loses
// insertion order, which the processor's positional alignment against the
// RPC signature-status response depends on — so order is tracked
// explicitly alongside the lookup map.
type PendingPool struct {
	mu    sync.RWMutex
	order []types.Signature
	byKey map[types.Signature]*types.TransactionInfo
}

// NewPendingPool returns an empty pool.
func NewPendingPool() *PendingPool {
	return &PendingPool{
		byKey: make(map[types.Signature]*types.TransactionInfo),
	}
}

// Len returns the number of pending transactions.
func (p *PendingPool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.order)
}

// Contains reports whether sig is currently tracked. Takes only a read
// lock, matching the receiver's dedup check against in-flight batches.
func (p *PendingPool) Contains(sig types.Signature) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.byKey[sig]
	return ok
}

// Insert adds info if its signature is not already present and the pool
// is below MaxPendingPoolSize, stamping LastSentTime to now. Returns false
// (silently, per the invariant at capacity) if either condition fails.
func (p *PendingPool) Insert(info types.TransactionInfo, now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.byKey[info.Signature]; exists {
		return false
	}
	if len(p.order) >= MaxPendingPoolSize {
		return false
	}

	info.LastSentTime = &now
	p.order = append(p.order, info.Signature)
	stored := info
	p.byKey[info.Signature] = &stored
	return true
}

// Snapshot returns every tracked TransactionInfo in insertion order. The
// processor uses this to align against a positionally-ordered RPC
// response.
func (p *PendingPool) Snapshot() []types.TransactionInfo {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]types.TransactionInfo, 0, len(p.order))
	for _, sig := range p.order {
		out = append(out, *p.byKey[sig])
	}
	return out
}

// Update overwrites the stored record for sig, if still present. Used by
// the processor to stamp Retries/LastSentTime on resend.
func (p *PendingPool) Update(info types.TransactionInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.byKey[info.Signature]; exists {
		stored := info
		p.byKey[info.Signature] = &stored
	}
}

// Remove drops every signature in sigs from the pool.
func (p *PendingPool) Remove(sigs []types.Signature) {
	if len(sigs) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	drop := make(map[types.Signature]bool, len(sigs))
	for _, s := range sigs {
		drop[s] = true
		delete(p.byKey, s)
	}

	kept := p.order[:0]
	for _, s := range p.order {
		if !drop[s] {
			kept = append(kept, s)
		}
	}
	p.order = kept
}
