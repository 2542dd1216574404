package blockstore

import (
	"sync"

	"github.com/cuemby/ledgerd/pkg/types"
)

// CleanupGuard is a held read-lock on lowestCleanupSlot, returned by
// checkLowestCleanupSlot/ensureLowestCleanupSlot. Callers performing a
// multi-column read must acquire it before the first dependent read and
// release it (Unlock) after the last — anything less admits a window
// where the background cleaner deletes a slot the read is midway through
// assembling.
type CleanupGuard struct {
	mu *sync.RWMutex
}

// Unlock releases the guard. Must be called exactly once, typically via
// defer immediately after acquisition.
func (g CleanupGuard) Unlock() {
	g.mu.RUnlock()
}

// cleanupState is the reader-owned lowestCleanupSlot, guarded by an
// RWMutex: many readers, one external writer (the cleanup service).
type cleanupState struct {
	mu   sync.RWMutex
	slot types.Slot
}

// checkLowestCleanupSlot acquires a shared read-lock and fails with
// ErrSlotCleanedUp if slot is at or below lowestCleanupSlot. On success the
// caller owns the returned guard and must Unlock it after its query
// completes.
func (c *cleanupState) checkLowestCleanupSlot(slot types.Slot) (CleanupGuard, error) {
	c.mu.RLock()
	lcs := c.slot
	if lcs > 0 && lcs >= slot {
		c.mu.RUnlock()
		return CleanupGuard{}, ErrSlotCleanedUp
	}
	return CleanupGuard{mu: &c.mu}, nil
}

// ensureLowestCleanupSlot unconditionally acquires the read-lock, for
// queries that span slots and have no single slot to pre-check against. It
// also returns lowestCleanupSlot+1 (saturating) for use as a lower bound
// on such scans.
func (c *cleanupState) ensureLowestCleanupSlot() (CleanupGuard, types.Slot) {
	c.mu.RLock()
	lcs := c.slot
	bound := lcs
	if bound != ^types.Slot(0) {
		bound++
	}
	return CleanupGuard{mu: &c.mu}, bound
}

// set is the cleanup writer's entry point: it takes the exclusive
// write-lock and advances lowestCleanupSlot. Exported on Reader as
// SetLowestCleanupSlot so an external cleanup service can drive it.
func (c *cleanupState) set(slot types.Slot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if slot > c.slot {
		c.slot = slot
	}
}

func (c *cleanupState) get() types.Slot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.slot
}
