package gossip

import (
	"context"
	"time"
)

// Pruner periodically evicts stale entries from a ContactTable, mirroring
// the interval-refresh pattern the forwarding service uses for leader
// schedules. The cluster gossip protocol itself (CRDS push/pull over
// UDP) is an external collaborator that calls ContactTable.Upsert as it
// learns about peers; Pruner only handles expiry of entries nothing has
// refreshed in a while.
type Pruner struct {
	table    *ContactTable
	interval time.Duration
}

// NewPruner builds a pruner that sweeps table every interval.
func NewPruner(table *ContactTable, interval time.Duration) *Pruner {
	return &Pruner{table: table, interval: interval}
}

// Run blocks, pruning table every interval until ctx is canceled.
func (p *Pruner) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			p.table.Prune(now)
		}
	}
}
