package forwarding

import "time"

const (
	// MaxPendingPoolSize bounds the number of transactions the pool tracks
	// at once; inserts past this limit are silently skipped.
	MaxPendingPoolSize = 10000

	// DefaultBatchSize is the receiver's send-trigger threshold and the
	// processor's resend batch size.
	DefaultBatchSize = 1

	// DefaultBatchSendRate is the receiver's send-trigger max latency for
	// a non-empty, under-threshold batch.
	DefaultBatchSendRate = time.Millisecond

	// DefaultProcessTransactionsRate is the processor thread's poll
	// interval, and the minimum resend interval for a pending transaction.
	DefaultProcessTransactionsRate = 2 * time.Second

	// ServiceInfoRefreshInterval is how often the service-info refresh
	// thread re-fetches epoch info, blockhash, and the leader schedule.
	ServiceInfoRefreshInterval = 60 * time.Second

	// LeadersToForward is how many upcoming leaders (current + next N-1)
	// a batch is forwarded to.
	LeadersToForward = 2

	// NumConsecutiveLeaderSlots mirrors pkg/blockstore's constant: the
	// number of consecutive slots one leader holds.
	NumConsecutiveLeaderSlots = 4

	// SlotDuration is the target wall-clock duration of one slot.
	SlotDuration = 400 * time.Millisecond
)
