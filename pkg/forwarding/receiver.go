package forwarding

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/cuemby/ledgerd/pkg/types"
)

// receiverLoop drains inbound, batches signatures not already in flight,
// and flushes the batch to the sender either once it reaches
// DefaultBatchSize or once DefaultBatchSendRate has elapsed since the
// batch became non-empty. A closed inbound channel ends the loop.
func (s *Service) receiverLoop(ctx context.Context, inbound <-chan types.TransactionInfo) {
	defer s.wg.Done()

	var batch []types.TransactionInfo
	batchStart := time.Now()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := s.sendTransactions(batch); err != nil {
			s.logSendError(err)
		}

		now := time.Now()
		for _, info := range batch {
			if s.pending.Len() >= MaxPendingPoolSize {
				break
			}
			s.pending.Insert(info, now)
		}
		batch = batch[:0]
	}

	ticker := time.NewTicker(DefaultBatchSendRate)
	defer ticker.Stop()

	for {
		if atomic.LoadInt32(&s.exit) != 0 {
			return
		}
		select {
		case <-ctx.Done():
			return
		case info, ok := <-inbound:
			if !ok {
				flush()
				return
			}
			if batchContains(batch, info.Signature) || s.pending.Contains(info.Signature) {
				continue
			}
			if len(batch) == 0 {
				batchStart = time.Now()
			}
			batch = append(batch, info)
			if len(batch) >= DefaultBatchSize {
				flush()
			}
		case <-ticker.C:
			if len(batch) > 0 && time.Since(batchStart) >= DefaultBatchSendRate {
				flush()
			}
		}
	}
}

func batchContains(batch []types.TransactionInfo, sig types.Signature) bool {
	for _, b := range batch {
		if b.Signature == sig {
			return true
		}
	}
	return false
}
