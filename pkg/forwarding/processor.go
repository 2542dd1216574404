package forwarding

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/cuemby/ledgerd/pkg/types"
)

// processorLoop wakes every DefaultProcessTransactionsRate, fetches the
// current block height and signature statuses for everything pending, and
// decides per-transaction whether to drop (rooted, failed, or expired) or
// resend (stalled past the retry interval, under its retry budget).
func (s *Service) processorLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(DefaultProcessTransactionsRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if atomic.LoadInt32(&s.exit) != 0 {
				return
			}
			if err := s.processPendingOnce(ctx); err != nil {
				s.logSendError(err)
				atomic.StoreInt32(&s.exit, 1)
				return
			}
		}
	}
}

func (s *Service) processPendingOnce(ctx context.Context) error {
	pending := s.pending.Snapshot()
	if len(pending) == 0 {
		return nil
	}

	sigs := make([]types.Signature, len(pending))
	for i, info := range pending {
		sigs[i] = info.Signature
	}

	currentBlockHeight, err := s.oracle.GetBlockHeight(ctx)
	if err != nil {
		return err
	}
	statuses, err := s.oracle.GetSignatureStatuses(ctx, sigs, false)
	if err != nil {
		return err
	}

	now := time.Now()
	var (
		drop  []types.Signature
		retry []types.TransactionInfo
	)

	for i, info := range pending {
		var status *SignatureStatus
		if i < len(statuses) {
			status = statuses[i]
		}

		switch {
		case status != nil && status.Confirmations == nil:
			// Rooted.
			drop = append(drop, info.Signature)
		case status != nil && status.Err != "":
			drop = append(drop, info.Signature)
		case status != nil && info.LastValidBlockHeight < currentBlockHeight:
			drop = append(drop, info.Signature)
		case status == nil:
			if info.MaxRetries != nil && info.Retries >= *info.MaxRetries {
				drop = append(drop, info.Signature)
				continue
			}
			if info.LastSentTime == nil || now.Sub(*info.LastSentTime) >= DefaultProcessTransactionsRate {
				updated := info
				if info.LastSentTime != nil {
					updated.Retries++
				}
				updated.LastSentTime = &now
				s.pending.Update(updated)
				retry = append(retry, updated)
			}
		}
	}

	for start := 0; start < len(retry); start += DefaultBatchSize {
		end := start + DefaultBatchSize
		if end > len(retry) {
			end = len(retry)
		}
		if err := s.sendTransactions(retry[start:end]); err != nil {
			s.logSendError(err)
		}
	}

	s.pending.Remove(drop)
	return nil
}
