package forwarding

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/cuemby/ledgerd/pkg/types"
)

type fakeOracle struct {
	blockHeight uint64
	statuses    []*SignatureStatus
}

func (f *fakeOracle) GetEpochInfo(ctx context.Context) (types.EpochInfo, error) {
	return types.EpochInfo{Epoch: 1, SlotIndex: 0, SlotsInEpoch: 1000, AbsoluteSlot: 1000}, nil
}
func (f *fakeOracle) GetLatestBlockhash(ctx context.Context) (types.Hash, error) {
	return types.HashFromBytes([]byte("blockhash")), nil
}
func (f *fakeOracle) GetLeaderSchedule(ctx context.Context) (map[types.Pubkey][]uint64, error) {
	return map[types.Pubkey][]uint64{}, nil
}
func (f *fakeOracle) GetBlockHeight(ctx context.Context) (uint64, error) {
	return f.blockHeight, nil
}
func (f *fakeOracle) GetSignatureStatuses(ctx context.Context, sigs []types.Signature, searchHistory bool) ([]*SignatureStatus, error) {
	return f.statuses, nil
}

type fakeGossip struct{}

func (fakeGossip) GetThreadSafeContactInfo(types.Pubkey) (*net.UDPAddr, bool) {
	return nil, false
}

type fakeTPU struct{ sent int }

func (f *fakeTPU) Send(addr *net.UDPAddr, batch [][]byte) error {
	f.sent++
	return nil
}

func TestProcessorDropsRootedTransaction(t *testing.T) {
	oracle := &fakeOracle{blockHeight: 50}
	svc := NewService(Config{Oracle: oracle, Gossip: fakeGossip{}, TPU: &fakeTPU{}})

	sig := sigWithByte(1)
	svc.pending.Insert(types.TransactionInfo{
		Signature:            sig,
		LastValidBlockHeight: 100,
	}, time.Now())

	oracle.statuses = []*SignatureStatus{{Confirmations: nil}}

	if err := svc.processPendingOnce(context.Background()); err != nil {
		t.Fatalf("processPendingOnce() error = %v", err)
	}

	if svc.pending.Contains(sig) {
		t.Error("pending pool still contains a rooted transaction after one processor tick")
	}
}

func TestProcessorDropsFailedTransaction(t *testing.T) {
	oracle := &fakeOracle{blockHeight: 50}
	svc := NewService(Config{Oracle: oracle, Gossip: fakeGossip{}, TPU: &fakeTPU{}})

	sig := sigWithByte(2)
	svc.pending.Insert(types.TransactionInfo{Signature: sig, LastValidBlockHeight: 100}, time.Now())
	confirmations := uint64(3)
	oracle.statuses = []*SignatureStatus{{Confirmations: &confirmations, Err: "InstructionError"}}

	if err := svc.processPendingOnce(context.Background()); err != nil {
		t.Fatalf("processPendingOnce() error = %v", err)
	}
	if svc.pending.Contains(sig) {
		t.Error("pending pool still contains a failed transaction after one processor tick")
	}
}

func TestProcessorDropsExpiredTransaction(t *testing.T) {
	oracle := &fakeOracle{blockHeight: 200}
	svc := NewService(Config{Oracle: oracle, Gossip: fakeGossip{}, TPU: &fakeTPU{}})

	sig := sigWithByte(3)
	svc.pending.Insert(types.TransactionInfo{Signature: sig, LastValidBlockHeight: 100}, time.Now())
	confirmations := uint64(1)
	oracle.statuses = []*SignatureStatus{{Confirmations: &confirmations}}

	if err := svc.processPendingOnce(context.Background()); err != nil {
		t.Fatalf("processPendingOnce() error = %v", err)
	}
	if svc.pending.Contains(sig) {
		t.Error("pending pool still contains an expired transaction after one processor tick")
	}
}

func TestProcessorResendsStalledTransaction(t *testing.T) {
	tpu := &fakeTPU{}
	oracle := &fakeOracle{blockHeight: 10}
	svc := NewService(Config{Oracle: oracle, Gossip: fakeGossip{}, TPU: tpu})

	sig := sigWithByte(4)
	old := time.Now().Add(-10 * time.Second)
	svc.pending.Insert(types.TransactionInfo{
		Signature:            sig,
		LastValidBlockHeight: 100,
		LastSentTime:         &old,
	}, old)
	oracle.statuses = []*SignatureStatus{nil}

	if err := svc.processPendingOnce(context.Background()); err != nil {
		t.Fatalf("processPendingOnce() error = %v", err)
	}
	if !svc.pending.Contains(sig) {
		t.Error("pending pool dropped a stalled-but-retryable transaction")
	}
	if snap := svc.pending.Snapshot(); len(snap) != 1 || snap[0].Retries != 1 {
		t.Errorf("pending pool after resend = %+v, want one entry with Retries == 1", snap)
	}
}
