package forwarding

import (
	"context"
	"net"
	"sort"
	"sync"
	"time"

	"github.com/cuemby/ledgerd/pkg/types"
)

// ServiceInfoStore guards the refreshed snapshot of external state: epoch
// info, the leader schedule, the leader->TPU-address map, and the latest
// blockhash. The refresh thread takes the write lock; senders and the
// leader-address resolver take the read lock.
type ServiceInfoStore struct {
	mu   sync.RWMutex
	info types.ServiceInfo
}

// NewServiceInfoStore returns an empty store; Refresh must be called at
// least once before GetLeaderAddresses returns anything useful.
func NewServiceInfoStore() *ServiceInfoStore {
	return &ServiceInfoStore{}
}

// Snapshot returns a copy of the current ServiceInfo under the read lock.
func (s *ServiceInfoStore) Snapshot() types.ServiceInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}

// Refresh re-fetches epoch info and the latest blockhash, rebuilds the
// flattened slot->leader schedule, and rebuilds the leader address map
// from gossip — all under a single write lock, so readers never observe a
// half-rebuilt snapshot.
func (s *ServiceInfoStore) Refresh(ctx context.Context, oracle RPCOracle, gossip GossipTable, now time.Time) error {
	epochInfo, err := oracle.GetEpochInfo(ctx)
	if err != nil {
		return err
	}
	blockhash, err := oracle.GetLatestBlockhash(ctx)
	if err != nil {
		return err
	}
	schedule, err := oracle.GetLeaderSchedule(ctx)
	if err != nil {
		return err
	}

	startSlot := epochInfo.AbsoluteSlot - types.Slot(epochInfo.SlotIndex)

	var flattened []types.SlotLeader
	for leader, slots := range schedule {
		for _, relativeSlot := range slots {
			flattened = append(flattened, types.SlotLeader{
				Slot:   startSlot + types.Slot(relativeSlot),
				Leader: leader,
			})
		}
	}
	sort.Slice(flattened, func(i, j int) bool { return flattened[i].Slot < flattened[j].Slot })

	uniqueLeaders := make(map[types.Pubkey]bool)
	for _, sl := range flattened {
		uniqueLeaders[sl.Leader] = true
	}
	addresses := make(map[types.Pubkey]*net.UDPAddr)
	for leader := range uniqueLeaders {
		if addr, found := gossip.GetThreadSafeContactInfo(leader); found {
			addresses[leader] = addr
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = types.ServiceInfo{
		EpochInfo:        epochInfo,
		EpochInfoInstant: now,
		LatestBlockhash:  blockhash,
		SlotLeaders:      flattened,
		StartSlot:        startSlot,
		LeaderAddresses:  addresses,
	}
	return nil
}

// GetLeaderAddresses resolves the TPU addresses of the next
// LeadersToForward leaders (current leader plus the next N-1 leader
// turns), based on elapsed time since the snapshot was captured.
func (s *ServiceInfoStore) GetLeaderAddresses(now time.Time) ([]*net.UDPAddr, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.info.SlotLeaders) == 0 {
		return nil, ErrNoLeaderAddresses
	}

	slotsElapsed := types.Slot(now.Sub(s.info.EpochInfoInstant).Milliseconds() / int64(SlotDuration/time.Millisecond))

	var out []*net.UDPAddr
	for i := 0; i < LeadersToForward; i++ {
		slotIndex := types.Slot(s.info.EpochInfo.SlotIndex) + slotsElapsed + types.Slot(NumConsecutiveLeaderSlots*i)
		if int(slotIndex) >= len(s.info.SlotLeaders) {
			continue
		}
		leader := s.info.SlotLeaders[slotIndex].Leader
		addr, found := s.info.LeaderAddresses[leader]
		if !found {
			continue
		}
		out = append(out, addr)
	}
	if len(out) == 0 {
		return nil, ErrNoLeaderAddresses
	}
	return out, nil
}
