package forwarding

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cuemby/ledgerd/pkg/types"
)

// Logger is the narrow logging seam this package needs: a single
// line per unrecoverable worker error. pkg/logging's zerolog wrapper
// satisfies it.
type Logger interface {
	Errorf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Errorf(string, ...any) {}

// Service ties the three forwarding goroutines to their shared guarded
// state: PendingPool and ServiceInfoStore.
type Service struct {
	oracle RPCOracle
	gossip GossipTable
	tpu    TPUSender
	logger Logger

	pending     *PendingPool
	serviceInfo *ServiceInfoStore

	inbound chan types.TransactionInfo

	// inboundMu guards the send-vs-close race on inbound: Submit holds
	// the read lock for the duration of its send, Stop takes the write
	// lock before closing, so a Submit in flight always either completes
	// its send before the close or observes inboundClosed and returns
	// ErrStopped without touching the channel.
	inboundMu     sync.RWMutex
	inboundClosed bool

	exit   int32
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Config bundles Service's external collaborators.
type Config struct {
	Oracle        RPCOracle
	Gossip        GossipTable
	TPU           TPUSender
	Logger        Logger
	InboundBuffer int
}

// NewService constructs a Service. Start must be called to begin the
// three worker loops.
func NewService(cfg Config) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = noopLogger{}
	}
	buf := cfg.InboundBuffer
	if buf <= 0 {
		buf = 1024
	}
	return &Service{
		oracle:      cfg.Oracle,
		gossip:      cfg.Gossip,
		tpu:         cfg.TPU,
		logger:      logger,
		pending:     NewPendingPool(),
		serviceInfo: NewServiceInfoStore(),
		inbound:     make(chan types.TransactionInfo, buf),
	}
}

// Submit enqueues a transaction for forwarding. Returns ErrStopped if the
// service has already been stopped.
func (s *Service) Submit(info types.TransactionInfo) error {
	s.inboundMu.RLock()
	defer s.inboundMu.RUnlock()
	if s.inboundClosed {
		return ErrStopped
	}
	s.inbound <- info
	return nil
}

// Start launches the service-info refresh, receiver, and processor loops.
func (s *Service) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	if err := s.serviceInfo.Refresh(ctx, s.oracle, s.gossip, s.now()); err != nil {
		cancel()
		return err
	}

	s.wg.Add(3)
	go s.refreshLoop(ctx)
	go s.receiverLoop(ctx, s.inbound)
	go s.processorLoop(ctx)
	return nil
}

// Stop signals all three loops to exit and waits for them to unwind.
func (s *Service) Stop() {
	atomic.StoreInt32(&s.exit, 1)
	if s.cancel != nil {
		s.cancel()
	}

	s.inboundMu.Lock()
	s.inboundClosed = true
	close(s.inbound)
	s.inboundMu.Unlock()

	s.wg.Wait()
}

// Ready reports whether the service has completed its first service-info
// refresh (epoch info, blockhash, leader schedule) and is therefore able
// to resolve leader addresses for forwarding.
func (s *Service) Ready() (bool, string) {
	if atomic.LoadInt32(&s.exit) != 0 {
		return false, "stopped"
	}
	if s.serviceInfo.Snapshot().EpochInfoInstant.IsZero() {
		return false, "awaiting first service-info refresh"
	}
	return true, ""
}

// PendingCount exposes PendingPool.Len for observability/tests.
func (s *Service) PendingCount() int {
	return s.pending.Len()
}

func (s *Service) refreshLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(ServiceInfoRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if atomic.LoadInt32(&s.exit) != 0 {
				return
			}
			if err := s.serviceInfo.Refresh(ctx, s.oracle, s.gossip, s.now()); err != nil {
				s.logSendError(err)
			}
		}
	}
}

func (s *Service) now() time.Time {
	return time.Now()
}

func (s *Service) logSendError(err error) {
	s.logger.Errorf("forwarding: %v", err)
}
