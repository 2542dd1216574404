package metrics

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cuemby/ledgerd/pkg/blockstore"
	"github.com/cuemby/ledgerd/pkg/forwarding"
	"github.com/cuemby/ledgerd/pkg/kvstore"
	"github.com/cuemby/ledgerd/pkg/types"
)

type fakeOracle struct{}

func (fakeOracle) GetEpochInfo(ctx context.Context) (types.EpochInfo, error) {
	return types.EpochInfo{Epoch: 1, SlotsInEpoch: 1000, AbsoluteSlot: 1000}, nil
}
func (fakeOracle) GetLatestBlockhash(ctx context.Context) (types.Hash, error) {
	return types.HashFromBytes([]byte("blockhash")), nil
}
func (fakeOracle) GetLeaderSchedule(ctx context.Context) (map[types.Pubkey][]uint64, error) {
	return map[types.Pubkey][]uint64{}, nil
}
func (fakeOracle) GetBlockHeight(ctx context.Context) (uint64, error) { return 0, nil }
func (fakeOracle) GetSignatureStatuses(ctx context.Context, sigs []types.Signature, searchHistory bool) ([]*forwarding.SignatureStatus, error) {
	return nil, nil
}

type fakeGossip struct{}

func (fakeGossip) GetThreadSafeContactInfo(types.Pubkey) (*net.UDPAddr, bool) { return nil, false }

type fakeTPU struct{}

func (fakeTPU) Send(addr *net.UDPAddr, batch [][]byte) error { return nil }

func newTestReader(t *testing.T) *blockstore.Reader {
	t.Helper()
	store, err := kvstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("kvstore.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return blockstore.NewReader(store, nil, nil, nil, nil)
}

func newTestService(t *testing.T, start bool) *forwarding.Service {
	t.Helper()
	svc := forwarding.NewService(forwarding.Config{
		Oracle: fakeOracle{},
		Gossip: fakeGossip{},
		TPU:    fakeTPU{},
	})
	if start {
		ctx, cancel := context.WithCancel(context.Background())
		if err := svc.Start(ctx); err != nil {
			t.Fatalf("Start() error = %v", err)
		}
		t.Cleanup(func() {
			cancel()
			svc.Stop()
		})
	}
	return svc
}

func TestGetHealthNoComponentsConfigured(t *testing.T) {
	Configure(nil, nil)
	defer Configure(nil, nil)

	health := GetHealth()
	if health.Status != "healthy" {
		t.Errorf("expected healthy status with nothing configured, got %s", health.Status)
	}
}

func TestGetHealthBlockstoreUnhealthyAfterClose(t *testing.T) {
	store, err := kvstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("kvstore.Open() error = %v", err)
	}
	reader := blockstore.NewReader(store, nil, nil, nil, nil)
	store.Close()

	Configure(reader, nil)
	defer Configure(nil, nil)

	health := GetHealth()
	if health.Status != "unhealthy" {
		t.Errorf("expected unhealthy status with a closed store, got %s", health.Status)
	}
	if health.Reason == "" {
		t.Error("expected a reason explaining the unhealthy status")
	}
}

func TestGetReadinessRequiresBothComponents(t *testing.T) {
	Configure(nil, nil)
	defer Configure(nil, nil)

	readiness := GetReadiness()
	if readiness.Status != "not_ready" {
		t.Errorf("expected not_ready with nothing configured, got %s", readiness.Status)
	}

	reader := newTestReader(t)
	Configure(reader, nil)
	readiness = GetReadiness()
	if readiness.Status != "not_ready" {
		t.Errorf("expected not_ready with forwarding unconfigured, got %s", readiness.Status)
	}
}

func TestGetReadinessAwaitsFirstServiceInfoRefresh(t *testing.T) {
	reader := newTestReader(t)
	svc := newTestService(t, false)

	Configure(reader, svc)
	defer Configure(nil, nil)

	readiness := GetReadiness()
	if readiness.Status != "not_ready" {
		t.Errorf("expected not_ready before the service has started, got %s", readiness.Status)
	}
}

func TestGetReadinessReadyOnceStarted(t *testing.T) {
	reader := newTestReader(t)
	svc := newTestService(t, true)

	Configure(reader, svc)
	defer Configure(nil, nil)

	readiness := GetReadiness()
	if readiness.Status != "ready" {
		t.Errorf("expected ready once started, got %s (%s)", readiness.Status, readiness.Reason)
	}
}

func TestHealthHandler(t *testing.T) {
	Configure(nil, nil)
	defer Configure(nil, nil)
	SetVersion("test")
	defer SetVersion("")

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	HealthHandler()(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var health HealthStatus
	if err := json.NewDecoder(w.Body).Decode(&health); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("expected healthy status, got %s", health.Status)
	}
	if health.Version != "test" {
		t.Errorf("expected version 'test', got %s", health.Version)
	}
}

func TestHealthHandlerUnhealthy(t *testing.T) {
	store, err := kvstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("kvstore.Open() error = %v", err)
	}
	reader := blockstore.NewReader(store, nil, nil, nil, nil)
	store.Close()

	Configure(reader, nil)
	defer Configure(nil, nil)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	HealthHandler()(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", w.Code)
	}

	var health HealthStatus
	if err := json.NewDecoder(w.Body).Decode(&health); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if health.Status != "unhealthy" {
		t.Errorf("expected unhealthy status, got %s", health.Status)
	}
}

func TestReadyHandler(t *testing.T) {
	reader := newTestReader(t)
	svc := newTestService(t, true)

	Configure(reader, svc)
	defer Configure(nil, nil)

	req := httptest.NewRequest("GET", "/readyz", nil)
	w := httptest.NewRecorder()

	ReadyHandler()(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var readiness HealthStatus
	if err := json.NewDecoder(w.Body).Decode(&readiness); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if readiness.Status != "ready" {
		t.Errorf("expected ready status, got %s", readiness.Status)
	}
}

func TestReadyHandlerNotReady(t *testing.T) {
	Configure(nil, nil)
	defer Configure(nil, nil)

	req := httptest.NewRequest("GET", "/readyz", nil)
	w := httptest.NewRecorder()

	ReadyHandler()(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", w.Code)
	}

	var readiness HealthStatus
	if err := json.NewDecoder(w.Body).Decode(&readiness); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if readiness.Status != "not_ready" {
		t.Errorf("expected not_ready status, got %s", readiness.Status)
	}
}

func TestLivenessHandler(t *testing.T) {
	req := httptest.NewRequest("GET", "/livez", nil)
	w := httptest.NewRecorder()

	LivenessHandler()(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["status"] != "alive" {
		t.Errorf("expected status 'alive', got '%s'", response["status"])
	}
	if response["uptime"] == "" {
		t.Error("uptime should not be empty")
	}
}
