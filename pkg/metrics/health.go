package metrics

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/cuemby/ledgerd/pkg/blockstore"
	"github.com/cuemby/ledgerd/pkg/forwarding"
)

// HealthStatus is the JSON body served by the health, readiness, and
// liveness endpoints.
type HealthStatus struct {
	Status    string    `json:"status"` // "healthy"/"unhealthy" or "ready"/"not_ready"
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason,omitempty"`
	Version   string    `json:"version,omitempty"`
	Uptime    string    `json:"uptime,omitempty"`
}

var (
	startTime = time.Now()

	mu      sync.RWMutex
	reader  *blockstore.Reader
	service *forwarding.Service
	version string
)

// Configure wires the two components health and readiness are reported
// against. Either may be nil if that subsystem is not running in this
// process (e.g. a future read-only inspection mode with no forwarding
// service).
func Configure(r *blockstore.Reader, s *forwarding.Service) {
	mu.Lock()
	defer mu.Unlock()
	reader, service = r, s
}

// SetVersion sets the version string for health responses.
func SetVersion(v string) {
	mu.Lock()
	defer mu.Unlock()
	version = v
}

func snapshot() (*blockstore.Reader, *forwarding.Service, string) {
	mu.RLock()
	defer mu.RUnlock()
	return reader, service, version
}

// GetHealth reports whether the configured components are functioning. An
// unconfigured component is not itself a failure (the daemon may simply
// be mid-startup), only a configured-but-erroring one is "unhealthy".
func GetHealth() HealthStatus {
	r, s, v := snapshot()
	status, reason := "healthy", ""

	if r != nil {
		if ok, why := r.Ready(); !ok {
			status, reason = "unhealthy", "blockstore: "+why
		}
	}
	if status == "healthy" && s != nil {
		if ok, why := s.Ready(); !ok {
			status, reason = "unhealthy", "forwarding: "+why
		}
	}

	return HealthStatus{
		Status:    status,
		Timestamp: time.Now(),
		Reason:    reason,
		Version:   v,
		Uptime:    time.Since(startTime).String(),
	}
}

// GetReadiness reports whether the blockstore reader has an open store
// and the forwarding service has completed its first leader-schedule
// refresh — the two preconditions for the daemon to accept traffic.
func GetReadiness() HealthStatus {
	r, s, v := snapshot()
	status, reason := "ready", ""

	switch {
	case r == nil:
		status, reason = "not_ready", "blockstore reader not configured"
	case s == nil:
		status, reason = "not_ready", "forwarding service not configured"
	default:
		if ok, why := r.Ready(); !ok {
			status, reason = "not_ready", "blockstore: "+why
		} else if ok, why := s.Ready(); !ok {
			status, reason = "not_ready", "forwarding: "+why
		}
	}

	return HealthStatus{
		Status:    status,
		Timestamp: time.Now(),
		Reason:    reason,
		Version:   v,
		Uptime:    time.Since(startTime).String(),
	}
}

// HealthHandler serves GET /healthz.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health := GetHealth()

		w.Header().Set("Content-Type", "application/json")
		statusCode := http.StatusOK
		if health.Status == "unhealthy" {
			statusCode = http.StatusServiceUnavailable
		}
		w.WriteHeader(statusCode)
		_ = json.NewEncoder(w).Encode(health)
	}
}

// ReadyHandler serves GET /readyz.
func ReadyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		readiness := GetReadiness()

		w.Header().Set("Content-Type", "application/json")
		statusCode := http.StatusOK
		if readiness.Status != "ready" {
			statusCode = http.StatusServiceUnavailable
		}
		w.WriteHeader(statusCode)
		_ = json.NewEncoder(w).Encode(readiness)
	}
}

// LivenessHandler serves GET /livez, always 200 while the process runs.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status": "alive",
			"uptime": time.Since(startTime).String(),
		})
	}
}
