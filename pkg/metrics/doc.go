// Package metrics exposes Prometheus instrumentation
// (github.com/prometheus/client_golang) for the blockstore reader and
// the transaction forwarding service, plus the health/readiness/liveness
// JSON endpoints the daemon's HTTP surface mounts.
//
// Reader method calls are counted by name via ReaderCounters, satisfying
// blockstore.MethodCounters without that package importing prometheus
// directly. Forwarding exposes gauges for pending pool occupancy and
// histograms for batch send and signature-status round trips, the
// latter bucketed geometrically (b[i] = 5^(i-1)) to cover sub-millisecond
// local sends through multi-second degraded-network retries in eleven
// buckets.
package metrics
