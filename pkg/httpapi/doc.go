// Package httpapi mounts the daemon's HTTP surface: health, readiness,
// and liveness endpoints plus the Prometheus scrape endpoint, following
// the same mux-and-Server shape pkg/api's HealthServer uses. It is a
// thin wrapper over pkg/metrics's handlers; the instrumentation itself
// lives there.
package httpapi
