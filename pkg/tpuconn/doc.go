// Package tpuconn implements forwarding.TPUSender over plain UDP
// sockets, following the same connect-then-operate shape pkg/health's
// TCPChecker uses for its checks: a small struct carrying a timeout, a
// dialer built per call (UDP has no persistent handshake to amortize),
// and a Result-shaped error path.
package tpuconn
