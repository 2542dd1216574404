package forwarding

import "errors"

var (
	// ErrPoolFull names the pool-full condition. PendingPool.Insert does
	// not return it: at MaxPendingPoolSize the insert is skipped silently
	// and Insert returns false.
	ErrPoolFull = errors.New("forwarding: pending pool is full")

	// ErrStopped is returned by Submit after Service.Stop has been called.
	ErrStopped = errors.New("forwarding: service is stopped")

	// ErrNoLeaderAddresses is returned when a send is attempted but no
	// upcoming leader currently has a resolvable TPU address.
	ErrNoLeaderAddresses = errors.New("forwarding: no leader addresses available")
)
