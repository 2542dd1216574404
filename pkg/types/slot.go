package types

// Slot is the protocol's logical time unit: each leader is assigned a run
// of consecutive slots in the leader schedule.
type Slot uint64

// UnixTimestamp is a slot's estimated wall-clock time, in seconds since
// the Unix epoch.
type UnixTimestamp int64
