package kvstore

import "errors"

var (
	// ErrKeyNotFound names a missing key. Get does not return it: it
	// reports a missing key through its found result.
	ErrKeyNotFound = errors.New("kvstore: key not found")

	// ErrUnknownColumnFamily is returned when a caller names a column
	// family Store was not opened with.
	ErrUnknownColumnFamily = errors.New("kvstore: unknown column family")

	// ErrClosed names a closed store. Store's methods do not return it;
	// an operation after Close returns bbolt's own error.
	ErrClosed = errors.New("kvstore: store is closed")
)
