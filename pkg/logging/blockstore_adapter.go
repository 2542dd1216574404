package logging

import "github.com/cuemby/ledgerd/pkg/blockstore"

// BlockstoreLogger adapts the global zerolog Logger to blockstore.Logger.
type BlockstoreLogger struct{}

var _ blockstore.Logger = BlockstoreLogger{}

// Errorf logs at error level via the global Logger.
func (BlockstoreLogger) Errorf(format string, args ...any) {
	Logger.Error().Msgf(format, args...)
}
