package logging

import "github.com/cuemby/ledgerd/pkg/forwarding"

// ForwardingLogger adapts the global zerolog Logger to forwarding.Logger
// so the service can log send failures without importing zerolog
// itself.
type ForwardingLogger struct{}

var _ forwarding.Logger = ForwardingLogger{}

// Errorf logs at error level via the global Logger.
func (ForwardingLogger) Errorf(format string, args ...any) {
	Logger.Error().Msgf(format, args...)
}
