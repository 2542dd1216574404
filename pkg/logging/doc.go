// Package logging wraps zerolog (github.com/rs/zerolog) behind a small
// global-logger API, following the same Init/WithComponent pattern the
// rest of the stack uses: a package-level Logger set once at startup,
// JSON or console output, and context loggers that attach a field
// (component, slot, signature) rather than requiring every call site to
// repeat it.
package logging
