package logging

import (
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// logger is the package-level logger, stored as an atomic pointer to allow
// safe concurrent reads and writes. A nil value means no custom logger has
// been set and Logger() falls back to a cached default.
var logger atomic.Pointer[zerolog.Logger]

// defaultLogger caches the default-derived logger so it is not re-created
// on every Logger() call. Calling SetLogger(nil) clears the cache.
var defaultLogger atomic.Pointer[zerolog.Logger]

// Logger returns the current package-level logger. If no custom logger has
// been set via SetLogger, it returns a cached default logger that writes
// JSON records to stderr. It is safe to call from multiple goroutines.
func Logger() *zerolog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	l := newDefaultLogger()
	if defaultLogger.CompareAndSwap(nil, l) {
		return l
	}
	if l2 := defaultLogger.Load(); l2 != nil {
		return l2
	}
	return l
}

func newDefaultLogger() *zerolog.Logger {
	l := zerolog.New(os.Stderr).With().Timestamp().Str("component", "cmdld").Logger()
	return &l
}

// SetLogger replaces the package-level logger. If l is nil, the logger
// resets to the cached default, re-derived on the next Logger() call.
//
// SetLogger is safe to call concurrently with other cmdld operations.
func SetLogger(l *zerolog.Logger) {
	logger.Store(l)
	defaultLogger.Store(nil)
}

// SetLevel adjusts the global zerolog level, letting callers turn on debug
// logging without replacing the whole logger.
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}
