// Package logging provides the *slog.Logger used for debug output.
package logging

import (
	"io"
	"log/slog"
	"sync/atomic"
)

// discardLogger returns a logger that drops all records. It stands in
// for discardLogger(), which requires Go 1.24.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// logger holds the package-level logger. A nil value means no logger
// has been configured and output is discarded.
var logger atomic.Pointer[slog.Logger]

// SetLogger configures the package-level logger used for debug
// output across the module. Passing nil disables logging.
//
// Safe for concurrent use.
//
// Example sending debug output to stderr:
//
//	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger()
	}
	logger.Store(l)
}

// Logger returns the package-level logger, or a discard logger when
// none has been configured.
//
// Safe for concurrent use.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return discardLogger()
}
