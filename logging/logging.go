// Package logging holds the shared logger for the decoder packages.
package logging

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// L returns the package logger. It is a no-op logger until SetLogger
// is called.
func L() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the shared logger. Call it before decoding starts.
func SetLogger(l *zap.Logger) {
	logger = l
}
