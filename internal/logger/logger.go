// Package logger holds the process-wide logger. The TUI owns stdout, so
// logs go to a file; until Setup runs, logging is a no-op.
package logger

import "go.uber.org/zap"

// Logger is the shared sugared logger. Defaults to a nop so callers never
// nil-check.
var Logger = zap.NewNop().Sugar()

// Setup replaces the nop logger with a development-encoded logger writing
// to path.
func Setup(path string) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = l.Sugar()
	return nil
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	_ = Logger.Sync()
}
