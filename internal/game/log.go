package game

import "go.uber.org/zap"

// logger is the package-wide sink for the simulation's fire-and-forget
// diagnostics. It never affects control flow. Defaults to a nop so
// tests and headless embedders stay silent.
var logger = zap.NewNop()

// SetLogger installs the process logger. Pass nil to silence.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
