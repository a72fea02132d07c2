package log

import "go.uber.org/zap"

// NewNop returns a Logger that discards everything. Useful in tests and in
// tools that have not initialized logging.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}
