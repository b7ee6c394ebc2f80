package logger

import (
	"sync/atomic"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
)

// NoopLogger discards every entry. It still tracks the level so code that
// adjusts verbosity behaves the same under tests.
type NoopLogger struct {
	level atomic.Int32
}

// NewNoopLogger creates a logger that writes nothing
func NewNoopLogger() core.Logger {
	l := &NoopLogger{}
	l.level.Store(int32(core.LogLevelInfo))
	return l
}

func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level.Store(int32(level)) }
func (l *NoopLogger) GetLevel() core.LogLevel { return core.LogLevel(l.level.Load()) }

func (l *NoopLogger) Debug(string, map[string]any) {}
func (l *NoopLogger) Info(string, map[string]any) {}
func (l *NoopLogger) Warn(string, map[string]any) {}
func (l *NoopLogger) Error(string, map[string]any) {}

// Flush has nothing to write
func (l *NoopLogger) Flush() error { return nil }

var _ core.Logger = (*NoopLogger)(nil)
