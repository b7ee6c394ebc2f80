package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
)

func TestZapLogger_Level(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		expected core.LogLevel
	}{
		{"console debug", Options{Level: "debug", Format: "console"}, core.LogLevelDebug},
		{"json warn", Options{Level: "warn", Format: "json"}, core.LogLevelWarn},
		{"unknown level defaults to info", Options{Level: "verbose"}, core.LogLevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewZapLogger(tt.opts)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, l.GetLevel())
		})
	}
}

func TestZapLogger_SetLevel(t *testing.T) {
	l, err := NewZapLogger(Options{Level: "info", Format: "json"})
	require.NoError(t, err)

	l.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, l.GetLevel())

	l.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())

	assert.NotPanics(t, func() {
		l.Debug("debug message", map[string]any{"key": "value"})
		l.Info("info message", nil)
	})
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.SetLevel(core.LogLevelWarn)

	assert.Equal(t, core.LogLevelWarn, l.GetLevel())
	assert.NoError(t, l.Flush())
}
