package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		level     string
		format    string
		wantLevel zapcore.Level
	}{
		{name: "defaults", wantLevel: zapcore.InfoLevel},
		{name: "json warn", level: "warn", format: "json", wantLevel: zapcore.WarnLevel},
		{name: "console error", level: "error", format: "console", wantLevel: zapcore.ErrorLevel},
		{name: "debug overrides level", debug: true, level: "error", wantLevel: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.debug, tt.level, tt.format)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.wantLevel))
			if tt.wantLevel > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.wantLevel-1))
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(false, "loud", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestNew_InvalidFormat(t *testing.T) {
	_, err := New(false, "info", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log format")
}
