package logger_test

import (
	"errors"
	"fmt"
	"testing"

	"file-sorter/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		wantErr bool
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console"}, false},
		{"InfoJSON", logger.Config{Level: "info", Format: "json"}, false},
		{"Warn", logger.Config{Level: "warn", Format: "console"}, false},
		{"Empty", logger.Config{}, false},
		{"InvalidLevel", logger.Config{Level: "loud"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestWithCause(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	l := zap.New(core)

	root := errors.New("disk full")
	err := fmt.Errorf("sort shards: %w", fmt.Errorf("write shard: %w", root))

	l.Error("pipeline failed", logger.WithCause(err)...)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "sort shards: write shard: disk full", fields["error"])
	assert.Equal(t, "write shard: disk full", fields["cause"])
}

func TestWithCause_NoNestedError(t *testing.T) {
	fields := logger.WithCause(errors.New("plain"))
	assert.Len(t, fields, 1)
}
