//go:build unit

package log

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{input: "debug", expected: LevelDebug},
		{input: "INFO", expected: LevelInfo},
		{input: "warn", expected: LevelWarn},
		{input: "warning", expected: LevelWarn},
		{input: "error", expected: LevelError},
		{input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestZapLoggerEmitsFields(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zap.DebugLevel)
	logger := NewZap(zap.New(core))

	logger.Log(context.Background(), LevelInfo, "command dispatched",
		String("method", "getBalance"),
		Uint32("account", 3),
	)

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "command dispatched", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "getBalance", fields["method"])
	assert.EqualValues(t, 3, fields["account"])
}

func TestZapLoggerErrField(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zap.DebugLevel)
	logger := NewZap(zap.New(core)).With(Err(errors.New("engine gone")))

	logger.Log(context.Background(), LevelError, "dispatch failed")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "engine gone", entries[0].ContextMap()["error"])
}

func TestZapLoggerEnabledRespectsLevel(t *testing.T) {
	t.Parallel()

	core, _ := observer.New(zap.InfoLevel)
	logger := NewZap(zap.New(core))

	assert.True(t, logger.Enabled(LevelInfo))
	assert.True(t, logger.Enabled(LevelError))
	assert.False(t, logger.Enabled(LevelDebug))
}

func TestNilZapLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var logger *ZapLogger

	require.NotPanics(t, func() {
		logger.Log(context.Background(), LevelInfo, "ignored")
	})
	require.NoError(t, logger.Sync(context.Background()))
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()

	assert.False(t, logger.Enabled(LevelError))
	require.NoError(t, logger.Sync(context.Background()))
}
