//go:build unit

package walletbridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorsUnwrapToSentinels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "decode error",
			err:      &DecodeError{Family: "output", Tag: 9},
			sentinel: ErrDecode,
		},
		{
			name:     "format error",
			err:      &FormatError{Value: "0xzz", Want: "0x-prefixed hex"},
			sentinel: ErrFormat,
		},
		{
			name:     "engine error",
			err:      &EngineError{Method: "sendAmount", Detail: json.RawMessage(`{"code":"InsufficientFunds"}`)},
			sentinel: ErrEngine,
		},
		{
			name:     "transport error",
			err:      &TransportError{Method: "getBalance", Err: errors.New("engine gone")},
			sentinel: ErrTransport,
		},
		{
			name:     "not included error",
			err:      &NotIncludedError{TransactionID: "txA", Attempts: 2},
			sentinel: ErrNotIncluded,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.ErrorIs(t, tt.err, tt.sentinel)
			require.ErrorIs(t, fmt.Errorf("wrapped: %w", tt.err), tt.sentinel)
		})
	}
}

func TestTransportErrorPreservesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := &TransportError{Method: "syncAccount", Err: cause}

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "syncAccount")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestEngineErrorKeepsDetailVerbatim(t *testing.T) {
	t.Parallel()

	detail := json.RawMessage(`{"code":"InsufficientFunds"}`)
	err := &EngineError{Detail: detail}

	var engineErr *EngineError

	require.ErrorAs(t, fmt.Errorf("op failed: %w", err), &engineErr)
	assert.JSONEq(t, `{"code":"InsufficientFunds"}`, string(engineErr.Detail))
}

func TestNotIncludedErrorMessage(t *testing.T) {
	t.Parallel()

	err := &NotIncludedError{TransactionID: "txA", Attempts: 40}
	assert.Equal(t, "transaction txA not included after 40 attempts", err.Error())
}
