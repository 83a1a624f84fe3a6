package account

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stardustlabs/walletbridge"
)

// Defaults applied when the caller leaves interval or maxAttempts zero.
const (
	DefaultRetryInterval = 5 * time.Second
	DefaultMaxAttempts   = 40
)

type retryData struct {
	TransactionID string `json:"transactionId"`
	Interval      int64  `json:"interval"`
}

// RetryTransactionUntilIncluded drives a submitted transaction to
// inclusion. Each attempt asks the engine to check, promote, or reattach
// the transaction, forwarding the interval; scheduling, backoff, and
// reattachment live entirely in the engine. An attempt answers either the
// including block's id or null while the transaction is still pending.
// When every attempt answers null the operation fails with a
// NotIncludedError; engine and transport failures propagate immediately
// and are not retried.
func (a *Account) RetryTransactionUntilIncluded(ctx context.Context, transactionID string, interval time.Duration, maxAttempts int) (string, error) {
	if interval <= 0 {
		interval = DefaultRetryInterval
	}

	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	data := retryData{
		TransactionID: transactionID,
		Interval:      interval.Milliseconds(),
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		payload, err := a.call(ctx, "retryTransactionUntilIncluded", data)
		if err != nil {
			return "", err
		}

		var blockID *string
		if err := json.Unmarshal(payload, &blockID); err != nil {
			return "", &walletbridge.TransportError{Method: "retryTransactionUntilIncluded", Err: err}
		}

		if blockID != nil && *blockID != "" {
			return *blockID, nil
		}
	}

	return "", &walletbridge.NotIncludedError{TransactionID: transactionID, Attempts: maxAttempts}
}
