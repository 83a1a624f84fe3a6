package bridge

import (
	"context"
	"encoding/json"
	"fmt"
)

// Engine is the execution component behind the command protocol. Its
// surface mirrors the message handler it binds to: one call per command,
// a listener registration for emitted events, and a destroy.
type Engine interface {
	// Call sends one serialized command message and returns the engine's
	// raw response envelope. A rejected command is reported as an error,
	// conventionally a *Rejection carrying the raw error envelope.
	Call(ctx context.Context, message json.RawMessage) (json.RawMessage, error)

	// Listen registers a callback for the given event types. An empty
	// slice subscribes to every type. The engine invokes fn sequentially
	// per registration.
	Listen(eventTypes []string, fn func(event json.RawMessage)) error

	// Destroy releases the engine session. Further calls fail.
	Destroy(ctx context.Context) error
}

// Rejection is the error an Engine returns when it processed a command and
// produced an error envelope. Raw holds the envelope exactly as the engine
// serialized it.
type Rejection struct {
	Raw json.RawMessage
}

// Error returns the raw envelope text.
func (r *Rejection) Error() string {
	if r == nil {
		return "engine rejection"
	}

	return fmt.Sprintf("engine rejection: %s", r.Raw)
}
