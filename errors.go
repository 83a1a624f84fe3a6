package walletbridge

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for the five failure classes. Typed errors below unwrap to
// these, so callers can classify with errors.Is without losing detail.
var (
	// ErrDecode indicates an unknown or malformed ledger-primitive tag or field.
	ErrDecode = errors.New("ledger primitive decode failed")

	// ErrFormat indicates a malformed hex or decimal numeric string.
	ErrFormat = errors.New("numeric format invalid")

	// ErrEngine indicates the engine returned an error envelope.
	ErrEngine = errors.New("engine rejected command")

	// ErrTransport indicates the engine was unreachable or its response
	// could not be parsed.
	ErrTransport = errors.New("engine transport failed")

	// ErrNotIncluded indicates retry attempts were exhausted before the
	// network included the transaction.
	ErrNotIncluded = errors.New("transaction not included")
)

// DecodeError reports a ledger-primitive value that could not be
// reconstructed: an unregistered tag, a missing required field, or a field
// whose JSON type does not match the variant's layout.
type DecodeError struct {
	Family string
	Tag    int
	Field  string
	Err    error
}

// Error returns the formatted decode failure message.
func (e *DecodeError) Error() string {
	switch {
	case e == nil:
		return ErrDecode.Error()
	case e.Field != "":
		return fmt.Sprintf("decode %s: field %q: %v", e.Family, e.Field, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("decode %s: %v", e.Family, e.Err)
	default:
		return fmt.Sprintf("decode %s: unknown tag %d", e.Family, e.Tag)
	}
}

// Unwrap returns the sentinel decode error for errors.Is.
func (e *DecodeError) Unwrap() error { return ErrDecode }

// FormatError reports a numeric string that does not match the expected
// decimal or hex wire form, or an amount outside the non-negative domain.
type FormatError struct {
	Value string
	Want  string
}

// Error returns the formatted numeric failure message.
func (e *FormatError) Error() string {
	if e == nil {
		return ErrFormat.Error()
	}

	return fmt.Sprintf("invalid amount %q: want %s", e.Value, e.Want)
}

// Unwrap returns the sentinel format error for errors.Is.
func (e *FormatError) Unwrap() error { return ErrFormat }

// EngineError carries the error detail from an engine error envelope,
// preserved verbatim as the engine serialized it.
type EngineError struct {
	Method string
	Detail json.RawMessage
}

// Error returns the engine failure message including the raw detail.
func (e *EngineError) Error() string {
	if e == nil {
		return ErrEngine.Error()
	}

	if e.Method == "" {
		return fmt.Sprintf("engine error: %s", e.Detail)
	}

	return fmt.Sprintf("engine error on %s: %s", e.Method, e.Detail)
}

// Unwrap returns the sentinel engine error for errors.Is.
func (e *EngineError) Unwrap() error { return ErrEngine }

// TransportError wraps a failure to reach the engine or to parse what it
// returned. The underlying error is preserved unchanged.
type TransportError struct {
	Method string
	Err    error
}

// Error returns the transport failure message.
func (e *TransportError) Error() string {
	if e == nil {
		return ErrTransport.Error()
	}

	if e.Method == "" {
		return fmt.Sprintf("engine transport: %v", e.Err)
	}

	return fmt.Sprintf("engine transport on %s: %v", e.Method, e.Err)
}

// Unwrap returns the wrapped cause so callers can reach both the sentinel
// and the raw engine error.
func (e *TransportError) Unwrap() []error {
	if e == nil || e.Err == nil {
		return []error{ErrTransport}
	}

	return []error{ErrTransport, e.Err}
}

// NotIncludedError reports that the inclusion-retry loop exhausted its
// attempts without the network including the transaction.
type NotIncludedError struct {
	TransactionID string
	Attempts      int
}

// Error returns the inclusion failure message.
func (e *NotIncludedError) Error() string {
	if e == nil {
		return ErrNotIncluded.Error()
	}

	return fmt.Sprintf("transaction %s not included after %d attempts", e.TransactionID, e.Attempts)
}

// Unwrap returns the sentinel inclusion error for errors.Is.
func (e *NotIncludedError) Unwrap() error { return ErrNotIncluded }
