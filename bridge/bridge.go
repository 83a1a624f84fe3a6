package bridge

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/stardustlabs/walletbridge"
	"github.com/stardustlabs/walletbridge/log"
)

const commandName = "callAccountMethod"

// accountMethod names one operation and carries its data payload.
type accountMethod struct {
	Name string `json:"name"`
	Data any    `json:"data,omitempty"`
}

// commandPayload addresses a method to one account by index.
type commandPayload struct {
	AccountID uint32        `json:"accountId"`
	Method    accountMethod `json:"method"`
}

// commandEnvelope is the request wire form consumed by the engine.
type commandEnvelope struct {
	Cmd     string         `json:"cmd"`
	Payload commandPayload `json:"payload"`
}

// responseEnvelope is the response wire form produced by the engine, for
// success and error envelopes alike.
type responseEnvelope struct {
	Payload json.RawMessage `json:"payload"`
}

// Bridge dispatches account commands to one engine session. It is safe for
// concurrent use; the only state it holds is the session handle plus
// observability hooks.
type Bridge struct {
	engine Engine
	logger log.Logger
	tracer trace.Tracer
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger installs a logger for dispatch events. Default: no logging.
func WithLogger(logger log.Logger) Option {
	return func(b *Bridge) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithTracer installs a tracer for per-command spans. Default: no-op tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(b *Bridge) {
		if tracer != nil {
			b.tracer = tracer
		}
	}
}

// New creates a Bridge bound to an engine session.
func New(engine Engine, opts ...Option) *Bridge {
	b := &Bridge{
		engine: engine,
		logger: log.NewNop(),
		tracer: noop.NewTracerProvider().Tracer("walletbridge"),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// CallAccountMethod builds the command envelope for one account method,
// sends it, and returns the operation-specific payload of the success
// envelope. Error envelopes surface as EngineError with the detail
// preserved verbatim; anything else the engine does wrong surfaces as
// TransportError with the raw cause unchanged.
func (b *Bridge) CallAccountMethod(ctx context.Context, accountIndex uint32, method string, data any) (json.RawMessage, error) {
	commandID := uuid.NewString()

	ctx, span := b.tracer.Start(ctx, "walletbridge.callAccountMethod",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("wallet.method", method),
			attribute.Int64("wallet.account_index", int64(accountIndex)),
			attribute.String("wallet.command_id", commandID),
		),
	)
	defer span.End()

	message, err := json.Marshal(commandEnvelope{
		Cmd: commandName,
		Payload: commandPayload{
			AccountID: accountIndex,
			Method:    accountMethod{Name: method, Data: data},
		},
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())

		return nil, &walletbridge.TransportError{Method: method, Err: err}
	}

	b.logger.Log(ctx, log.LevelDebug, "dispatching account command",
		log.String("method", method),
		log.Uint32("account", accountIndex),
		log.String("command_id", commandID),
	)

	response, err := b.engine.Call(ctx, message)
	if err != nil {
		failure := b.decodeFailure(method, err)
		span.SetStatus(codes.Error, failure.Error())
		span.RecordError(failure)
		b.logger.Log(ctx, log.LevelWarn, "account command failed",
			log.String("method", method),
			log.Uint32("account", accountIndex),
			log.String("command_id", commandID),
			log.Err(failure),
		)

		return nil, failure
	}

	var envelope responseEnvelope
	if err := json.Unmarshal(response, &envelope); err != nil {
		span.SetStatus(codes.Error, err.Error())

		return nil, &walletbridge.TransportError{Method: method, Err: err}
	}

	span.SetStatus(codes.Ok, "")

	return envelope.Payload, nil
}

// decodeFailure classifies an engine call error. A rejection whose raw form
// parses as an error envelope becomes an EngineError carrying the payload
// detail verbatim; everything else stays a TransportError wrapping the raw
// cause unchanged, so no information is lost.
func (b *Bridge) decodeFailure(method string, err error) error {
	var raw json.RawMessage

	var rejection *Rejection
	if errors.As(err, &rejection) {
		raw = rejection.Raw
	} else {
		raw = json.RawMessage(err.Error())
	}

	var envelope responseEnvelope
	if jsonErr := json.Unmarshal(raw, &envelope); jsonErr != nil || envelope.Payload == nil {
		return &walletbridge.TransportError{Method: method, Err: err}
	}

	return &walletbridge.EngineError{Method: method, Detail: envelope.Payload}
}

// Destroy releases the engine session.
func (b *Bridge) Destroy(ctx context.Context) error {
	if err := b.engine.Destroy(ctx); err != nil {
		return &walletbridge.TransportError{Method: "destroy", Err: err}
	}

	return nil
}

// Listen forwards an event listener registration to the engine.
func (b *Bridge) Listen(eventTypes []string, fn func(event json.RawMessage)) error {
	if err := b.engine.Listen(eventTypes, fn); err != nil {
		return &walletbridge.TransportError{Method: "listen", Err: err}
	}

	return nil
}
