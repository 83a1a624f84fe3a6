package log

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap.Logger to the Logger interface.
//
// It intentionally does not expose printf or fatal helpers; the library only
// emits structured events.
type ZapLogger struct {
	logger *zap.Logger
}

// Compile-time assertion: *ZapLogger implements Logger.
var _ Logger = (*ZapLogger)(nil)

// NewZap wraps an existing zap.Logger. A nil argument yields a logger backed
// by zap.NewNop, so the zero case never panics.
func NewZap(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger}
}

func (l *ZapLogger) must() *zap.Logger {
	if l == nil || l.logger == nil {
		return zap.NewNop()
	}

	return l.logger
}

// Log dispatches to the appropriate zap level. If ctx carries an active
// OpenTelemetry span, trace_id and span_id are appended so logs correlate
// with dispatch spans.
func (l *ZapLogger) Log(ctx context.Context, level Level, msg string, fields ...Field) {
	zapFields := fieldsToZap(fields)

	if ctx != nil {
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			zapFields = append(zapFields,
				zap.String("trace_id", sc.TraceID().String()),
				zap.String("span_id", sc.SpanID().String()),
			)
		}
	}

	switch level {
	case LevelDebug:
		l.must().Debug(msg, zapFields...)
	case LevelInfo:
		l.must().Info(msg, zapFields...)
	case LevelWarn:
		l.must().Warn(msg, zapFields...)
	case LevelError:
		l.must().Error(msg, zapFields...)
	default:
		l.must().Info(msg, zapFields...)
	}
}

// With returns a child logger with additional structured fields.
//
//nolint:ireturn
func (l *ZapLogger) With(fields ...Field) Logger {
	return &ZapLogger{logger: l.must().With(fieldsToZap(fields)...)}
}

// Enabled reports whether the logger would emit a log at the given level.
func (l *ZapLogger) Enabled(level Level) bool {
	return l.must().Core().Enabled(levelToZap(level))
}

// Sync flushes buffered logs, respecting context cancellation.
func (l *ZapLogger) Sync(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)

	go func() {
		done <- l.must().Sync()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

func fieldsToZap(fields []Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.Value.(error); ok && f.Key == "error" {
			zapFields = append(zapFields, zap.Error(err))
			continue
		}

		zapFields = append(zapFields, zap.Any(f.Key, f.Value))
	}

	return zapFields
}

func levelToZap(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
