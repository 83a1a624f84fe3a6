// Package log provides the structured logging facade used across the wallet
// bridge library.
//
// The library never logs unless the host application installs a Logger; the
// default everywhere is the no-op implementation returned by NewNop. NewZap
// adapts a zap.Logger, appending trace and span ids when the context carries
// an active OpenTelemetry span so log lines correlate with dispatch spans.
package log
