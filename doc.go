// Package walletbridge provides the shared error taxonomy for the wallet
// bridge client library.
//
// The library models ledger primitives (inputs, outputs, payloads,
// transaction essences), dispatches typed account commands to an execution
// engine, and drives prepare/sign/submit/confirm transaction pipelines.
// Functionality lives in subpackages:
//
//   - primitive: tag-discriminated ledger primitive families
//   - amount: unbounded token amounts and balance normalization
//   - bridge: the command envelope and engine dispatch layer
//   - account: one façade method per account-level operation
//   - wallet: the manager owning the engine session handle
//   - event: FIFO subscriptions for engine-emitted events
//
// This root package is intentionally dependency-light; it defines only the
// error types every subpackage reports through.
package walletbridge
