// Package bridge turns typed account operations into command messages,
// dispatches them to the execution engine, and hands back the
// operation-specific response payload.
//
// The engine is a black box reached only through the command protocol: it
// owns cryptographic signing, UTXO selection, node communication, and all
// mutable account state. The bridge holds nothing between calls except the
// engine handle; concurrent calls are allowed and no ordering is imposed
// between them. Once a command is sent it runs to completion or failure
// inside the engine — the caller's context gates only the local await.
package bridge
