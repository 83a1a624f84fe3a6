// Package account exposes one method per account-level capability: address
// and balance queries, output and transaction listing, prepared monetary
// operations (send, mint, burn, consolidate, vote), the
// sign/submit/confirm pipeline, and participation event management.
//
// Every method follows the same path: normalize caller-supplied amounts to
// their decimal wire form, build the operation's data payload, dispatch it
// through the bridge bound to this account's index, and decode the response
// into the declared return type. Operations that yield engine-prepared
// transaction data return a PreparedTransaction bound to the account, which
// feeds the signing pipeline.
package account
