// Package wallet is the top-level entry point: it owns one engine session
// and hands out account façades and event subscriptions bound to it.
package wallet
