// Package event delivers engine-emitted wallet events through explicit
// subscriptions instead of ambient callbacks.
//
// A Hub fans each published event out to every subscription whose type set
// matches. Delivery order is FIFO per subscription. A subscription whose
// buffer is full drops the event and counts it; the engine callback is never
// blocked by a slow consumer. Teardown is explicit via Subscription.Close.
package event
