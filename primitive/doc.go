// Package primitive models the tag-discriminated ledger primitive families:
// inputs, outputs, unlock conditions, payloads, and transaction essences.
//
// Every wire value carries a small integer tag in its "type" field; the tag
// uniquely determines the variant's field layout. Each family keeps a
// registry mapping tag to decode function, and decoding dispatches through
// it. Unknown tags are rejected with a DecodeError rather than coerced to a
// default variant; forward compatibility is explicitly not provided by this
// layer. Encoding emits the tag plus the variant's declared fields with wire
// names the engine's schema expects.
//
// Amounts inside primitives stay in their string wire form here; the amount
// package owns numeric normalization.
package primitive
