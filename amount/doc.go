// Package amount models non-negative token quantities of arbitrary
// magnitude.
//
// Two wire representations exist: a decimal string in request payloads and a
// 0x-prefixed big-endian hex string in response payloads. Conversions are
// exact in both directions; quantities are never routed through
// limited-precision floating types. The Amount value type always marshals to
// the decimal-string request form, while DecodeBalance normalizes every
// amount field of an engine balance payload to a big.Int.
package amount
