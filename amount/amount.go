package amount

import (
	"encoding/json"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/stardustlabs/walletbridge"
)

var (
	hexPattern     = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)
	decimalPattern = regexp.MustCompile(`^[0-9]+$`)
)

// HexToInt converts a 0x-prefixed hex string to an unbounded integer.
// It fails with a FormatError on anything not matching 0x[0-9a-f]+
// (case-insensitive).
func HexToInt(s string) (*big.Int, error) {
	if !hexPattern.MatchString(s) {
		return nil, &walletbridge.FormatError{Value: s, Want: "0x-prefixed hex string"}
	}

	n, ok := new(big.Int).SetString(s[2:], 16)
	if !ok {
		return nil, &walletbridge.FormatError{Value: s, Want: "0x-prefixed hex string"}
	}

	return n, nil
}

// IntToHex converts a non-negative unbounded integer to its canonical hex
// wire form: lowercase digits, no leading zeros, "0x0" for zero.
func IntToHex(n *big.Int) (string, error) {
	if n == nil || n.Sign() < 0 {
		return "", &walletbridge.FormatError{Value: fmt.Sprint(n), Want: "non-negative integer"}
	}

	return "0x" + n.Text(16), nil
}

// DecimalToInt converts a decimal string to an unbounded integer.
// It fails with a FormatError on anything not matching [0-9]+.
func DecimalToInt(s string) (*big.Int, error) {
	if !decimalPattern.MatchString(s) {
		return nil, &walletbridge.FormatError{Value: s, Want: "decimal string"}
	}

	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, &walletbridge.FormatError{Value: s, Want: "decimal string"}
	}

	return n, nil
}

// IntToDecimal converts a non-negative unbounded integer to its canonical
// decimal wire form.
func IntToDecimal(n *big.Int) (string, error) {
	if n == nil || n.Sign() < 0 {
		return "", &walletbridge.FormatError{Value: fmt.Sprint(n), Want: "non-negative integer"}
	}

	return n.Text(10), nil
}

// parseWire accepts either wire representation of an amount. Balance
// payloads carry hex for coin and token amounts and decimal for storage
// deposit requirements; both normalize to the same integer domain.
func parseWire(s string) (*big.Int, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return HexToInt(s)
	}

	return DecimalToInt(s)
}

// Amount is an immutable non-negative integer token quantity of arbitrary
// magnitude. The zero value is the amount 0.
type Amount struct {
	value *big.Int
}

// FromInt builds an Amount from an unbounded integer. The integer is copied;
// later mutation of n does not affect the Amount. Negative or nil values
// fail with a FormatError.
func FromInt(n *big.Int) (Amount, error) {
	if n == nil || n.Sign() < 0 {
		return Amount{}, &walletbridge.FormatError{Value: fmt.Sprint(n), Want: "non-negative integer"}
	}

	return Amount{value: new(big.Int).Set(n)}, nil
}

// FromUint64 builds an Amount from a machine integer.
func FromUint64(n uint64) Amount {
	return Amount{value: new(big.Int).SetUint64(n)}
}

// Parse builds an Amount from either wire representation: a decimal string
// or a 0x-prefixed hex string.
func Parse(s string) (Amount, error) {
	n, err := parseWire(s)
	if err != nil {
		return Amount{}, err
	}

	return Amount{value: n}, nil
}

// MustParse is Parse for statically known inputs; it panics on malformed
// strings.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return a
}

// Int returns a copy of the underlying integer.
func (a Amount) Int() *big.Int {
	if a.value == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(a.value)
}

// IsZero reports whether the amount is 0.
func (a Amount) IsZero() bool {
	return a.value == nil || a.value.Sign() == 0
}

// Cmp compares two amounts, returning -1, 0, or 1.
func (a Amount) Cmp(other Amount) int {
	return a.Int().Cmp(other.Int())
}

// String returns the decimal wire form.
func (a Amount) String() string {
	if a.value == nil {
		return "0"
	}

	return a.value.Text(10)
}

// MarshalJSON emits the decimal-string request wire form. Every amount sent
// to the engine goes through here, so integers supplied by the caller always
// reach the wire as decimal strings.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts a decimal string, a 0x-prefixed hex string, or a
// bare JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Bare number: the textual token is already its decimal form.
		s = string(data)
	}

	n, err := parseWire(s)
	if err != nil {
		return err
	}

	a.value = n

	return nil
}
