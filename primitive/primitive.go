package primitive

import (
	"encoding/json"
	"errors"

	"github.com/stardustlabs/walletbridge"
)

// errMissingField marks a required wire field that was absent or empty.
var errMissingField = errors.New("required field missing")

// peekType extracts the integer tag from a wire value without committing to
// a variant layout.
func peekType(raw json.RawMessage, family string) (int, error) {
	var probe struct {
		Type *int `json:"type"`
	}

	if err := json.Unmarshal(raw, &probe); err != nil {
		return 0, &walletbridge.DecodeError{Family: family, Field: "type", Err: err}
	}

	if probe.Type == nil {
		return 0, &walletbridge.DecodeError{Family: family, Field: "type", Err: errMissingField}
	}

	return *probe.Type, nil
}

// decodeError builds the family-scoped error for a wire value whose layout
// did not match the variant the tag selected.
func decodeError(family string, tag int, field string, err error) error {
	return &walletbridge.DecodeError{Family: family, Tag: tag, Field: field, Err: err}
}

// unknownTag builds the rejection for a tag with no registered variant.
func unknownTag(family string, tag int) error {
	return &walletbridge.DecodeError{Family: family, Tag: tag}
}
