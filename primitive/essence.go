package primitive

import "encoding/json"

// EssenceType is the tag discriminating transaction essence variants.
type EssenceType int

// Essence tags. Stable across versions; never reused.
const (
	EssenceRegular EssenceType = 1
)

// TransactionEssence is the unsigned body of a transaction.
type TransactionEssence interface {
	EssenceType() EssenceType
}

var essenceDecoders map[EssenceType]func(json.RawMessage) (TransactionEssence, error)

func init() {
	essenceDecoders = map[EssenceType]func(json.RawMessage) (TransactionEssence, error){
		EssenceRegular: decodeRegularEssence,
	}
}

// DecodeEssence reconstructs the essence variant whose tag matches the wire
// value. Unknown tags and layout mismatches fail with a DecodeError.
func DecodeEssence(raw json.RawMessage) (TransactionEssence, error) {
	tag, err := peekType(raw, "essence")
	if err != nil {
		return nil, err
	}

	decode, ok := essenceDecoders[EssenceType(tag)]
	if !ok {
		return nil, unknownTag("essence", tag)
	}

	return decode(raw)
}

// RegularTransactionEssence holds a network identifier, a commitment over
// the inputs, ordered inputs and outputs, and an optional payload. Input and
// output order is semantically significant: it feeds the commitment and the
// transaction identifier, so both sequences are preserved exactly as
// supplied.
type RegularTransactionEssence struct {
	NetworkID        string
	InputsCommitment string
	Inputs           []Input
	Outputs          []Output
	Payload          Payload
}

// EssenceType returns the regular essence tag.
func (e *RegularTransactionEssence) EssenceType() EssenceType { return EssenceRegular }

type regularEssenceJSON struct {
	Type             int               `json:"type"`
	NetworkID        string            `json:"networkId"`
	InputsCommitment string            `json:"inputsCommitment"`
	Inputs           []json.RawMessage `json:"inputs"`
	Outputs          []json.RawMessage `json:"outputs"`
	Payload          json.RawMessage   `json:"payload,omitempty"`
}

// MarshalJSON emits the tag plus the wire fields, nesting inputs, outputs,
// and the optional payload recursively in their supplied order.
func (e *RegularTransactionEssence) MarshalJSON() ([]byte, error) {
	wire := regularEssenceJSON{
		Type:             int(EssenceRegular),
		NetworkID:        e.NetworkID,
		InputsCommitment: e.InputsCommitment,
		Inputs:           make([]json.RawMessage, 0, len(e.Inputs)),
		Outputs:          make([]json.RawMessage, 0, len(e.Outputs)),
	}

	for _, input := range e.Inputs {
		raw, err := json.Marshal(input)
		if err != nil {
			return nil, err
		}

		wire.Inputs = append(wire.Inputs, raw)
	}

	for _, output := range e.Outputs {
		raw, err := json.Marshal(output)
		if err != nil {
			return nil, err
		}

		wire.Outputs = append(wire.Outputs, raw)
	}

	if e.Payload != nil {
		raw, err := json.Marshal(e.Payload)
		if err != nil {
			return nil, err
		}

		wire.Payload = raw
	}

	return json.Marshal(wire)
}

func decodeRegularEssence(raw json.RawMessage) (TransactionEssence, error) {
	var wire regularEssenceJSON
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, decodeError("essence", int(EssenceRegular), "", err)
	}

	if wire.NetworkID == "" {
		return nil, decodeError("essence", int(EssenceRegular), "networkId", errMissingField)
	}

	if wire.InputsCommitment == "" {
		return nil, decodeError("essence", int(EssenceRegular), "inputsCommitment", errMissingField)
	}

	essence := &RegularTransactionEssence{
		NetworkID:        wire.NetworkID,
		InputsCommitment: wire.InputsCommitment,
	}

	for _, rawInput := range wire.Inputs {
		input, err := DecodeInput(rawInput)
		if err != nil {
			return nil, err
		}

		essence.Inputs = append(essence.Inputs, input)
	}

	for _, rawOutput := range wire.Outputs {
		output, err := DecodeOutput(rawOutput)
		if err != nil {
			return nil, err
		}

		essence.Outputs = append(essence.Outputs, output)
	}

	if len(wire.Payload) != 0 && string(wire.Payload) != "null" {
		payload, err := DecodePayload(wire.Payload)
		if err != nil {
			return nil, err
		}

		essence.Payload = payload
	}

	return essence, nil
}
