package primitive

import "encoding/json"

// PayloadType is the tag discriminating payload variants.
type PayloadType int

// Payload tags. Stable across versions; never reused.
const (
	PayloadTaggedData  PayloadType = 5
	PayloadTransaction PayloadType = 6
)

// Payload is a block or essence payload of any variant.
type Payload interface {
	PayloadType() PayloadType
}

var payloadDecoders = map[PayloadType]func(json.RawMessage) (Payload, error){
	PayloadTaggedData:  decodeTaggedDataPayload,
	PayloadTransaction: decodeTransactionPayload,
}

// DecodePayload reconstructs the payload variant whose tag matches the wire
// value. Unknown tags and layout mismatches fail with a DecodeError.
func DecodePayload(raw json.RawMessage) (Payload, error) {
	tag, err := peekType(raw, "payload")
	if err != nil {
		return nil, err
	}

	decode, ok := payloadDecoders[PayloadType(tag)]
	if !ok {
		return nil, unknownTag("payload", tag)
	}

	return decode(raw)
}

// TaggedDataPayload carries arbitrary hex-encoded data under a hex-encoded
// tag.
type TaggedDataPayload struct {
	Tag  string
	Data string
}

// PayloadType returns the tagged data tag.
func (p *TaggedDataPayload) PayloadType() PayloadType { return PayloadTaggedData }

type taggedDataPayloadJSON struct {
	Type int    `json:"type"`
	Tag  string `json:"tag,omitempty"`
	Data string `json:"data,omitempty"`
}

// MarshalJSON emits the tag plus the wire fields.
func (p *TaggedDataPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal(taggedDataPayloadJSON{
		Type: int(PayloadTaggedData),
		Tag:  p.Tag,
		Data: p.Data,
	})
}

func decodeTaggedDataPayload(raw json.RawMessage) (Payload, error) {
	var wire taggedDataPayloadJSON
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, decodeError("payload", int(PayloadTaggedData), "", err)
	}

	return &TaggedDataPayload{Tag: wire.Tag, Data: wire.Data}, nil
}

// TransactionPayload pairs an essence with the unlocks authorizing it. The
// unlock shapes belong to the engine and pass through opaquely.
type TransactionPayload struct {
	Essence TransactionEssence
	Unlocks []json.RawMessage
}

// PayloadType returns the transaction payload tag.
func (p *TransactionPayload) PayloadType() PayloadType { return PayloadTransaction }

type transactionPayloadJSON struct {
	Type    int               `json:"type"`
	Essence json.RawMessage   `json:"essence"`
	Unlocks []json.RawMessage `json:"unlocks"`
}

// MarshalJSON emits the tag plus the wire fields, nesting the essence
// recursively.
func (p *TransactionPayload) MarshalJSON() ([]byte, error) {
	essence, err := json.Marshal(p.Essence)
	if err != nil {
		return nil, err
	}

	return json.Marshal(transactionPayloadJSON{
		Type:    int(PayloadTransaction),
		Essence: essence,
		Unlocks: p.Unlocks,
	})
}

func decodeTransactionPayload(raw json.RawMessage) (Payload, error) {
	var wire transactionPayloadJSON
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, decodeError("payload", int(PayloadTransaction), "", err)
	}

	if len(wire.Essence) == 0 {
		return nil, decodeError("payload", int(PayloadTransaction), "essence", errMissingField)
	}

	essence, err := DecodeEssence(wire.Essence)
	if err != nil {
		return nil, err
	}

	return &TransactionPayload{Essence: essence, Unlocks: wire.Unlocks}, nil
}
