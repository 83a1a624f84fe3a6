package primitive

import "encoding/json"

// InputType is the tag discriminating input variants.
type InputType int

// Input tags. Stable across versions; never reused.
const (
	InputUTXO     InputType = 0
	InputTreasury InputType = 1
)

// Input is a transaction input of any variant.
type Input interface {
	InputType() InputType
}

// inputDecoders maps each registered input tag to its decode function.
var inputDecoders = map[InputType]func(json.RawMessage) (Input, error){
	InputUTXO:     decodeUTXOInput,
	InputTreasury: decodeTreasuryInput,
}

// DecodeInput reconstructs the input variant whose tag matches the wire
// value. Unknown tags and layout mismatches fail with a DecodeError.
func DecodeInput(raw json.RawMessage) (Input, error) {
	tag, err := peekType(raw, "input")
	if err != nil {
		return nil, err
	}

	decode, ok := inputDecoders[InputType(tag)]
	if !ok {
		return nil, unknownTag("input", tag)
	}

	return decode(raw)
}

// UTXOInput references one output of a prior transaction.
type UTXOInput struct {
	TransactionID          string
	TransactionOutputIndex uint16
}

// InputType returns the UTXO input tag.
func (in *UTXOInput) InputType() InputType { return InputUTXO }

type utxoInputJSON struct {
	Type                   int    `json:"type"`
	TransactionID          string `json:"transactionId"`
	TransactionOutputIndex uint16 `json:"transactionOutputIndex"`
}

// MarshalJSON emits the tag plus the wire fields.
func (in *UTXOInput) MarshalJSON() ([]byte, error) {
	return json.Marshal(utxoInputJSON{
		Type:                   int(InputUTXO),
		TransactionID:          in.TransactionID,
		TransactionOutputIndex: in.TransactionOutputIndex,
	})
}

func decodeUTXOInput(raw json.RawMessage) (Input, error) {
	var wire utxoInputJSON
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, decodeError("input", int(InputUTXO), "", err)
	}

	if wire.TransactionID == "" {
		return nil, decodeError("input", int(InputUTXO), "transactionId", errMissingField)
	}

	return &UTXOInput{
		TransactionID:          wire.TransactionID,
		TransactionOutputIndex: wire.TransactionOutputIndex,
	}, nil
}

// TreasuryInput references the treasury via the milestone that last touched
// it.
type TreasuryInput struct {
	MilestoneID string
}

// InputType returns the treasury input tag.
func (in *TreasuryInput) InputType() InputType { return InputTreasury }

type treasuryInputJSON struct {
	Type        int    `json:"type"`
	MilestoneID string `json:"milestoneId"`
}

// MarshalJSON emits the tag plus the wire fields.
func (in *TreasuryInput) MarshalJSON() ([]byte, error) {
	return json.Marshal(treasuryInputJSON{
		Type:        int(InputTreasury),
		MilestoneID: in.MilestoneID,
	})
}

func decodeTreasuryInput(raw json.RawMessage) (Input, error) {
	var wire treasuryInputJSON
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, decodeError("input", int(InputTreasury), "", err)
	}

	if wire.MilestoneID == "" {
		return nil, decodeError("input", int(InputTreasury), "milestoneId", errMissingField)
	}

	return &TreasuryInput{MilestoneID: wire.MilestoneID}, nil
}
