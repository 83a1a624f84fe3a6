package primitive

import "encoding/json"

// OutputType is the tag discriminating output variants.
type OutputType int

// Output tags. Stable across versions; never reused.
const (
	OutputTreasury OutputType = 2
	OutputBasic    OutputType = 3
	OutputAlias    OutputType = 4
	OutputFoundry  OutputType = 5
	OutputNFT      OutputType = 6
)

// Output is a transaction output of any variant.
type Output interface {
	OutputType() OutputType
}

// NativeToken is one native token id/amount pair held by an output. The
// amount stays in its hex wire form at this layer.
type NativeToken struct {
	ID     string `json:"id"`
	Amount string `json:"amount"`
}

// outputDecoders maps each registered output tag to its decode function.
var outputDecoders = map[OutputType]func(json.RawMessage) (Output, error){
	OutputTreasury: decodeTreasuryOutput,
	OutputBasic:    decodeBasicOutput,
	OutputAlias:    decodeAliasOutput,
	OutputFoundry:  decodeFoundryOutput,
	OutputNFT:      decodeNFTOutput,
}

// DecodeOutput reconstructs the output variant whose tag matches the wire
// value. Unknown tags and layout mismatches fail with a DecodeError.
func DecodeOutput(raw json.RawMessage) (Output, error) {
	tag, err := peekType(raw, "output")
	if err != nil {
		return nil, err
	}

	decode, ok := outputDecoders[OutputType(tag)]
	if !ok {
		return nil, unknownTag("output", tag)
	}

	return decode(raw)
}

// TreasuryOutput holds the treasury amount.
type TreasuryOutput struct {
	Amount string
}

// OutputType returns the treasury output tag.
func (o *TreasuryOutput) OutputType() OutputType { return OutputTreasury }

type treasuryOutputJSON struct {
	Type   int    `json:"type"`
	Amount string `json:"amount"`
}

// MarshalJSON emits the tag plus the wire fields.
func (o *TreasuryOutput) MarshalJSON() ([]byte, error) {
	return json.Marshal(treasuryOutputJSON{
		Type:   int(OutputTreasury),
		Amount: o.Amount,
	})
}

func decodeTreasuryOutput(raw json.RawMessage) (Output, error) {
	var wire treasuryOutputJSON
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, decodeError("output", int(OutputTreasury), "", err)
	}

	if wire.Amount == "" {
		return nil, decodeError("output", int(OutputTreasury), "amount", errMissingField)
	}

	return &TreasuryOutput{Amount: wire.Amount}, nil
}

// BasicOutput is the plain value output: an amount, optional native tokens,
// unlock conditions, and optional features.
type BasicOutput struct {
	Amount           string
	NativeTokens     []NativeToken
	UnlockConditions []UnlockCondition
	Features         []json.RawMessage
}

// OutputType returns the basic output tag.
func (o *BasicOutput) OutputType() OutputType { return OutputBasic }

type basicOutputJSON struct {
	Type             int               `json:"type"`
	Amount           string            `json:"amount"`
	NativeTokens     []NativeToken     `json:"nativeTokens,omitempty"`
	UnlockConditions []json.RawMessage `json:"unlockConditions"`
	Features         []json.RawMessage `json:"features,omitempty"`
}

// MarshalJSON emits the tag plus the wire fields, nesting unlock conditions
// recursively.
func (o *BasicOutput) MarshalJSON() ([]byte, error) {
	conditions, err := marshalUnlockConditions(o.UnlockConditions)
	if err != nil {
		return nil, err
	}

	return json.Marshal(basicOutputJSON{
		Type:             int(OutputBasic),
		Amount:           o.Amount,
		NativeTokens:     o.NativeTokens,
		UnlockConditions: conditions,
		Features:         o.Features,
	})
}

func decodeBasicOutput(raw json.RawMessage) (Output, error) {
	var wire basicOutputJSON
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, decodeError("output", int(OutputBasic), "", err)
	}

	if wire.Amount == "" {
		return nil, decodeError("output", int(OutputBasic), "amount", errMissingField)
	}

	conditions, err := decodeUnlockConditions(wire.UnlockConditions)
	if err != nil {
		return nil, err
	}

	return &BasicOutput{
		Amount:           wire.Amount,
		NativeTokens:     wire.NativeTokens,
		UnlockConditions: conditions,
		Features:         wire.Features,
	}, nil
}

// AliasOutput carries the state of an alias account on the ledger.
type AliasOutput struct {
	Amount            string
	NativeTokens      []NativeToken
	AliasID           string
	StateIndex        uint32
	StateMetadata     string
	FoundryCounter    uint32
	UnlockConditions  []UnlockCondition
	Features          []json.RawMessage
	ImmutableFeatures []json.RawMessage
}

// OutputType returns the alias output tag.
func (o *AliasOutput) OutputType() OutputType { return OutputAlias }

type aliasOutputJSON struct {
	Type              int               `json:"type"`
	Amount            string            `json:"amount"`
	NativeTokens      []NativeToken     `json:"nativeTokens,omitempty"`
	AliasID           string            `json:"aliasId"`
	StateIndex        uint32            `json:"stateIndex"`
	StateMetadata     string            `json:"stateMetadata,omitempty"`
	FoundryCounter    uint32            `json:"foundryCounter"`
	UnlockConditions  []json.RawMessage `json:"unlockConditions"`
	Features          []json.RawMessage `json:"features,omitempty"`
	ImmutableFeatures []json.RawMessage `json:"immutableFeatures,omitempty"`
}

// MarshalJSON emits the tag plus the wire fields.
func (o *AliasOutput) MarshalJSON() ([]byte, error) {
	conditions, err := marshalUnlockConditions(o.UnlockConditions)
	if err != nil {
		return nil, err
	}

	return json.Marshal(aliasOutputJSON{
		Type:              int(OutputAlias),
		Amount:            o.Amount,
		NativeTokens:      o.NativeTokens,
		AliasID:           o.AliasID,
		StateIndex:        o.StateIndex,
		StateMetadata:     o.StateMetadata,
		FoundryCounter:    o.FoundryCounter,
		UnlockConditions:  conditions,
		Features:          o.Features,
		ImmutableFeatures: o.ImmutableFeatures,
	})
}

func decodeAliasOutput(raw json.RawMessage) (Output, error) {
	var wire aliasOutputJSON
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, decodeError("output", int(OutputAlias), "", err)
	}

	if wire.Amount == "" {
		return nil, decodeError("output", int(OutputAlias), "amount", errMissingField)
	}

	if wire.AliasID == "" {
		return nil, decodeError("output", int(OutputAlias), "aliasId", errMissingField)
	}

	conditions, err := decodeUnlockConditions(wire.UnlockConditions)
	if err != nil {
		return nil, err
	}

	return &AliasOutput{
		Amount:            wire.Amount,
		NativeTokens:      wire.NativeTokens,
		AliasID:           wire.AliasID,
		StateIndex:        wire.StateIndex,
		StateMetadata:     wire.StateMetadata,
		FoundryCounter:    wire.FoundryCounter,
		UnlockConditions:  conditions,
		Features:          wire.Features,
		ImmutableFeatures: wire.ImmutableFeatures,
	}, nil
}

// FoundryOutput controls the supply of the native tokens it minted. The
// token scheme is carried opaquely; its shape belongs to the engine.
type FoundryOutput struct {
	Amount            string
	NativeTokens      []NativeToken
	SerialNumber      uint32
	TokenScheme       json.RawMessage
	UnlockConditions  []UnlockCondition
	ImmutableFeatures []json.RawMessage
}

// OutputType returns the foundry output tag.
func (o *FoundryOutput) OutputType() OutputType { return OutputFoundry }

type foundryOutputJSON struct {
	Type              int               `json:"type"`
	Amount            string            `json:"amount"`
	NativeTokens      []NativeToken     `json:"nativeTokens,omitempty"`
	SerialNumber      uint32            `json:"serialNumber"`
	TokenScheme       json.RawMessage   `json:"tokenScheme"`
	UnlockConditions  []json.RawMessage `json:"unlockConditions"`
	ImmutableFeatures []json.RawMessage `json:"immutableFeatures,omitempty"`
}

// MarshalJSON emits the tag plus the wire fields.
func (o *FoundryOutput) MarshalJSON() ([]byte, error) {
	conditions, err := marshalUnlockConditions(o.UnlockConditions)
	if err != nil {
		return nil, err
	}

	return json.Marshal(foundryOutputJSON{
		Type:              int(OutputFoundry),
		Amount:            o.Amount,
		NativeTokens:      o.NativeTokens,
		SerialNumber:      o.SerialNumber,
		TokenScheme:       o.TokenScheme,
		UnlockConditions:  conditions,
		ImmutableFeatures: o.ImmutableFeatures,
	})
}

func decodeFoundryOutput(raw json.RawMessage) (Output, error) {
	var wire foundryOutputJSON
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, decodeError("output", int(OutputFoundry), "", err)
	}

	if wire.Amount == "" {
		return nil, decodeError("output", int(OutputFoundry), "amount", errMissingField)
	}

	if len(wire.TokenScheme) == 0 {
		return nil, decodeError("output", int(OutputFoundry), "tokenScheme", errMissingField)
	}

	conditions, err := decodeUnlockConditions(wire.UnlockConditions)
	if err != nil {
		return nil, err
	}

	return &FoundryOutput{
		Amount:            wire.Amount,
		NativeTokens:      wire.NativeTokens,
		SerialNumber:      wire.SerialNumber,
		TokenScheme:       wire.TokenScheme,
		UnlockConditions:  conditions,
		ImmutableFeatures: wire.ImmutableFeatures,
	}, nil
}

// NFTOutput carries a non-fungible token.
type NFTOutput struct {
	Amount            string
	NativeTokens      []NativeToken
	NFTID             string
	UnlockConditions  []UnlockCondition
	Features          []json.RawMessage
	ImmutableFeatures []json.RawMessage
}

// OutputType returns the NFT output tag.
func (o *NFTOutput) OutputType() OutputType { return OutputNFT }

type nftOutputJSON struct {
	Type              int               `json:"type"`
	Amount            string            `json:"amount"`
	NativeTokens      []NativeToken     `json:"nativeTokens,omitempty"`
	NFTID             string            `json:"nftId"`
	UnlockConditions  []json.RawMessage `json:"unlockConditions"`
	Features          []json.RawMessage `json:"features,omitempty"`
	ImmutableFeatures []json.RawMessage `json:"immutableFeatures,omitempty"`
}

// MarshalJSON emits the tag plus the wire fields.
func (o *NFTOutput) MarshalJSON() ([]byte, error) {
	conditions, err := marshalUnlockConditions(o.UnlockConditions)
	if err != nil {
		return nil, err
	}

	return json.Marshal(nftOutputJSON{
		Type:              int(OutputNFT),
		Amount:            o.Amount,
		NativeTokens:      o.NativeTokens,
		NFTID:             o.NFTID,
		UnlockConditions:  conditions,
		Features:          o.Features,
		ImmutableFeatures: o.ImmutableFeatures,
	})
}

func decodeNFTOutput(raw json.RawMessage) (Output, error) {
	var wire nftOutputJSON
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, decodeError("output", int(OutputNFT), "", err)
	}

	if wire.Amount == "" {
		return nil, decodeError("output", int(OutputNFT), "amount", errMissingField)
	}

	if wire.NFTID == "" {
		return nil, decodeError("output", int(OutputNFT), "nftId", errMissingField)
	}

	conditions, err := decodeUnlockConditions(wire.UnlockConditions)
	if err != nil {
		return nil, err
	}

	return &NFTOutput{
		Amount:            wire.Amount,
		NativeTokens:      wire.NativeTokens,
		NFTID:             wire.NFTID,
		UnlockConditions:  conditions,
		Features:          wire.Features,
		ImmutableFeatures: wire.ImmutableFeatures,
	}, nil
}

// marshalUnlockConditions serializes a polymorphic container
// element-by-element, preserving order.
func marshalUnlockConditions(conditions []UnlockCondition) ([]json.RawMessage, error) {
	if conditions == nil {
		return nil, nil
	}

	raws := make([]json.RawMessage, 0, len(conditions))

	for _, condition := range conditions {
		raw, err := json.Marshal(condition)
		if err != nil {
			return nil, err
		}

		raws = append(raws, raw)
	}

	return raws, nil
}
