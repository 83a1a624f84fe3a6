package primitive

import "encoding/json"

// UnlockConditionType is the tag discriminating unlock condition variants.
type UnlockConditionType int

// Unlock condition tags. Stable across versions; never reused.
const (
	UnlockConditionAddress               UnlockConditionType = 0
	UnlockConditionStorageDepositReturn  UnlockConditionType = 1
	UnlockConditionTimelock              UnlockConditionType = 2
	UnlockConditionExpiration            UnlockConditionType = 3
	UnlockConditionStateControllerAddr   UnlockConditionType = 4
	UnlockConditionGovernorAddress       UnlockConditionType = 5
	UnlockConditionImmutableAliasAddress UnlockConditionType = 6
)

// UnlockCondition gates how and when an output can be consumed.
type UnlockCondition interface {
	UnlockConditionType() UnlockConditionType
}

var unlockConditionDecoders = map[UnlockConditionType]func(json.RawMessage) (UnlockCondition, error){
	UnlockConditionAddress:               decodeAddressCondition(UnlockConditionAddress),
	UnlockConditionStorageDepositReturn:  decodeStorageDepositReturnCondition,
	UnlockConditionTimelock:              decodeTimelockCondition,
	UnlockConditionExpiration:            decodeExpirationCondition,
	UnlockConditionStateControllerAddr:   decodeAddressCondition(UnlockConditionStateControllerAddr),
	UnlockConditionGovernorAddress:       decodeAddressCondition(UnlockConditionGovernorAddress),
	UnlockConditionImmutableAliasAddress: decodeAddressCondition(UnlockConditionImmutableAliasAddress),
}

// DecodeUnlockCondition reconstructs the unlock condition variant whose tag
// matches the wire value.
func DecodeUnlockCondition(raw json.RawMessage) (UnlockCondition, error) {
	tag, err := peekType(raw, "unlockCondition")
	if err != nil {
		return nil, err
	}

	decode, ok := unlockConditionDecoders[UnlockConditionType(tag)]
	if !ok {
		return nil, unknownTag("unlockCondition", tag)
	}

	return decode(raw)
}

// decodeUnlockConditions decodes a polymorphic container element-by-element,
// preserving order.
func decodeUnlockConditions(raws []json.RawMessage) ([]UnlockCondition, error) {
	if raws == nil {
		return nil, nil
	}

	conditions := make([]UnlockCondition, 0, len(raws))

	for _, raw := range raws {
		condition, err := DecodeUnlockCondition(raw)
		if err != nil {
			return nil, err
		}

		conditions = append(conditions, condition)
	}

	return conditions, nil
}

// AddressUnlockCondition is the shared layout of the four address-bearing
// conditions; Kind distinguishes which one.
type AddressUnlockCondition struct {
	Kind    UnlockConditionType
	Address json.RawMessage
}

// UnlockConditionType returns the condition tag.
func (c *AddressUnlockCondition) UnlockConditionType() UnlockConditionType { return c.Kind }

type addressConditionJSON struct {
	Type    int             `json:"type"`
	Address json.RawMessage `json:"address"`
}

// MarshalJSON emits the tag plus the wire fields.
func (c *AddressUnlockCondition) MarshalJSON() ([]byte, error) {
	return json.Marshal(addressConditionJSON{
		Type:    int(c.Kind),
		Address: c.Address,
	})
}

func decodeAddressCondition(kind UnlockConditionType) func(json.RawMessage) (UnlockCondition, error) {
	return func(raw json.RawMessage) (UnlockCondition, error) {
		var wire addressConditionJSON
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, decodeError("unlockCondition", int(kind), "", err)
		}

		if len(wire.Address) == 0 {
			return nil, decodeError("unlockCondition", int(kind), "address", errMissingField)
		}

		return &AddressUnlockCondition{Kind: kind, Address: wire.Address}, nil
	}
}

// StorageDepositReturnUnlockCondition requires returning Amount to
// ReturnAddress when the output is consumed.
type StorageDepositReturnUnlockCondition struct {
	ReturnAddress json.RawMessage
	Amount        string
}

// UnlockConditionType returns the storage deposit return tag.
func (c *StorageDepositReturnUnlockCondition) UnlockConditionType() UnlockConditionType {
	return UnlockConditionStorageDepositReturn
}

type storageDepositReturnJSON struct {
	Type          int             `json:"type"`
	ReturnAddress json.RawMessage `json:"returnAddress"`
	Amount        string          `json:"amount"`
}

// MarshalJSON emits the tag plus the wire fields.
func (c *StorageDepositReturnUnlockCondition) MarshalJSON() ([]byte, error) {
	return json.Marshal(storageDepositReturnJSON{
		Type:          int(UnlockConditionStorageDepositReturn),
		ReturnAddress: c.ReturnAddress,
		Amount:        c.Amount,
	})
}

func decodeStorageDepositReturnCondition(raw json.RawMessage) (UnlockCondition, error) {
	var wire storageDepositReturnJSON
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, decodeError("unlockCondition", int(UnlockConditionStorageDepositReturn), "", err)
	}

	if wire.Amount == "" {
		return nil, decodeError("unlockCondition", int(UnlockConditionStorageDepositReturn), "amount", errMissingField)
	}

	return &StorageDepositReturnUnlockCondition{
		ReturnAddress: wire.ReturnAddress,
		Amount:        wire.Amount,
	}, nil
}

// TimelockUnlockCondition prevents consumption before UnixTime.
type TimelockUnlockCondition struct {
	UnixTime uint32
}

// UnlockConditionType returns the timelock tag.
func (c *TimelockUnlockCondition) UnlockConditionType() UnlockConditionType {
	return UnlockConditionTimelock
}

type timelockConditionJSON struct {
	Type     int    `json:"type"`
	UnixTime uint32 `json:"unixTime"`
}

// MarshalJSON emits the tag plus the wire fields.
func (c *TimelockUnlockCondition) MarshalJSON() ([]byte, error) {
	return json.Marshal(timelockConditionJSON{
		Type:     int(UnlockConditionTimelock),
		UnixTime: c.UnixTime,
	})
}

func decodeTimelockCondition(raw json.RawMessage) (UnlockCondition, error) {
	var wire timelockConditionJSON
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, decodeError("unlockCondition", int(UnlockConditionTimelock), "", err)
	}

	return &TimelockUnlockCondition{UnixTime: wire.UnixTime}, nil
}

// ExpirationUnlockCondition hands the output to ReturnAddress after
// UnixTime passes unconsumed.
type ExpirationUnlockCondition struct {
	ReturnAddress json.RawMessage
	UnixTime      uint32
}

// UnlockConditionType returns the expiration tag.
func (c *ExpirationUnlockCondition) UnlockConditionType() UnlockConditionType {
	return UnlockConditionExpiration
}

type expirationConditionJSON struct {
	Type          int             `json:"type"`
	ReturnAddress json.RawMessage `json:"returnAddress"`
	UnixTime      uint32          `json:"unixTime"`
}

// MarshalJSON emits the tag plus the wire fields.
func (c *ExpirationUnlockCondition) MarshalJSON() ([]byte, error) {
	return json.Marshal(expirationConditionJSON{
		Type:          int(UnlockConditionExpiration),
		ReturnAddress: c.ReturnAddress,
		UnixTime:      c.UnixTime,
	})
}

func decodeExpirationCondition(raw json.RawMessage) (UnlockCondition, error) {
	var wire expirationConditionJSON
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, decodeError("unlockCondition", int(UnlockConditionExpiration), "", err)
	}

	return &ExpirationUnlockCondition{
		ReturnAddress: wire.ReturnAddress,
		UnixTime:      wire.UnixTime,
	}, nil
}
