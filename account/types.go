package account

import (
	"encoding/json"

	"github.com/stardustlabs/walletbridge"
	"github.com/stardustlabs/walletbridge/primitive"
)

// Address is one generated account address.
type Address struct {
	Address  string `json:"address"`
	KeyIndex uint32 `json:"keyIndex"`
	Internal bool   `json:"internal"`
	Used     bool   `json:"used"`
}

// AddressWithUnspentOutputs pairs an address with the ids of the unspent
// outputs it controls.
type AddressWithUnspentOutputs struct {
	Address   string   `json:"address"`
	KeyIndex  uint32   `json:"keyIndex"`
	Internal  bool     `json:"internal"`
	OutputIDs []string `json:"outputIds"`
}

// OutputData is one output tracked by the account, with the ledger
// primitive reconstructed into its typed variant.
type OutputData struct {
	OutputID  string
	Output    primitive.Output
	Metadata  json.RawMessage
	Address   json.RawMessage
	NetworkID string
	IsSpent   bool
	Remainder bool
}

type outputDataJSON struct {
	OutputID  string          `json:"outputId"`
	Output    json.RawMessage `json:"output"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	Address   json.RawMessage `json:"address,omitempty"`
	NetworkID string          `json:"networkId,omitempty"`
	IsSpent   bool            `json:"isSpent"`
	Remainder bool            `json:"remainder"`
}

// UnmarshalJSON decodes the wire form, reconstructing the typed output
// variant through the primitive registry.
func (d *OutputData) UnmarshalJSON(data []byte) error {
	var wire outputDataJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return &walletbridge.DecodeError{Family: "outputData", Err: err}
	}

	var output primitive.Output

	if len(wire.Output) != 0 {
		decoded, err := primitive.DecodeOutput(wire.Output)
		if err != nil {
			return err
		}

		output = decoded
	}

	*d = OutputData{
		OutputID:  wire.OutputID,
		Output:    output,
		Metadata:  wire.Metadata,
		Address:   wire.Address,
		NetworkID: wire.NetworkID,
		IsSpent:   wire.IsSpent,
		Remainder: wire.Remainder,
	}

	return nil
}

// Transaction is a stored transaction record with its identifier and, once
// known, the block that carried it.
type Transaction struct {
	TransactionID  string          `json:"transactionId"`
	BlockID        string          `json:"blockId,omitempty"`
	InclusionState string          `json:"inclusionState,omitempty"`
	Incoming       bool            `json:"incoming,omitempty"`
	Payload        json.RawMessage `json:"payload,omitempty"`
	Timestamp      string          `json:"timestamp,omitempty"`
	NetworkID      string          `json:"networkId,omitempty"`
}

// FilterOptions narrows output listings. Absent fields mean the engine
// applies its defaults; the struct passes through untouched.
type FilterOptions struct {
	LowerBoundBookedTimestamp *uint32 `json:"lowerBoundBookedTimestamp,omitempty"`
	UpperBoundBookedTimestamp *uint32 `json:"upperBoundBookedTimestamp,omitempty"`
	OutputTypes               []int   `json:"outputTypes,omitempty"`
}

// SyncOptions tunes a sync. Absent fields mean the engine applies its
// defaults; the struct passes through untouched.
type SyncOptions struct {
	Addresses                []string `json:"addresses,omitempty"`
	AddressStartIndex        *uint32  `json:"addressStartIndex,omitempty"`
	ForceSyncing             *bool    `json:"forceSyncing,omitempty"`
	SyncPendingTransactions  *bool    `json:"syncPendingTransactions,omitempty"`
	SyncAliasesAndNfts       *bool    `json:"syncAliasesAndNfts,omitempty"`
	SyncOnlyMostBasicOutputs *bool    `json:"syncOnlyMostBasicOutputs,omitempty"`
}

// TransactionOptions tunes how the engine builds a prepared transaction.
// Passed through untouched; absence means engine defaults.
type TransactionOptions struct {
	RemainderValueStrategy json.RawMessage `json:"remainderValueStrategy,omitempty"`
	Note                   *string         `json:"note,omitempty"`
	AllowMicroAmount       *bool           `json:"allowMicroAmount,omitempty"`
}
