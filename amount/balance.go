package amount

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/stardustlabs/walletbridge"
)

// BaseCoinBalance holds the total and available base coin amounts.
type BaseCoinBalance struct {
	Total     *big.Int
	Available *big.Int
}

// NativeTokenBalance holds the total and available amounts for one native
// token.
type NativeTokenBalance struct {
	TokenID   string
	Total     *big.Int
	Available *big.Int
}

// StorageDeposit holds the minimum storage deposit required for one output
// of each kind.
type StorageDeposit struct {
	Alias   *big.Int
	Basic   *big.Int
	Foundry *big.Int
	NFT     *big.Int
}

// Balance is an engine balance payload with every amount field normalized to
// an unbounded integer.
type Balance struct {
	BaseCoin               BaseCoinBalance
	NativeTokens           []NativeTokenBalance
	RequiredStorageDeposit StorageDeposit
}

// balancePayload mirrors the engine wire schema before normalization. Coin
// and token amounts arrive hex-encoded, storage deposit requirements
// decimal-encoded; parseWire accepts either so each field normalizes
// independently.
type balancePayload struct {
	BaseCoin struct {
		Total     string `json:"total"`
		Available string `json:"available"`
	} `json:"baseCoin"`
	NativeTokens []struct {
		ID        string `json:"id"`
		Total     string `json:"total"`
		Available string `json:"available"`
	} `json:"nativeTokens"`
	RequiredStorageDeposit struct {
		Alias   string `json:"alias"`
		Basic   string `json:"basic"`
		Foundry string `json:"foundry"`
		NFT     string `json:"nft"`
	} `json:"requiredStorageDeposit"`
}

// DecodeBalance decodes an engine balance payload and normalizes every
// amount field. Any malformed field fails the whole decode; there is no
// partial result.
func DecodeBalance(raw json.RawMessage) (*Balance, error) {
	var payload balancePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &walletbridge.DecodeError{Family: "balance", Err: err}
	}

	balance := &Balance{}

	var err error

	if balance.BaseCoin.Total, err = parseWire(payload.BaseCoin.Total); err != nil {
		return nil, fmt.Errorf("baseCoin.total: %w", err)
	}

	if balance.BaseCoin.Available, err = parseWire(payload.BaseCoin.Available); err != nil {
		return nil, fmt.Errorf("baseCoin.available: %w", err)
	}

	for i, token := range payload.NativeTokens {
		entry := NativeTokenBalance{TokenID: token.ID}

		if entry.Total, err = parseWire(token.Total); err != nil {
			return nil, fmt.Errorf("nativeTokens[%d].total: %w", i, err)
		}

		if entry.Available, err = parseWire(token.Available); err != nil {
			return nil, fmt.Errorf("nativeTokens[%d].available: %w", i, err)
		}

		balance.NativeTokens = append(balance.NativeTokens, entry)
	}

	deposit := payload.RequiredStorageDeposit

	if balance.RequiredStorageDeposit.Alias, err = parseWire(deposit.Alias); err != nil {
		return nil, fmt.Errorf("requiredStorageDeposit.alias: %w", err)
	}

	if balance.RequiredStorageDeposit.Basic, err = parseWire(deposit.Basic); err != nil {
		return nil, fmt.Errorf("requiredStorageDeposit.basic: %w", err)
	}

	if balance.RequiredStorageDeposit.Foundry, err = parseWire(deposit.Foundry); err != nil {
		return nil, fmt.Errorf("requiredStorageDeposit.foundry: %w", err)
	}

	if balance.RequiredStorageDeposit.NFT, err = parseWire(deposit.NFT); err != nil {
		return nil, fmt.Errorf("requiredStorageDeposit.nft: %w", err)
	}

	return balance, nil
}
