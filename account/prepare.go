package account

import (
	"context"

	"github.com/stardustlabs/walletbridge/amount"
)

// SendParams is one address/amount pair for a base coin send.
type SendParams struct {
	Address string        `json:"address"`
	Amount  amount.Amount `json:"amount"`
}

// NativeTokenAllotment is one native token id/amount pair in a send.
type NativeTokenAllotment struct {
	ID     string        `json:"id"`
	Amount amount.Amount `json:"amount"`
}

// SendNativeTokensParams is one address with the native tokens sent to it.
type SendNativeTokensParams struct {
	Address      string                 `json:"address"`
	NativeTokens []NativeTokenAllotment `json:"nativeTokens"`
}

// SendNFTParams is one address/NFT pair.
type SendNFTParams struct {
	Address string `json:"address"`
	NFTID   string `json:"nftId"`
}

// MintNativeTokenParams configures a native token mint.
type MintNativeTokenParams struct {
	CirculatingSupply amount.Amount `json:"circulatingSupply"`
	MaximumSupply     amount.Amount `json:"maximumSupply"`
	FoundryMetadata   string        `json:"foundryMetadata,omitempty"`
	AliasID           string        `json:"aliasId,omitempty"`
}

// MintNFTParams configures one NFT mint.
type MintNFTParams struct {
	Address           string `json:"address,omitempty"`
	ImmutableMetadata string `json:"immutableMetadata,omitempty"`
	Metadata          string `json:"metadata,omitempty"`
	Tag               string `json:"tag,omitempty"`
	Sender            string `json:"sender,omitempty"`
	Issuer            string `json:"issuer,omitempty"`
}

// AliasOutputParams configures an alias output creation. Absent fields mean
// engine defaults.
type AliasOutputParams struct {
	Address           string `json:"address,omitempty"`
	ImmutableMetadata string `json:"immutableMetadata,omitempty"`
	Metadata          string `json:"metadata,omitempty"`
	StateMetadata     string `json:"stateMetadata,omitempty"`
}

// ConsolidationParams configures an output consolidation.
type ConsolidationParams struct {
	Force                        bool    `json:"force"`
	OutputConsolidationThreshold *uint32 `json:"outputConsolidationThreshold,omitempty"`
}

// prepare dispatches a prepare-style method and binds the engine-opaque
// result to this account.
func (a *Account) prepare(ctx context.Context, method string, data any) (*PreparedTransaction, error) {
	payload, err := a.call(ctx, method, data)
	if err != nil {
		return nil, err
	}

	return &PreparedTransaction{account: a, data: payload}, nil
}

type burnNativeTokenData struct {
	TokenID    string              `json:"tokenId"`
	BurnAmount amount.Amount       `json:"burnAmount"`
	Options    *TransactionOptions `json:"options,omitempty"`
}

// PrepareBurnNativeToken builds a transaction burning burnAmount of the
// given native token.
func (a *Account) PrepareBurnNativeToken(ctx context.Context, tokenID string, burnAmount amount.Amount, options *TransactionOptions) (*PreparedTransaction, error) {
	return a.prepare(ctx, "burnNativeToken", burnNativeTokenData{
		TokenID:    tokenID,
		BurnAmount: burnAmount,
		Options:    options,
	})
}

type burnNFTData struct {
	NFTID   string              `json:"nftId"`
	Options *TransactionOptions `json:"options,omitempty"`
}

// PrepareBurnNFT builds a transaction burning the given NFT.
func (a *Account) PrepareBurnNFT(ctx context.Context, nftID string, options *TransactionOptions) (*PreparedTransaction, error) {
	return a.prepare(ctx, "burnNft", burnNFTData{NFTID: nftID, Options: options})
}

// PrepareConsolidateOutputs builds a transaction consolidating the
// account's outputs.
func (a *Account) PrepareConsolidateOutputs(ctx context.Context, params ConsolidationParams) (*PreparedTransaction, error) {
	return a.prepare(ctx, "consolidateOutputs", params)
}

type createAliasOutputData struct {
	AliasOutputParams *AliasOutputParams  `json:"aliasOutputOptions,omitempty"`
	Options           *TransactionOptions `json:"options,omitempty"`
}

// PrepareCreateAliasOutput builds a transaction creating an alias output.
func (a *Account) PrepareCreateAliasOutput(ctx context.Context, params *AliasOutputParams, options *TransactionOptions) (*PreparedTransaction, error) {
	return a.prepare(ctx, "createAliasOutput", createAliasOutputData{
		AliasOutputParams: params,
		Options:           options,
	})
}

type mintNativeTokenData struct {
	NativeTokenOptions MintNativeTokenParams `json:"nativeTokenOptions"`
	Options            *TransactionOptions   `json:"options,omitempty"`
}

// PrepareMintNativeToken builds a transaction minting a new native token.
func (a *Account) PrepareMintNativeToken(ctx context.Context, params MintNativeTokenParams, options *TransactionOptions) (*PreparedTransaction, error) {
	return a.prepare(ctx, "mintNativeToken", mintNativeTokenData{
		NativeTokenOptions: params,
		Options:            options,
	})
}

type mintNFTsData struct {
	NFTsOptions []MintNFTParams     `json:"nftsOptions"`
	Options     *TransactionOptions `json:"options,omitempty"`
}

// PrepareMintNFTs builds a transaction minting the given NFTs.
func (a *Account) PrepareMintNFTs(ctx context.Context, params []MintNFTParams, options *TransactionOptions) (*PreparedTransaction, error) {
	return a.prepare(ctx, "mintNfts", mintNFTsData{NFTsOptions: params, Options: options})
}

type sendAmountData struct {
	AddressesWithAmount []SendParams        `json:"addressesWithAmount"`
	Options             *TransactionOptions `json:"options,omitempty"`
}

// PrepareSend builds a base coin send to one or more addresses. Amounts
// reach the wire as decimal strings regardless of how the caller built
// them.
func (a *Account) PrepareSend(ctx context.Context, params []SendParams, options *TransactionOptions) (*PreparedTransaction, error) {
	return a.prepare(ctx, "sendAmount", sendAmountData{
		AddressesWithAmount: params,
		Options:             options,
	})
}

// Send is PrepareSend composed with sign-and-submit.
func (a *Account) Send(ctx context.Context, params []SendParams, options *TransactionOptions) (*Transaction, error) {
	prepared, err := a.PrepareSend(ctx, params, options)
	if err != nil {
		return nil, err
	}

	return prepared.Send(ctx)
}

type sendNativeTokensData struct {
	AddressesAndNativeTokens []SendNativeTokensParams `json:"addressesAndNativeTokens"`
	Options                  *TransactionOptions      `json:"options,omitempty"`
}

// PrepareSendNativeTokens builds a native token send.
func (a *Account) PrepareSendNativeTokens(ctx context.Context, params []SendNativeTokensParams, options *TransactionOptions) (*PreparedTransaction, error) {
	return a.prepare(ctx, "sendNativeTokens", sendNativeTokensData{
		AddressesAndNativeTokens: params,
		Options:                  options,
	})
}

type sendNFTData struct {
	AddressesAndNFTIDs []SendNFTParams     `json:"addressesAndNftIds"`
	Options            *TransactionOptions `json:"options,omitempty"`
}

// PrepareSendNFT builds an NFT transfer.
func (a *Account) PrepareSendNFT(ctx context.Context, params []SendNFTParams, options *TransactionOptions) (*PreparedTransaction, error) {
	return a.prepare(ctx, "sendNft", sendNFTData{AddressesAndNFTIDs: params, Options: options})
}
