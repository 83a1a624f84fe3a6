package account

import "context"

// Aliases kept for callers of the old names. Each forwards to the current
// operation with an identical data shape; there is no behavioral
// difference.

// PrepareMintNfts builds a transaction minting the given NFTs.
//
// Deprecated: use PrepareMintNFTs.
func (a *Account) PrepareMintNfts(ctx context.Context, params []MintNFTParams, options *TransactionOptions) (*PreparedTransaction, error) {
	return a.PrepareMintNFTs(ctx, params, options)
}

// GetVotingOverview returns the account's participation overview.
//
// Deprecated: use GetParticipationOverview.
func (a *Account) GetVotingOverview(ctx context.Context) (*ParticipationOverview, error) {
	return a.GetParticipationOverview(ctx)
}

// SendAmount builds, signs, and submits a base coin send.
//
// Deprecated: use Send.
func (a *Account) SendAmount(ctx context.Context, params []SendParams, options *TransactionOptions) (*Transaction, error) {
	return a.Send(ctx, params, options)
}
