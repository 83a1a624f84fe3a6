package account

import (
	"context"
	"encoding/json"
)

// PreparedTransaction is the output of a prepare operation: engine-opaque
// transaction data plus the account that produced it. It is not yet
// authorized; signing and submission go back through the owning account's
// command channel.
type PreparedTransaction struct {
	account *Account
	data    json.RawMessage
}

// Data returns the engine-opaque prepared transaction data.
func (p *PreparedTransaction) Data() json.RawMessage { return p.data }

// Account returns the account the transaction was prepared for.
func (p *PreparedTransaction) Account() *Account { return p.account }

// Sign produces the signed essence for this prepared transaction.
func (p *PreparedTransaction) Sign(ctx context.Context) (*SignedTransactionEssence, error) {
	return p.account.SignTransactionEssence(ctx, p.data)
}

// Send signs and submits this prepared transaction in one engine call.
func (p *PreparedTransaction) Send(ctx context.Context) (*Transaction, error) {
	return p.account.SignAndSubmitTransaction(ctx, p.data)
}

// SignedTransactionEssence is a signed but not yet submitted transaction.
// Its shape is distinct from the unsigned prepared data.
type SignedTransactionEssence struct {
	Data json.RawMessage
}

type signEssenceData struct {
	PreparedTransactionData json.RawMessage `json:"preparedTransactionData"`
}

// SignTransactionEssence asks the engine to sign prepared transaction data.
func (a *Account) SignTransactionEssence(ctx context.Context, prepared json.RawMessage) (*SignedTransactionEssence, error) {
	payload, err := a.call(ctx, "signTransactionEssence", signEssenceData{PreparedTransactionData: prepared})
	if err != nil {
		return nil, err
	}

	return &SignedTransactionEssence{Data: payload}, nil
}

type submitSignedData struct {
	SignedTransactionData json.RawMessage `json:"signedTransactionData"`
}

// SubmitAndStoreTransaction submits an already-signed essence and stores
// the resulting transaction record.
func (a *Account) SubmitAndStoreTransaction(ctx context.Context, signed *SignedTransactionEssence) (*Transaction, error) {
	var transaction Transaction
	if err := a.callInto(ctx, "submitAndStoreTransaction", submitSignedData{SignedTransactionData: signed.Data}, &transaction); err != nil {
		return nil, err
	}

	return &transaction, nil
}

// SignAndSubmitTransaction signs and submits prepared transaction data in
// one engine call.
func (a *Account) SignAndSubmitTransaction(ctx context.Context, prepared json.RawMessage) (*Transaction, error) {
	var transaction Transaction
	if err := a.callInto(ctx, "signAndSubmitTransaction", signEssenceData{PreparedTransactionData: prepared}, &transaction); err != nil {
		return nil, err
	}

	return &transaction, nil
}
