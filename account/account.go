package account

import (
	"context"
	"encoding/json"

	"github.com/stardustlabs/walletbridge"
	"github.com/stardustlabs/walletbridge/amount"
	"github.com/stardustlabs/walletbridge/bridge"
)

// Account is the operation façade for one ledger account. It holds only the
// account's index and the shared bridge; all mutable account state lives in
// the engine.
type Account struct {
	index  uint32
	alias  string
	bridge *bridge.Bridge
}

// New builds the façade for the account at the given index.
func New(index uint32, alias string, b *bridge.Bridge) *Account {
	return &Account{index: index, alias: alias, bridge: b}
}

// Index returns the account's index.
func (a *Account) Index() uint32 { return a.index }

// Alias returns the account's alias, if one was set.
func (a *Account) Alias() string { return a.alias }

func (a *Account) call(ctx context.Context, method string, data any) (json.RawMessage, error) {
	return a.bridge.CallAccountMethod(ctx, a.index, method, data)
}

// callInto dispatches and decodes the success payload into out. A payload
// that does not fit the declared return type is a transport failure, not a
// partial result.
func (a *Account) callInto(ctx context.Context, method string, data, out any) error {
	payload, err := a.call(ctx, method, data)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return &walletbridge.TransportError{Method: method, Err: err}
	}

	return nil
}

// Addresses lists the account's generated addresses.
func (a *Account) Addresses(ctx context.Context) ([]Address, error) {
	var addresses []Address
	if err := a.callInto(ctx, "addresses", nil, &addresses); err != nil {
		return nil, err
	}

	return addresses, nil
}

// AddressesWithUnspentOutputs lists addresses that control unspent outputs.
func (a *Account) AddressesWithUnspentOutputs(ctx context.Context) ([]AddressWithUnspentOutputs, error) {
	var addresses []AddressWithUnspentOutputs
	if err := a.callInto(ctx, "addressesWithUnspentOutputs", nil, &addresses); err != nil {
		return nil, err
	}

	return addresses, nil
}

// Balance returns the account balance with every amount field normalized to
// an unbounded integer.
func (a *Account) Balance(ctx context.Context) (*amount.Balance, error) {
	payload, err := a.call(ctx, "getBalance", nil)
	if err != nil {
		return nil, err
	}

	return amount.DecodeBalance(payload)
}

type outputIDData struct {
	OutputID string `json:"outputId"`
}

// GetOutput returns one tracked output by id.
func (a *Account) GetOutput(ctx context.Context, outputID string) (*OutputData, error) {
	var output OutputData
	if err := a.callInto(ctx, "getOutput", outputIDData{OutputID: outputID}, &output); err != nil {
		return nil, err
	}

	return &output, nil
}

type filterData struct {
	FilterOptions *FilterOptions `json:"filterOptions,omitempty"`
}

// Outputs lists all tracked outputs, optionally filtered.
func (a *Account) Outputs(ctx context.Context, filter *FilterOptions) ([]OutputData, error) {
	var outputs []OutputData
	if err := a.callInto(ctx, "outputs", filterData{FilterOptions: filter}, &outputs); err != nil {
		return nil, err
	}

	return outputs, nil
}

// UnspentOutputs lists unspent tracked outputs, optionally filtered.
func (a *Account) UnspentOutputs(ctx context.Context, filter *FilterOptions) ([]OutputData, error) {
	var outputs []OutputData
	if err := a.callInto(ctx, "unspentOutputs", filterData{FilterOptions: filter}, &outputs); err != nil {
		return nil, err
	}

	return outputs, nil
}

type transactionIDData struct {
	TransactionID string `json:"transactionId"`
}

// GetTransaction returns one stored transaction by id.
func (a *Account) GetTransaction(ctx context.Context, transactionID string) (*Transaction, error) {
	var transaction Transaction
	if err := a.callInto(ctx, "getTransaction", transactionIDData{TransactionID: transactionID}, &transaction); err != nil {
		return nil, err
	}

	return &transaction, nil
}

// Transactions lists all stored transactions.
func (a *Account) Transactions(ctx context.Context) ([]Transaction, error) {
	var transactions []Transaction
	if err := a.callInto(ctx, "transactions", nil, &transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}

// PendingTransactions lists transactions not yet included.
func (a *Account) PendingTransactions(ctx context.Context) ([]Transaction, error) {
	var transactions []Transaction
	if err := a.callInto(ctx, "pendingTransactions", nil, &transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}

// IncomingTransactions lists transactions that funded this account.
func (a *Account) IncomingTransactions(ctx context.Context) ([]Transaction, error) {
	var transactions []Transaction
	if err := a.callInto(ctx, "incomingTransactions", nil, &transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}

type syncData struct {
	Options *SyncOptions `json:"options,omitempty"`
}

// Sync asks the engine to sync the account against the network and returns
// the refreshed, normalized balance.
func (a *Account) Sync(ctx context.Context, options *SyncOptions) (*amount.Balance, error) {
	payload, err := a.call(ctx, "syncAccount", syncData{Options: options})
	if err != nil {
		return nil, err
	}

	return amount.DecodeBalance(payload)
}
