//go:build unit

package account

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stardustlabs/walletbridge"
	"github.com/stardustlabs/walletbridge/bridge"
	"github.com/stardustlabs/walletbridge/primitive"
)

// scriptedEngine replays a fixed sequence of responses and records every
// message it received. A step with a non-nil err rejects the call.
type scriptedEngine struct {
	messages []json.RawMessage
	steps    []engineStep
}

type engineStep struct {
	response json.RawMessage
	err      error
}

func respond(payload string) engineStep {
	return engineStep{response: json.RawMessage(`{"payload":` + payload + `}`)}
}

func reject(err error) engineStep {
	return engineStep{err: err}
}

func (e *scriptedEngine) Call(_ context.Context, message json.RawMessage) (json.RawMessage, error) {
	e.messages = append(e.messages, message)

	if len(e.steps) == 0 {
		return nil, &bridge.Rejection{Raw: json.RawMessage(`{"payload":{"type":"scriptExhausted"}}`)}
	}

	step := e.steps[0]
	e.steps = e.steps[1:]

	if step.err != nil {
		return nil, step.err
	}

	return step.response, nil
}

func (e *scriptedEngine) Listen(_ []string, _ func(json.RawMessage)) error { return nil }

func (e *scriptedEngine) Destroy(_ context.Context) error { return nil }

func newTestAccount(steps ...engineStep) (*Account, *scriptedEngine) {
	engine := &scriptedEngine{steps: steps}
	return New(3, "savings", bridge.New(engine)), engine
}

func TestBalanceNormalizesAmounts(t *testing.T) {
	t.Parallel()

	account, _ := newTestAccount(respond(`{
		"baseCoin": {"total": "0x64", "available": "0x32"},
		"nativeTokens": [{"id": "0x08aa", "total": "0xff", "available": "0x1"}],
		"requiredStorageDeposit": {"alias": "53700", "basic": "42600", "foundry": "52800", "nft": "48400"}
	}`))

	balance, err := account.Balance(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "100", balance.BaseCoin.Total.String())
	assert.Equal(t, "50", balance.BaseCoin.Available.String())

	require.Len(t, balance.NativeTokens, 1)
	assert.Equal(t, "0x08aa", balance.NativeTokens[0].TokenID)
	assert.Equal(t, "255", balance.NativeTokens[0].Total.String())

	assert.Equal(t, "42600", balance.RequiredStorageDeposit.Basic.String())
}

func TestGetOutputReconstructsPrimitive(t *testing.T) {
	t.Parallel()

	account, engine := newTestAccount(respond(`{
		"outputId": "0xdeadbeef0000",
		"output": {
			"type": 3,
			"amount": "1000000",
			"unlockConditions": [{"type": 0, "address": {"type": 0, "pubKeyHash": "0xabc"}}]
		},
		"isSpent": false
	}`))

	output, err := account.GetOutput(context.Background(), "0xdeadbeef0000")
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"cmd": "callAccountMethod",
		"payload": {
			"accountId": 3,
			"method": {"name": "getOutput", "data": {"outputId": "0xdeadbeef0000"}}
		}
	}`, string(engine.messages[0]))

	basic, ok := output.Output.(*primitive.BasicOutput)
	require.True(t, ok)
	assert.Equal(t, "1000000", basic.Amount)
	require.Len(t, basic.UnlockConditions, 1)
	assert.Equal(t, primitive.UnlockConditionAddress, basic.UnlockConditions[0].UnlockConditionType())
}

func TestGetOutputUnknownTagFails(t *testing.T) {
	t.Parallel()

	account, _ := newTestAccount(respond(`{
		"outputId": "0x01",
		"output": {"type": 42, "amount": "1"}
	}`))

	_, err := account.GetOutput(context.Background(), "0x01")
	require.ErrorIs(t, err, walletbridge.ErrDecode)
}

func TestUnspentOutputsForwardsFilter(t *testing.T) {
	t.Parallel()

	account, engine := newTestAccount(respond(`[]`))

	lower := uint32(100)
	_, err := account.UnspentOutputs(context.Background(), &FilterOptions{
		LowerBoundBookedTimestamp: &lower,
		OutputTypes:               []int{3, 6},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"cmd": "callAccountMethod",
		"payload": {
			"accountId": 3,
			"method": {
				"name": "unspentOutputs",
				"data": {"filterOptions": {"lowerBoundBookedTimestamp": 100, "outputTypes": [3, 6]}}
			}
		}
	}`, string(engine.messages[0]))
}

func TestMalformedListPayloadIsTransportError(t *testing.T) {
	t.Parallel()

	account, _ := newTestAccount(respond(`"not a list"`))

	_, err := account.Transactions(context.Background())
	require.ErrorIs(t, err, walletbridge.ErrTransport)
}

func TestEngineRejectionDetailSurvivesVerbatim(t *testing.T) {
	t.Parallel()

	account, _ := newTestAccount(reject(&bridge.Rejection{
		Raw: json.RawMessage(`{"payload":{"code":"InsufficientFunds"}}`),
	}))

	_, err := account.Balance(context.Background())
	require.ErrorIs(t, err, walletbridge.ErrEngine)

	var engineErr *walletbridge.EngineError

	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, `{"code":"InsufficientFunds"}`, string(engineErr.Detail))
}
