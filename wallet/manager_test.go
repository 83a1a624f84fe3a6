//go:build unit

package wallet

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stardustlabs/walletbridge"
	"github.com/stardustlabs/walletbridge/event"
)

// fakeEngine answers every command with an empty payload and captures the
// listener callback for emitting events.
type fakeEngine struct {
	lastMessage json.RawMessage
	emit        func(json.RawMessage)
	listens     int
	destroys    int
}

func (e *fakeEngine) Call(_ context.Context, message json.RawMessage) (json.RawMessage, error) {
	e.lastMessage = message
	return json.RawMessage(`{"payload":null}`), nil
}

func (e *fakeEngine) Listen(_ []string, fn func(json.RawMessage)) error {
	e.listens++
	e.emit = fn

	return nil
}

func (e *fakeEngine) Destroy(_ context.Context) error {
	e.destroys++
	return nil
}

func TestAccountsShareTheSession(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{}
	manager := NewManager(engine)

	_, err := manager.Account(0, "checking").Addresses(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(engine.lastMessage), `"accountId":0`)

	_, err = manager.Account(5, "savings").Addresses(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(engine.lastMessage), `"accountId":5`)
}

func TestListenRegistersEngineListenerOnce(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{}
	manager := NewManager(engine)

	first, err := manager.Listen(event.TypeNewOutput)
	require.NoError(t, err)
	defer first.Close()

	second, err := manager.Listen()
	require.NoError(t, err)
	defer second.Close()

	assert.Equal(t, 1, engine.listens)
}

func TestEventsFanOutToMatchingSubscriptions(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{}
	manager := NewManager(engine)

	outputs, err := manager.Listen(event.TypeNewOutput)
	require.NoError(t, err)

	all, err := manager.Listen()
	require.NoError(t, err)

	engine.emit(json.RawMessage(`{"accountIndex": 2, "event": "NewOutput", "payload": {"outputId": "0x01"}}`))
	engine.emit(json.RawMessage(`{"accountIndex": 2, "event": "TransactionProgress", "payload": {}}`))

	e := <-outputs.Events()
	assert.Equal(t, event.TypeNewOutput, e.Type)
	assert.Equal(t, uint32(2), e.AccountIndex)

	assert.Equal(t, event.TypeNewOutput, (<-all.Events()).Type)
	assert.Equal(t, event.TypeTransactionProgress, (<-all.Events()).Type)

	select {
	case e, ok := <-outputs.Events():
		require.False(t, ok, "unexpected event %v", e)
	case <-time.After(10 * time.Millisecond):
	}
}

func TestUndecodableEventIsDropped(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{}
	manager := NewManager(engine)

	sub, err := manager.Listen()
	require.NoError(t, err)

	engine.emit(json.RawMessage(`not json`))
	engine.emit(json.RawMessage(`{"accountIndex": 0, "event": "SpentOutput", "payload": {}}`))

	assert.Equal(t, event.TypeSpentOutput, (<-sub.Events()).Type)
}

func TestCloseDestroysOnceAndEndsSubscriptions(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{}
	manager := NewManager(engine)

	sub, err := manager.Listen()
	require.NoError(t, err)

	require.NoError(t, manager.Close(context.Background()))
	require.NoError(t, manager.Close(context.Background()))
	assert.Equal(t, 1, engine.destroys)

	_, ok := <-sub.Events()
	assert.False(t, ok)

	_, err = manager.Listen()
	require.ErrorIs(t, err, walletbridge.ErrTransport)
}
