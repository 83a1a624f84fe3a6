//go:build unit

package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stardustlabs/walletbridge"
	"github.com/stardustlabs/walletbridge/amount"
)

func TestRegisterParticipationEventsWireShape(t *testing.T) {
	t.Parallel()

	account, engine := newTestAccount(respond(`{
		"0xevent1": {"id": "0xevent1", "data": {"name": "vote round 1"}}
	}`))

	events, err := account.RegisterParticipationEvents(context.Background(), ParticipationEventRegistrationOptions{
		Node:             ParticipationNode{URL: "https://node.example"},
		EventsToRegister: []string{"0xevent1"},
	})
	require.NoError(t, err)

	require.Contains(t, events, "0xevent1")
	assert.JSONEq(t, `{"name": "vote round 1"}`, string(events["0xevent1"].Data))

	assert.JSONEq(t, `{
		"cmd": "callAccountMethod",
		"payload": {
			"accountId": 3,
			"method": {
				"name": "registerParticipationEvents",
				"data": {
					"options": {
						"node": {"url": "https://node.example"},
						"eventsToRegister": ["0xevent1"]
					}
				}
			}
		}
	}`, string(engine.messages[0]))
}

func TestGetVotingPowerNormalizesHex(t *testing.T) {
	t.Parallel()

	account, _ := newTestAccount(respond(`"0x2540be400"`))

	power, err := account.GetVotingPower(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10000000000", power.String())
}

func TestGetVotingPowerRejectsMalformedWire(t *testing.T) {
	t.Parallel()

	account, _ := newTestAccount(respond(`"ten"`))

	_, err := account.GetVotingPower(context.Background())
	require.ErrorIs(t, err, walletbridge.ErrFormat)
}

func TestPrepareVoteWireShape(t *testing.T) {
	t.Parallel()

	account, engine := newTestAccount(respond(`{}`))

	_, err := account.PrepareVote(context.Background(), "0xevent1", []uint8{0, 2})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"cmd": "callAccountMethod",
		"payload": {
			"accountId": 3,
			"method": {
				"name": "vote",
				"data": {"eventId": "0xevent1", "answers": [0, 2]}
			}
		}
	}`, string(engine.messages[0]))
}

func TestPrepareIncreaseVotingPowerEmitsDecimal(t *testing.T) {
	t.Parallel()

	account, engine := newTestAccount(respond(`{}`))

	_, err := account.PrepareIncreaseVotingPower(context.Background(), amount.MustParse("0x64"))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"cmd": "callAccountMethod",
		"payload": {
			"accountId": 3,
			"method": {
				"name": "increaseVotingPower",
				"data": {"amount": "100"}
			}
		}
	}`, string(engine.messages[0]))
}

func TestDeprecatedVotingOverviewForwards(t *testing.T) {
	t.Parallel()

	account, engine := newTestAccount(respond(`{"participations": {}}`))

	overview, err := account.GetVotingOverview(context.Background())
	require.NoError(t, err)
	assert.Empty(t, overview.Participations)

	assert.JSONEq(t, `{
		"cmd": "callAccountMethod",
		"payload": {
			"accountId": 3,
			"method": {"name": "getParticipationOverview"}
		}
	}`, string(engine.messages[0]))
}
