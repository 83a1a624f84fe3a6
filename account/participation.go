package account

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/stardustlabs/walletbridge/amount"
)

// ParticipationNode addresses the node answering participation queries.
type ParticipationNode struct {
	URL  string          `json:"url"`
	Auth json.RawMessage `json:"auth,omitempty"`
}

// ParticipationEventRegistrationOptions selects which events to register
// from a node.
type ParticipationEventRegistrationOptions struct {
	Node             ParticipationNode `json:"node"`
	EventsToRegister []string          `json:"eventsToRegister,omitempty"`
	EventsToIgnore   []string          `json:"eventsToIgnore,omitempty"`
}

// ParticipationEvent is one registered event; its data shape belongs to the
// node and passes through opaquely.
type ParticipationEvent struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

// ParticipationOverview aggregates the account's participations per event.
type ParticipationOverview struct {
	Participations map[string]json.RawMessage `json:"participations"`
}

type registerEventsData struct {
	Options ParticipationEventRegistrationOptions `json:"options"`
}

// RegisterParticipationEvents registers events from a node and returns them
// keyed by event id.
func (a *Account) RegisterParticipationEvents(ctx context.Context, options ParticipationEventRegistrationOptions) (map[string]ParticipationEvent, error) {
	var events map[string]ParticipationEvent
	if err := a.callInto(ctx, "registerParticipationEvents", registerEventsData{Options: options}, &events); err != nil {
		return nil, err
	}

	return events, nil
}

type eventIDData struct {
	EventID string `json:"eventId"`
}

// DeregisterParticipationEvent removes a registered event.
func (a *Account) DeregisterParticipationEvent(ctx context.Context, eventID string) error {
	return a.callInto(ctx, "deregisterParticipationEvent", eventIDData{EventID: eventID}, nil)
}

// GetParticipationEvent returns one registered event by id.
func (a *Account) GetParticipationEvent(ctx context.Context, eventID string) (*ParticipationEvent, error) {
	var event ParticipationEvent
	if err := a.callInto(ctx, "getParticipationEvent", eventIDData{EventID: eventID}, &event); err != nil {
		return nil, err
	}

	return &event, nil
}

// GetParticipationEvents returns every registered event keyed by id.
func (a *Account) GetParticipationEvents(ctx context.Context) (map[string]ParticipationEvent, error) {
	var events map[string]ParticipationEvent
	if err := a.callInto(ctx, "getParticipationEvents", nil, &events); err != nil {
		return nil, err
	}

	return events, nil
}

// GetParticipationOverview returns the account's participation overview.
func (a *Account) GetParticipationOverview(ctx context.Context) (*ParticipationOverview, error) {
	var overview ParticipationOverview
	if err := a.callInto(ctx, "getParticipationOverview", nil, &overview); err != nil {
		return nil, err
	}

	return &overview, nil
}

// GetVotingPower returns the account's voting power, normalized from its
// hex wire form.
func (a *Account) GetVotingPower(ctx context.Context) (*big.Int, error) {
	var hex string
	if err := a.callInto(ctx, "getVotingPower", nil, &hex); err != nil {
		return nil, err
	}

	return amount.HexToInt(hex)
}

type voteData struct {
	EventID string  `json:"eventId,omitempty"`
	Answers []uint8 `json:"answers,omitempty"`
}

// PrepareVote builds a voting transaction. Empty eventID or answers mean
// the engine applies its defaults.
func (a *Account) PrepareVote(ctx context.Context, eventID string, answers []uint8) (*PreparedTransaction, error) {
	return a.prepare(ctx, "vote", voteData{EventID: eventID, Answers: answers})
}

// PrepareStopParticipating builds a transaction removing the account's
// participation in an event.
func (a *Account) PrepareStopParticipating(ctx context.Context, eventID string) (*PreparedTransaction, error) {
	return a.prepare(ctx, "stopParticipating", eventIDData{EventID: eventID})
}

type votingPowerData struct {
	Amount amount.Amount `json:"amount"`
}

// PrepareIncreaseVotingPower builds a transaction locking the given amount
// as voting power.
func (a *Account) PrepareIncreaseVotingPower(ctx context.Context, value amount.Amount) (*PreparedTransaction, error) {
	return a.prepare(ctx, "increaseVotingPower", votingPowerData{Amount: value})
}

// PrepareDecreaseVotingPower builds a transaction releasing the given
// amount of voting power.
func (a *Account) PrepareDecreaseVotingPower(ctx context.Context, value amount.Amount) (*PreparedTransaction, error) {
	return a.prepare(ctx, "decreaseVotingPower", votingPowerData{Amount: value})
}
