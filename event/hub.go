package event

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// Type names one wallet event kind as the engine emits it.
type Type string

// Event types emitted by the engine.
const (
	TypeConsolidationRequired   Type = "ConsolidationRequired"
	TypeLedgerAddressGeneration Type = "LedgerAddressGeneration"
	TypeNewOutput               Type = "NewOutput"
	TypeSpentOutput             Type = "SpentOutput"
	TypeTransactionInclusion    Type = "TransactionInclusion"
	TypeTransactionProgress     Type = "TransactionProgress"
)

// Event is one engine-emitted occurrence scoped to an account.
type Event struct {
	AccountIndex uint32          `json:"accountIndex"`
	Type         Type            `json:"event"`
	Payload      json.RawMessage `json:"payload"`
}

// DefaultBuffer is the per-subscription channel capacity when the caller
// does not choose one.
const DefaultBuffer = 64

// Hub fans engine events out to subscriptions.
type Hub struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]*Subscription
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[uuid.UUID]*Subscription)}
}

// Subscribe registers interest in the given event types; no types means
// every type. buffer <= 0 selects DefaultBuffer.
func (h *Hub) Subscribe(buffer int, types ...Type) *Subscription {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	sub := &Subscription{
		id:  uuid.New(),
		hub: h,
		ch:  make(chan Event, buffer),
	}

	if len(types) > 0 {
		sub.types = make(map[Type]struct{}, len(types))
		for _, t := range types {
			sub.types[t] = struct{}{}
		}
	}

	h.mu.Lock()
	h.subs[sub.id] = sub
	h.mu.Unlock()

	return sub
}

// Publish delivers an event to every matching subscription in FIFO order
// per subscription. Full buffers drop the event for that subscription only.
func (h *Hub) Publish(e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		sub.deliver(e)
	}
}

// Close tears down every subscription.
func (h *Hub) Close() {
	h.mu.Lock()
	subs := make([]*Subscription, 0, len(h.subs))

	for _, sub := range h.subs {
		subs = append(subs, sub)
	}

	h.subs = make(map[uuid.UUID]*Subscription)
	h.mu.Unlock()

	for _, sub := range subs {
		sub.closeChannel()
	}
}

func (h *Hub) remove(id uuid.UUID) {
	h.mu.Lock()
	delete(h.subs, id)
	h.mu.Unlock()
}

// Subscription is one registered consumer of events.
type Subscription struct {
	id    uuid.UUID
	hub   *Hub
	types map[Type]struct{}
	ch    chan Event

	closeOnce sync.Once
	dropMu    sync.Mutex
	dropped   uint64
}

// Events returns the receive channel. It is closed by Close.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Dropped reports how many events were discarded because the buffer was
// full.
func (s *Subscription) Dropped() uint64 {
	s.dropMu.Lock()
	defer s.dropMu.Unlock()

	return s.dropped
}

// Close deregisters the subscription and closes its channel. Safe to call
// more than once.
func (s *Subscription) Close() {
	s.hub.remove(s.id)
	s.closeChannel()
}

func (s *Subscription) closeChannel() {
	s.closeOnce.Do(func() {
		close(s.ch)
	})
}

func (s *Subscription) deliver(e Event) {
	if s.types != nil {
		if _, ok := s.types[e.Type]; !ok {
			return
		}
	}

	select {
	case s.ch <- e:
	default:
		s.dropMu.Lock()
		s.dropped++
		s.dropMu.Unlock()
	}
}
