package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"

	"github.com/stardustlabs/walletbridge"
	"github.com/stardustlabs/walletbridge/account"
	"github.com/stardustlabs/walletbridge/bridge"
	"github.com/stardustlabs/walletbridge/event"
	"github.com/stardustlabs/walletbridge/log"
)

// errClosed is the cause attached to operations attempted after Close.
var errClosed = errors.New("manager is closed")

// Manager owns one engine session. Accounts created through it share the
// session's command channel; events flow through its hub. Safe for
// concurrent use.
type Manager struct {
	bridge      *bridge.Bridge
	hub         *event.Hub
	logger      log.Logger
	eventBuffer int

	listenOnce sync.Once
	listenErr  error
	closeOnce  sync.Once
	closed     atomic.Bool
}

// Option configures a Manager.
type Option func(*Manager, *[]bridge.Option)

// WithLogger installs a logger for the manager and its bridge. Default: no
// logging.
func WithLogger(logger log.Logger) Option {
	return func(m *Manager, bridgeOpts *[]bridge.Option) {
		if logger != nil {
			m.logger = logger
			*bridgeOpts = append(*bridgeOpts, bridge.WithLogger(logger))
		}
	}
}

// WithTracer installs a tracer for per-command spans. Default: no-op tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(_ *Manager, bridgeOpts *[]bridge.Option) {
		*bridgeOpts = append(*bridgeOpts, bridge.WithTracer(tracer))
	}
}

// WithEventBuffer sets the per-subscription event channel capacity.
func WithEventBuffer(buffer int) Option {
	return func(m *Manager, _ *[]bridge.Option) {
		if buffer > 0 {
			m.eventBuffer = buffer
		}
	}
}

// NewManager binds a Manager to an engine session.
func NewManager(engine bridge.Engine, opts ...Option) *Manager {
	m := &Manager{
		hub:    event.NewHub(),
		logger: log.NewNop(),
	}

	var bridgeOpts []bridge.Option

	for _, opt := range opts {
		opt(m, &bridgeOpts)
	}

	m.bridge = bridge.New(engine, bridgeOpts...)

	return m
}

// Account returns the façade for the account at the given index. Façades are
// cheap; callers may build one per use.
func (m *Manager) Account(index uint32, alias string) *account.Account {
	return account.New(index, alias, m.bridge)
}

// Listen subscribes to wallet events of the given types; no types means
// every type. The engine-side listener is registered on first use and fans
// out to every subscription through the hub.
func (m *Manager) Listen(types ...event.Type) (*event.Subscription, error) {
	if m.closed.Load() {
		return nil, &walletbridge.TransportError{Method: "listen", Err: errClosed}
	}

	m.listenOnce.Do(func() {
		m.listenErr = m.bridge.Listen(nil, func(raw json.RawMessage) {
			var e event.Event
			if err := json.Unmarshal(raw, &e); err != nil {
				m.logger.Log(context.Background(), log.LevelWarn, "dropping undecodable event",
					log.Err(err),
				)

				return
			}

			m.hub.Publish(e)
		})
	})

	if m.listenErr != nil {
		return nil, m.listenErr
	}

	return m.hub.Subscribe(m.eventBuffer, types...), nil
}

// Close tears down the hub and releases the engine session. Safe to call
// more than once; later calls return nil without touching the engine again.
func (m *Manager) Close(ctx context.Context) error {
	var err error

	m.closeOnce.Do(func() {
		m.closed.Store(true)
		m.hub.Close()
		err = m.bridge.Destroy(ctx)

		if syncErr := m.logger.Sync(ctx); syncErr != nil && err == nil {
			err = syncErr
		}
	})

	return err
}
