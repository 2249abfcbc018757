// Package engine owns the complete registry state and applies operations to
// it. One Engine is one independent world; nothing is shared between
// instances.
package engine

//go:generate mockgen -source=engine.go -destination=mocks/mocks.go -package=mocks AuditPublisher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"quorumid/internal/access"
	activityservice "quorumid/internal/activity/service"
	activitystore "quorumid/internal/activity/store"
	blacklistservice "quorumid/internal/blacklist/service"
	blackliststore "quorumid/internal/blacklist/store"
	"quorumid/internal/clock"
	identityservice "quorumid/internal/identity/service"
	identitystore "quorumid/internal/identity/store"
	"quorumid/internal/platform/metrics"
	recoveryservice "quorumid/internal/recovery/service"
	recoverystore "quorumid/internal/recovery/store"
	validatorservice "quorumid/internal/validator/service"
	validatorstore "quorumid/internal/validator/store"
	id "quorumid/pkg/domain"
	audit "quorumid/pkg/platform/audit"
	"quorumid/pkg/platform/audit/publisher"
	auditstore "quorumid/pkg/platform/audit/store/memory"
)

// AuditPublisher receives every audit event the engine emits, in addition to
// the engine's own audit trail.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Engine is the registry state machine. It assumes serialized invocation; wrap
// it in Serialized when several goroutines submit operations.
type Engine struct {
	authority access.Authority
	logger    *slog.Logger
	metrics   *metrics.Metrics

	identityStore  *identitystore.InMemory
	validatorStore *validatorstore.InMemory
	blacklistStore *blackliststore.InMemory
	activityStore  *activitystore.InMemory
	requestStore   *recoverystore.InMemory
	auditStore     *auditstore.InMemoryStore

	clock      *clock.Clock
	identities *identityservice.Service
	validators *validatorservice.Service
	blacklist  *blacklistservice.Service
	activity   *activityservice.Service
	recovery   *recoveryservice.Service
}

type options struct {
	logger    *slog.Logger
	metrics   *metrics.Metrics
	publisher AuditPublisher
}

type Option func(o *options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithAuditPublisher forwards audit events to publisher as well as to the
// engine's audit trail.
func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(o *options) {
		o.publisher = publisher
	}
}

// New builds an Engine at height 0 with no state. authority is the only
// address allowed to verify identities, blacklist addresses and advance the
// clock.
func New(authority id.Address, opts ...Option) (*Engine, error) {
	if authority.IsNil() {
		return nil, errors.New("authority address is required")
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	e := &Engine{
		authority:      access.NewAuthority(authority),
		logger:         o.logger,
		metrics:        o.metrics,
		identityStore:  identitystore.New(),
		validatorStore: validatorstore.New(),
		blacklistStore: blackliststore.New(),
		activityStore:  activitystore.New(),
		requestStore:   recoverystore.New(),
		auditStore:     auditstore.NewInMemoryStore(),
	}

	var auditPublisher audit.Publisher = publisher.NewPublisher(e.auditStore, publisher.WithLogger(o.logger))
	if o.publisher != nil {
		auditPublisher = fanout{auditPublisher, o.publisher}
	}

	e.clock = clock.New(e.authority, clock.WithLogger(o.logger))
	e.identities = identityservice.New(e.identityStore, e.authority,
		identityservice.WithLogger(o.logger),
		identityservice.WithAuditPublisher(auditPublisher),
	)
	e.validators = validatorservice.New(e.validatorStore, e.identities,
		validatorservice.WithLogger(o.logger),
		validatorservice.WithAuditPublisher(auditPublisher),
	)
	e.blacklist = blacklistservice.New(e.blacklistStore, e.authority,
		blacklistservice.WithLogger(o.logger),
		blacklistservice.WithAuditPublisher(auditPublisher),
	)
	e.activity = activityservice.New(e.activityStore, e.identities, e.clock,
		activityservice.WithLogger(o.logger),
		activityservice.WithAuditPublisher(auditPublisher),
	)
	recovery, err := recoveryservice.New(
		e.requestStore,
		recoverystore.NewMemoryTx(e.identityStore, e.requestStore),
		e.identities,
		e.validators,
		recoveryservice.WithLogger(o.logger),
		recoveryservice.WithAuditPublisher(auditPublisher),
		recoveryservice.WithMetrics(o.metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("build recovery coordinator: %w", err)
	}
	e.recovery = recovery
	return e, nil
}

// Authority returns the designated authority address.
func (e *Engine) Authority() id.Address {
	return e.authority.Address()
}

// Height returns the current block height.
func (e *Engine) Height() id.Height {
	return e.clock.Height()
}

// AuditTrail returns every audit event emitted since construction or the last
// Reset, in emission order.
func (e *Engine) AuditTrail(ctx context.Context) ([]audit.Event, error) {
	return e.auditStore.ListAll(ctx)
}

// Reset discards all state and returns the height to 0.
func (e *Engine) Reset() {
	e.identityStore.Reset()
	e.validatorStore.Reset()
	e.blacklistStore.Reset()
	e.activityStore.Reset()
	e.requestStore.Reset()
	e.auditStore.Clear()
	e.clock.Reset()
	e.metrics.SetHeight(0)
}

// fanout emits to every publisher and reports the first failure.
type fanout []audit.Publisher

func (f fanout) Emit(ctx context.Context, event audit.Event) error {
	var first error
	for _, p := range f {
		if err := p.Emit(ctx, event); err != nil && first == nil {
			first = err
		}
	}
	return first
}
