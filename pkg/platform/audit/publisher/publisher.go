// Package publisher emits audit events synchronously into an audit.Store.
//
// Emission happens after a transition has been applied and never fails the
// transition: a store error is logged and returned for the caller to discard.
package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	id "quorumid/pkg/domain"
	audit "quorumid/pkg/platform/audit"
)

// Publisher stamps and persists audit events.
type Publisher struct {
	store  audit.Store
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Publisher)

// WithLogger sets a logger for error reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithClock overrides the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Publisher) {
		p.now = now
	}
}

func NewPublisher(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{store: store, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Emit validates, stamps and appends an event. The category is derived from
// the action when not set.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.Action == "" {
		return fmt.Errorf("audit event requires Action")
	}
	if event.Subject.IsNil() {
		return fmt.Errorf("audit event requires Subject")
	}
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = p.now()
	}
	if err := p.store.Append(ctx, event); err != nil {
		if p.logger != nil {
			p.logger.ErrorContext(ctx, "audit append failed",
				"action", event.Action,
				"subject", event.Subject.String(),
				"error", err,
			)
		}
		return fmt.Errorf("audit append failed: %w", err)
	}
	return nil
}

// List returns the events recorded for subject.
func (p *Publisher) List(ctx context.Context, subject id.Address) ([]audit.Event, error) {
	return p.store.ListBySubject(ctx, subject)
}

// ListAll returns every recorded event in emission order.
func (p *Publisher) ListAll(ctx context.Context) ([]audit.Event, error) {
	return p.store.ListAll(ctx)
}
