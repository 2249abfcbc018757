package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	id "quorumid/pkg/domain"
	dErrors "quorumid/pkg/domain-errors"
	audit "quorumid/pkg/platform/audit"
	"quorumid/pkg/platform/sentinel"
)

type Store interface {
	Touch(ctx context.Context, address id.Address, height id.Height) error
	LastActive(ctx context.Context, address id.Address) (id.Height, error)
}

// IdentityDirectory answers whether an address holds an identity.
type IdentityDirectory interface {
	Exists(ctx context.Context, address id.Address) (bool, error)
}

// HeightSource supplies the current block height.
type HeightSource interface {
	Height() id.Height
}

// Service tracks the last height at which each registered address was active.
type Service struct {
	store          Store
	identities     IdentityDirectory
	clock          HeightSource
	logger         *slog.Logger
	auditPublisher audit.Publisher
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher audit.Publisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func New(store Store, identities IdentityDirectory, clock HeightSource, opts ...Option) *Service {
	s := &Service{store: store, identities: identities, clock: clock}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Touch records the current height as caller's last activity.
func (s *Service) Touch(ctx context.Context, caller id.Address) error {
	registered, err := s.identities.Exists(ctx, caller)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check identity")
	}
	if !registered {
		return dErrors.New(dErrors.CodeNotRegistered, "activity is only tracked for registered identities")
	}
	height := s.clock.Height()
	if err := s.store.Touch(ctx, caller, height); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record activity")
	}
	audit.Record(ctx, s.logger, s.auditPublisher, audit.EventActivityRecorded, caller, caller,
		fmt.Sprintf("height %d", height))
	return nil
}

// LastActive returns the last recorded height for address and whether one exists.
func (s *Service) LastActive(ctx context.Context, address id.Address) (id.Height, bool, error) {
	height, err := s.store.LastActive(ctx, address)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return 0, false, nil
		}
		return 0, false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load activity")
	}
	return height, true, nil
}
