package service

import (
	"context"
	"errors"
	"log/slog"

	"quorumid/internal/access"
	"quorumid/internal/blacklist/store"
	id "quorumid/pkg/domain"
	dErrors "quorumid/pkg/domain-errors"
	audit "quorumid/pkg/platform/audit"
	"quorumid/pkg/platform/sentinel"
)

type Store interface {
	Put(ctx context.Context, entry store.Entry) error
	Find(ctx context.Context, address id.Address) (*store.Entry, error)
}

// Service records blacklisted addresses. The blacklist is advisory: nothing
// else in the engine consults it.
type Service struct {
	store          Store
	authority      access.Authority
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

func New(store Store, authority access.Authority, opts ...Option) *Service {
	s := &Service{store: store, authority: authority}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Blacklist records target with reason, replacing any earlier reason.
func (s *Service) Blacklist(ctx context.Context, caller, target id.Address, reason string) error {
	if err := s.authority.Require(caller); err != nil {
		if s.logger != nil {
			s.logger.DebugContext(ctx, "blacklist rejected", "caller", caller.String())
		}
		return err
	}
	if err := s.store.Put(ctx, store.Entry{Address: target, Reason: reason}); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save blacklist entry")
	}
	audit.Record(ctx, s.logger, s.auditPublisher, audit.EventAddressBlacklisted, target, caller, reason)
	return nil
}

func (s *Service) IsBlacklisted(ctx context.Context, address id.Address) (bool, error) {
	_, ok, err := s.find(ctx, address)
	return ok, err
}

// Reason returns the recorded reason and whether address is blacklisted.
func (s *Service) Reason(ctx context.Context, address id.Address) (string, bool, error) {
	entry, ok, err := s.find(ctx, address)
	if !ok || err != nil {
		return "", ok, err
	}
	return entry.Reason, true, nil
}

func (s *Service) find(ctx context.Context, address id.Address) (*store.Entry, bool, error) {
	entry, err := s.store.Find(ctx, address)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load blacklist entry")
	}
	return entry, true, nil
}
