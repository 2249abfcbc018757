package service

import (
	"context"
	"errors"
	"log/slog"

	"quorumid/internal/access"
	"quorumid/internal/identity/models"
	id "quorumid/pkg/domain"
	dErrors "quorumid/pkg/domain-errors"
	audit "quorumid/pkg/platform/audit"
	"quorumid/pkg/platform/sentinel"
)

type Store interface {
	Create(ctx context.Context, identity *models.Identity) error
	Update(ctx context.Context, identity *models.Identity) error
	FindByAddress(ctx context.Context, address id.Address) (*models.Identity, error)
	Exists(ctx context.Context, address id.Address) (bool, error)
	SetVerified(ctx context.Context, address id.Address, verified bool) error
	IsVerified(ctx context.Context, address id.Address) (bool, error)
}

// Service is the identity registry and the verification authority. Both own
// state keyed by address in the same store.
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

// New constructs a Service.
func New(store Store, authority access.Authority, opts ...Option) *Service {
	s := &Service{store: store, authority: authority}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates an unverified identity for caller.
func (s *Service) Register(ctx context.Context, caller id.Address, name, contact string) error {
	identity, err := models.NewIdentity(caller, name, contact)
	if err != nil {
		return err
	}
	if err := s.store.Create(ctx, identity); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return dErrors.New(dErrors.CodeAlreadyRegistered, "address already holds an identity")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create identity")
	}
	s.logAudit(ctx, audit.EventIdentityRegistered, caller, caller, "")
	return nil
}

// Get returns the identity keyed at address, or nil when none exists.
func (s *Service) Get(ctx context.Context, address id.Address) (*models.Identity, error) {
	identity, err := s.store.FindByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load identity")
	}
	return identity, nil
}

// Exists reports whether address holds an identity.
func (s *Service) Exists(ctx context.Context, address id.Address) (bool, error) {
	ok, err := s.store.Exists(ctx, address)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check identity")
	}
	return ok, nil
}

// Verify marks target as verified. Only the authority may verify. The mark is
// address-keyed: target does not need a registered identity, and verifying
// twice is not an error.
func (s *Service) Verify(ctx context.Context, caller, target id.Address) error {
	if err := s.authority.Require(caller); err != nil {
		return err
	}
	if err := s.store.SetVerified(ctx, target, true); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to verify address")
	}
	s.logAudit(ctx, audit.EventIdentityVerified, target, caller, "")
	return nil
}

// IsVerified is a pure read of the verification mark.
func (s *Service) IsVerified(ctx context.Context, address id.Address) (bool, error) {
	ok, err := s.store.IsVerified(ctx, address)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check verification")
	}
	return ok, nil
}

// EnableTwoFactor sets the two-factor flag on caller's identity. Idempotent.
func (s *Service) EnableTwoFactor(ctx context.Context, caller id.Address) error {
	identity, err := s.store.FindByAddress(ctx, caller)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotRegistered, "caller has no identity")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load identity")
	}
	if identity.TwoFactor {
		return nil
	}
	identity.TwoFactor = true
	if err := s.store.Update(ctx, identity); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to enable two-factor")
	}
	s.logAudit(ctx, audit.EventTwoFactorEnabled, caller, caller, "")
	return nil
}

func (s *Service) logAudit(ctx context.Context, event audit.AuditEvent, subject, actor id.Address, reason string) {
	audit.Record(ctx, s.logger, s.auditPublisher, event, subject, actor, reason)
}
