package service

import (
	"context"
	"errors"
	"log/slog"

	"quorumid/internal/validator/models"
	id "quorumid/pkg/domain"
	dErrors "quorumid/pkg/domain-errors"
	audit "quorumid/pkg/platform/audit"
	"quorumid/pkg/platform/sentinel"
)

type Store interface {
	Save(ctx context.Context, validator *models.Validator) error
	FindByAddress(ctx context.Context, address id.Address) (*models.Validator, error)
	Exists(ctx context.Context, address id.Address) (bool, error)
}

// VerificationChecker answers whether an address carries the verification mark.
type VerificationChecker interface {
	IsVerified(ctx context.Context, address id.Address) (bool, error)
}

// Service is the validator registry.
type Service struct {
	store          Store
	verification   VerificationChecker
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

func New(store Store, verification VerificationChecker, opts ...Option) *Service {
	s := &Service{store: store, verification: verification}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register makes caller a validator. Caller must be verified; registration is
// not required. Registering again overwrites the record and resets the trust
// score.
func (s *Service) Register(ctx context.Context, caller id.Address) error {
	verified, err := s.verification.IsVerified(ctx, caller)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check verification")
	}
	if !verified {
		return dErrors.New(dErrors.CodeNotVerified, "only verified addresses may become validators")
	}
	if err := s.store.Save(ctx, models.NewValidator(caller)); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save validator")
	}
	s.logAudit(ctx, audit.EventValidatorRegistered, caller)
	return nil
}

// Stats returns the trust score for address, or nil when it is not a validator.
func (s *Service) Stats(ctx context.Context, address id.Address) (*models.Stats, error) {
	v, err := s.store.FindByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load validator")
	}
	return &models.Stats{TrustScore: v.TrustScore}, nil
}

// IsValidator is a live membership test.
func (s *Service) IsValidator(ctx context.Context, address id.Address) (bool, error) {
	ok, err := s.store.Exists(ctx, address)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check validator")
	}
	return ok, nil
}

func (s *Service) logAudit(ctx context.Context, event audit.AuditEvent, subject id.Address) {
	audit.Record(ctx, s.logger, s.auditPublisher, event, subject, subject, "")
}
