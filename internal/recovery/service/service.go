package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"quorumid/internal/recovery/models"
	id "quorumid/pkg/domain"
	dErrors "quorumid/pkg/domain-errors"
	audit "quorumid/pkg/platform/audit"
	"quorumid/pkg/platform/sentinel"
)

// IdentityDirectory answers whether an address holds an identity.
type IdentityDirectory interface {
	Exists(ctx context.Context, address id.Address) (bool, error)
}

// ValidatorDirectory answers whether an address is a validator right now.
type ValidatorDirectory interface {
	IsValidator(ctx context.Context, address id.Address) (bool, error)
}

// Metrics receives recovery outcomes.
type Metrics interface {
	IncrementApprovals()
	IncrementRecoveriesCompleted()
}

// Service is the recovery coordinator. Per old address a recovery moves
// NoRequest -> Pending(new, approvals) -> NoRequest; completion is the only way
// an identity changes address.
type Service struct {
	requests       RequestStore
	tx             RecoveryStoreTx
	identities     IdentityDirectory
	validators     ValidatorDirectory
	logger         *slog.Logger
	auditPublisher audit.Publisher
	metrics        Metrics
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

func WithMetrics(m Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service. Request state is read through requests outside a
// transaction and through tx when completing.
func New(requests RequestStore, tx RecoveryStoreTx, identities IdentityDirectory, validators ValidatorDirectory, opts ...Option) (*Service, error) {
	if requests == nil {
		return nil, errors.New("recovery request store is required")
	}
	if tx == nil {
		return nil, errors.New("recovery transaction runner is required")
	}
	if identities == nil || validators == nil {
		return nil, errors.New("identity and validator directories are required")
	}
	s := &Service{requests: requests, tx: tx, identities: identities, validators: validators}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Initiate opens a recovery of caller's identity to newAddress. Any pending
// request for caller is replaced and its approvals are discarded.
func (s *Service) Initiate(ctx context.Context, caller, newAddress id.Address) error {
	registered, err := s.identities.Exists(ctx, caller)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check identity")
	}
	if !registered {
		return dErrors.New(dErrors.CodeNotRegistered, "caller has no identity to recover")
	}
	request, err := models.NewRequest(caller, newAddress)
	if err != nil {
		return err
	}
	if err := s.requests.Save(ctx, request); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save recovery request")
	}
	s.logAudit(ctx, audit.EventRecoveryInitiated, caller, caller, "to "+newAddress.String())
	return nil
}

// Approve adds caller to the approval set of the recovery pending for
// oldAddress. Validator membership is checked at the time of approval.
func (s *Service) Approve(ctx context.Context, caller, oldAddress id.Address) error {
	isValidator, err := s.validators.IsValidator(ctx, caller)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check validator")
	}
	if !isValidator {
		return dErrors.New(dErrors.CodeNotAValidator, "only validators may approve recoveries")
	}
	request, err := s.requests.FindByOldAddress(ctx, oldAddress)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNoActiveRecovery, "no recovery in progress for address")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load recovery request")
	}
	if !request.Approve(caller) {
		return nil
	}
	if err := s.requests.Save(ctx, request); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save approval")
	}
	if s.metrics != nil {
		s.metrics.IncrementApprovals()
	}
	s.logAudit(ctx, audit.EventRecoveryApproved, oldAddress, caller, "")
	return nil
}

// Complete moves the identity at oldAddress to caller once quorum is reached.
// Caller must be the new address recorded on the request. The removal at
// oldAddress, the insertion at caller and the deletion of the request happen
// in one transaction.
func (s *Service) Complete(ctx context.Context, caller, oldAddress id.Address) error {
	err := s.tx.RunInTx(ctx, func(stores TxStores) error {
		request, err := stores.Requests.FindByOldAddress(ctx, oldAddress)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeInvalidRequest, "no recovery in progress for address")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load recovery request")
		}
		if !request.IsFor(caller) {
			return dErrors.New(dErrors.CodeInvalidRequest, "caller is not the recovery target")
		}
		if !request.HasQuorum() {
			return dErrors.New(dErrors.CodeInsufficientApprovals,
				fmt.Sprintf("%d of %d approvals", request.ApprovalCount(), models.QuorumThreshold))
		}
		if err := transfer(ctx, stores.Identities, oldAddress, caller); err != nil {
			return err
		}
		if err := stores.Requests.Delete(ctx, oldAddress); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to consume recovery request")
		}
		return nil
	})
	if err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.IncrementRecoveriesCompleted()
	}
	s.logAudit(ctx, audit.EventRecoveryCompleted, caller, caller, "recovered from "+oldAddress.String())
	return nil
}

// transfer rekeys the identity from old to new. The verification mark and
// two-factor flag travel with the record; a record already keyed at new is
// replaced.
func transfer(ctx context.Context, identities IdentityTxStore, oldAddress, newAddress id.Address) error {
	identity, err := identities.FindByAddress(ctx, oldAddress)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Wrap(err, dErrors.CodeInternal, "pending recovery has no identity to transfer")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load identity")
	}
	if oldAddress == newAddress {
		return nil
	}
	moved := identity.Rekeyed(newAddress)

	if err := identities.Delete(ctx, oldAddress); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove identity at old address")
	}
	if err := identities.SetVerified(ctx, oldAddress, false); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear verification at old address")
	}
	occupied, err := identities.Exists(ctx, newAddress)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check new address")
	}
	if occupied {
		err = identities.Update(ctx, moved)
	} else {
		err = identities.Create(ctx, moved)
	}
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to insert identity at new address")
	}
	if err := identities.SetVerified(ctx, newAddress, identity.Verified); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to carry verification to new address")
	}
	return nil
}

// Status returns the pending recovery for oldAddress, or nil.
func (s *Service) Status(ctx context.Context, oldAddress id.Address) (*models.Status, error) {
	request, err := s.requests.FindByOldAddress(ctx, oldAddress)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load recovery request")
	}
	status := request.Status()
	return &status, nil
}

func (s *Service) logAudit(ctx context.Context, event audit.AuditEvent, subject, actor id.Address, reason string) {
	audit.Record(ctx, s.logger, s.auditPublisher, event, subject, actor, reason)
}
