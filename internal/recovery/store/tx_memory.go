package store

import (
	"context"
	"errors"
	"sync"

	identitymodels "quorumid/internal/identity/models"
	"quorumid/internal/recovery/models"
	"quorumid/internal/recovery/service"
	id "quorumid/pkg/domain"
	dErrors "quorumid/pkg/domain-errors"
	"quorumid/pkg/platform/sentinel"
)

// IdentityStore is the identity store surface the journal needs to snapshot
// and restore records.
type IdentityStore interface {
	service.IdentityTxStore
	IsVerified(ctx context.Context, address id.Address) (bool, error)
}

// MemoryTx runs recovery transactions against in-memory stores under a coarse
// lock. Every key is snapshotted before its first write; if fn fails the
// snapshots are restored in reverse order.
type MemoryTx struct {
	mu         sync.Mutex
	identities IdentityStore
	requests   service.RequestStore
}

func NewMemoryTx(identities IdentityStore, requests service.RequestStore) *MemoryTx {
	return &MemoryTx{identities: identities, requests: requests}
}

func (t *MemoryTx) RunInTx(ctx context.Context, fn func(stores service.TxStores) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "transaction aborted: context cancelled")
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	j := &journal{}
	stores := service.TxStores{
		Identities: &journaledIdentities{inner: t.identities, j: j, seen: make(map[id.Address]bool)},
		Requests:   &journaledRequests{inner: t.requests, j: j, seen: make(map[id.Address]bool)},
	}
	if err := fn(stores); err != nil {
		if rbErr := j.rollback(ctx); rbErr != nil {
			return dErrors.Wrap(errors.Join(err, rbErr), dErrors.CodeInternal, "transaction rollback failed")
		}
		return err
	}
	return nil
}

type journal struct {
	undo []func(ctx context.Context) error
}

func (j *journal) push(fn func(ctx context.Context) error) {
	j.undo = append(j.undo, fn)
}

func (j *journal) rollback(ctx context.Context) error {
	var errs []error
	for i := len(j.undo) - 1; i >= 0; i-- {
		if err := j.undo[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type journaledIdentities struct {
	inner IdentityStore
	j     *journal
	seen  map[id.Address]bool
}

func (s *journaledIdentities) snapshot(ctx context.Context, address id.Address) error {
	if s.seen[address] {
		return nil
	}
	s.seen[address] = true
	record, err := s.inner.FindByAddress(ctx, address)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return err
	}
	verified, err := s.inner.IsVerified(ctx, address)
	if err != nil {
		return err
	}
	s.j.push(func(ctx context.Context) error {
		if err := s.inner.Delete(ctx, address); err != nil && !errors.Is(err, sentinel.ErrNotFound) {
			return err
		}
		if record != nil {
			if err := s.inner.Create(ctx, record); err != nil {
				return err
			}
		}
		return s.inner.SetVerified(ctx, address, verified)
	})
	return nil
}

func (s *journaledIdentities) FindByAddress(ctx context.Context, address id.Address) (*identitymodels.Identity, error) {
	return s.inner.FindByAddress(ctx, address)
}

func (s *journaledIdentities) Exists(ctx context.Context, address id.Address) (bool, error) {
	return s.inner.Exists(ctx, address)
}

func (s *journaledIdentities) Create(ctx context.Context, identity *identitymodels.Identity) error {
	if err := s.snapshot(ctx, identity.Address); err != nil {
		return err
	}
	return s.inner.Create(ctx, identity)
}

func (s *journaledIdentities) Update(ctx context.Context, identity *identitymodels.Identity) error {
	if err := s.snapshot(ctx, identity.Address); err != nil {
		return err
	}
	return s.inner.Update(ctx, identity)
}

func (s *journaledIdentities) Delete(ctx context.Context, address id.Address) error {
	if err := s.snapshot(ctx, address); err != nil {
		return err
	}
	return s.inner.Delete(ctx, address)
}

func (s *journaledIdentities) SetVerified(ctx context.Context, address id.Address, verified bool) error {
	if err := s.snapshot(ctx, address); err != nil {
		return err
	}
	return s.inner.SetVerified(ctx, address, verified)
}

type journaledRequests struct {
	inner service.RequestStore
	j     *journal
	seen  map[id.Address]bool
}

func (s *journaledRequests) snapshot(ctx context.Context, oldAddress id.Address) error {
	if s.seen[oldAddress] {
		return nil
	}
	s.seen[oldAddress] = true
	request, err := s.inner.FindByOldAddress(ctx, oldAddress)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return err
	}
	s.j.push(func(ctx context.Context) error {
		if request != nil {
			return s.inner.Save(ctx, request)
		}
		if err := s.inner.Delete(ctx, oldAddress); err != nil && !errors.Is(err, sentinel.ErrNotFound) {
			return err
		}
		return nil
	})
	return nil
}

func (s *journaledRequests) Save(ctx context.Context, request *models.Request) error {
	if err := s.snapshot(ctx, request.OldAddress); err != nil {
		return err
	}
	return s.inner.Save(ctx, request)
}

func (s *journaledRequests) FindByOldAddress(ctx context.Context, oldAddress id.Address) (*models.Request, error) {
	return s.inner.FindByOldAddress(ctx, oldAddress)
}

func (s *journaledRequests) Delete(ctx context.Context, oldAddress id.Address) error {
	if err := s.snapshot(ctx, oldAddress); err != nil {
		return err
	}
	return s.inner.Delete(ctx, oldAddress)
}
