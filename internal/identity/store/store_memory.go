package store

import (
	"context"
	"fmt"
	"sync"

	"quorumid/internal/identity/models"
	id "quorumid/pkg/domain"
	"quorumid/pkg/platform/sentinel"
)

// InMemory keeps identity records and the address-keyed verification marks.
// The two are separate because an address may be verified before it registers.
type InMemory struct {
	mu         sync.RWMutex
	identities map[id.Address]models.Identity
	verified   map[id.Address]struct{}
}

func New() *InMemory {
	return &InMemory{
		identities: make(map[id.Address]models.Identity),
		verified:   make(map[id.Address]struct{}),
	}
}

// Create inserts a record, failing with ErrConflict if one is already keyed at
// the address.
func (s *InMemory) Create(_ context.Context, identity *models.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.identities[identity.Address]; exists {
		return fmt.Errorf("identity %s: %w", identity.Address, sentinel.ErrConflict)
	}
	record := *identity
	record.Verified = false
	s.identities[identity.Address] = record
	return nil
}

// Update overwrites an existing record.
func (s *InMemory) Update(_ context.Context, identity *models.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.identities[identity.Address]; !exists {
		return fmt.Errorf("identity %s: %w", identity.Address, sentinel.ErrNotFound)
	}
	record := *identity
	record.Verified = false
	s.identities[identity.Address] = record
	return nil
}

// FindByAddress returns a copy of the record with Verified filled in.
func (s *InMemory) FindByAddress(_ context.Context, address id.Address) (*models.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.identities[address]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	_, record.Verified = s.verified[address]
	return &record, nil
}

func (s *InMemory) Exists(_ context.Context, address id.Address) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.identities[address]
	return ok, nil
}

// Delete removes the record keyed at address. The verification mark is left
// alone.
func (s *InMemory) Delete(_ context.Context, address id.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.identities[address]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.identities, address)
	return nil
}

// SetVerified marks or unmarks an address regardless of whether it holds a record.
func (s *InMemory) SetVerified(_ context.Context, address id.Address, verified bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if verified {
		s.verified[address] = struct{}{}
	} else {
		delete(s.verified, address)
	}
	return nil
}

func (s *InMemory) IsVerified(_ context.Context, address id.Address) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.verified[address]
	return ok, nil
}

// Count returns the number of registered identities.
func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.identities), nil
}

func (s *InMemory) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identities = make(map[id.Address]models.Identity)
	s.verified = make(map[id.Address]struct{})
}
