package store

import (
	"context"
	"sync"

	"quorumid/internal/validator/models"
	id "quorumid/pkg/domain"
	"quorumid/pkg/platform/sentinel"
)

type InMemory struct {
	mu         sync.RWMutex
	validators map[id.Address]models.Validator
}

func New() *InMemory {
	return &InMemory{validators: make(map[id.Address]models.Validator)}
}

// Save inserts or overwrites the record keyed at its address.
func (s *InMemory) Save(_ context.Context, validator *models.Validator) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.validators[validator.Address] = *validator
	return nil
}

func (s *InMemory) FindByAddress(_ context.Context, address id.Address) (*models.Validator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.validators[address]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &v, nil
}

func (s *InMemory) Exists(_ context.Context, address id.Address) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.validators[address]
	return ok, nil
}

func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.validators), nil
}

func (s *InMemory) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.validators = make(map[id.Address]models.Validator)
}
