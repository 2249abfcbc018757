package store

import (
	"context"
	"sync"

	id "quorumid/pkg/domain"
	"quorumid/pkg/platform/sentinel"
)

type InMemory struct {
	mu         sync.RWMutex
	lastActive map[id.Address]id.Height
}

func New() *InMemory {
	return &InMemory{lastActive: make(map[id.Address]id.Height)}
}

func (s *InMemory) Touch(_ context.Context, address id.Address, height id.Height) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive[address] = height
	return nil
}

func (s *InMemory) LastActive(_ context.Context, address id.Address) (id.Height, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	height, ok := s.lastActive[address]
	if !ok {
		return 0, sentinel.ErrNotFound
	}
	return height, nil
}

func (s *InMemory) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = make(map[id.Address]id.Height)
}
