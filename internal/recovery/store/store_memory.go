package store

import (
	"context"
	"sync"

	"quorumid/internal/recovery/models"
	id "quorumid/pkg/domain"
	"quorumid/pkg/platform/sentinel"
)

// InMemory holds pending recovery requests keyed by the address being
// recovered. Requests are cloned on the way in and out.
type InMemory struct {
	mu       sync.RWMutex
	requests map[id.Address]*models.Request
}

func New() *InMemory {
	return &InMemory{requests: make(map[id.Address]*models.Request)}
}

// Save inserts or overwrites the request keyed at its old address.
func (s *InMemory) Save(_ context.Context, request *models.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[request.OldAddress] = request.Clone()
	return nil
}

func (s *InMemory) FindByOldAddress(_ context.Context, oldAddress id.Address) (*models.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	request, ok := s.requests[oldAddress]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return request.Clone(), nil
}

// Delete consumes the request keyed at oldAddress.
func (s *InMemory) Delete(_ context.Context, oldAddress id.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[oldAddress]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.requests, oldAddress)
	return nil
}

// Count returns the number of pending requests.
func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.requests), nil
}

func (s *InMemory) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = make(map[id.Address]*models.Request)
}
