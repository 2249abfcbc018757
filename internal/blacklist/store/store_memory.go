package store

import (
	"context"
	"sync"

	id "quorumid/pkg/domain"
	"quorumid/pkg/platform/sentinel"
)

// Entry is a blacklist record. Entries never expire.
type Entry struct {
	Address id.Address `json:"address"`
	Reason  string     `json:"reason"`
}

type InMemory struct {
	mu      sync.RWMutex
	entries map[id.Address]Entry
}

func New() *InMemory {
	return &InMemory{entries: make(map[id.Address]Entry)}
}

// Put inserts or overwrites the entry for its address.
func (s *InMemory) Put(_ context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.Address] = entry
	return nil
}

func (s *InMemory) Find(_ context.Context, address id.Address) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[address]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &entry, nil
}

func (s *InMemory) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[id.Address]Entry)
}
