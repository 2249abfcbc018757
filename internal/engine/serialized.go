package engine

import (
	"context"

	"github.com/sasha-s/go-deadlock"

	id "quorumid/pkg/domain"
	audit "quorumid/pkg/platform/audit"
)

// Serialized admits one caller at a time into an Engine. Use it when
// operations arrive from several goroutines; the Engine itself is not safe for
// concurrent use.
type Serialized struct {
	mu     deadlock.Mutex
	engine *Engine
}

func NewSerialized(engine *Engine) *Serialized {
	return &Serialized{engine: engine}
}

func (s *Serialized) Apply(ctx context.Context, op Operation) Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Apply(ctx, op)
}

// ApplyBlock holds the lock for the whole block so no other operation
// interleaves with it.
func (s *Serialized) ApplyBlock(ctx context.Context, ops []Operation) Block {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.ApplyBlock(ctx, ops)
}

func (s *Serialized) Height() id.Height {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Height()
}

func (s *Serialized) AuditTrail(ctx context.Context) ([]audit.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.AuditTrail(ctx)
}

func (s *Serialized) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Reset()
}
