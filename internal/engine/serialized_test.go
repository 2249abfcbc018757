package engine_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quorumid/internal/engine"
	id "quorumid/pkg/domain"
	"quorumid/pkg/testutil"
)

func TestSerializedConcurrentRegistration(t *testing.T) {
	ctx := context.Background()
	s := engine.NewSerialized(newEngine(t))

	const workers = 16
	results := make([]engine.Receipt, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = s.Apply(ctx, engine.RegisterIdentity{
				Caller:  testutil.Alice,
				Name:    fmt.Sprintf("attempt-%d", i),
				Contact: "alice@example.com",
			})
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, r := range results {
		if r.OK {
			succeeded++
			continue
		}
		assert.Equal(t, engine.ErrAlreadyRegistered, r.Code)
	}
	assert.Equal(t, 1, succeeded, "exactly one registration wins")
}

func TestSerializedBlocksDoNotInterleave(t *testing.T) {
	ctx := context.Background()
	s := engine.NewSerialized(newEngine(t))

	var wg sync.WaitGroup
	blocks := make([]engine.Block, 8)
	for i := range blocks {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			blocks[i] = s.ApplyBlock(ctx, []engine.Operation{
				engine.GetHeight{},
				engine.AdvanceBlock{Caller: testutil.Deployer},
				engine.GetHeight{},
			})
		}()
	}
	wg.Wait()

	for _, b := range blocks {
		require.Len(t, b.Receipts, 3)
		before := b.Receipts[0].Value.(id.Height)
		assert.Equal(t, before, b.Height)
		assert.Equal(t, before+1, b.Receipts[2].Value)
	}
	assert.Equal(t, id.Height(8), s.Height())

	s.Reset()
	assert.Equal(t, id.Height(0), s.Height())
	trail, err := s.AuditTrail(ctx)
	require.NoError(t, err)
	assert.Empty(t, trail)
}
