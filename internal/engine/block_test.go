package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quorumid/internal/engine"
	identitymodels "quorumid/internal/identity/models"
	id "quorumid/pkg/domain"
	audit "quorumid/pkg/platform/audit"
	"quorumid/pkg/testutil"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.New(testutil.Deployer)
	require.NoError(t, err)
	return e
}

func TestApplyBlockKeepsSubmissionOrder(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	block := e.ApplyBlock(ctx, []engine.Operation{
		engine.RegisterIdentity{Caller: testutil.Alice, Name: "Alice", Contact: "alice@example.com"},
		engine.RegisterIdentity{Caller: testutil.Alice, Name: "Again", Contact: "again@example.com"},
		engine.VerifyIdentity{Caller: testutil.Alice, Target: testutil.Alice},
		engine.RegisterIdentity{Caller: testutil.Bob, Name: "Bob", Contact: "bob@example.com"},
		engine.IsVerified{Address: testutil.Alice},
	})

	require.Len(t, block.Receipts, 5)
	assert.False(t, block.ID.IsNil())
	assert.Equal(t, id.Height(0), block.Height)

	kinds := make([]engine.Kind, 0, len(block.Receipts))
	for _, r := range block.Receipts {
		kinds = append(kinds, r.Kind)
	}
	assert.Equal(t, []engine.Kind{
		engine.KindRegisterIdentity,
		engine.KindRegisterIdentity,
		engine.KindVerifyIdentity,
		engine.KindRegisterIdentity,
		engine.KindIsVerified,
	}, kinds)

	assert.True(t, block.Receipts[0].OK)
	assert.Equal(t, engine.ErrAlreadyRegistered, block.Receipts[1].Code)
	assert.Equal(t, engine.ErrNotAuthorized, block.Receipts[2].Code)
	assert.True(t, block.Receipts[3].OK, "a failure earlier in the block does not stop later operations")
	assert.Equal(t, false, block.Receipts[4].Value)

	receipt := e.Apply(ctx, engine.GetIdentity{Address: testutil.Alice})
	assert.Equal(t, "Alice", receipt.Value.(*identitymodels.Identity).Name, "earlier operations are not rolled back")
}

func TestApplyBlockDoesNotAdvanceHeight(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	e.ApplyBlock(ctx, []engine.Operation{engine.GetHeight{}, engine.GetHeight{}})
	assert.Equal(t, id.Height(0), e.Height())

	block := e.ApplyBlock(ctx, []engine.Operation{
		engine.AdvanceBlock{Caller: testutil.Deployer},
		engine.GetHeight{},
	})
	assert.Equal(t, id.Height(1), block.Receipts[1].Value, "operations see advances made earlier in the block")
	assert.Equal(t, id.Height(1), e.Height())
}

func TestApplyBlockEmptyList(t *testing.T) {
	block := newEngine(t).ApplyBlock(context.Background(), nil)
	assert.Empty(t, block.Receipts)
}

func TestBlockIDsCorrelateAuditEvents(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	first := e.ApplyBlock(ctx, []engine.Operation{
		engine.RegisterIdentity{Caller: testutil.Alice, Name: "Alice", Contact: "alice@example.com"},
		engine.VerifyIdentity{Caller: testutil.Deployer, Target: testutil.Alice},
	})
	second := e.ApplyBlock(ctx, []engine.Operation{
		engine.RegisterIdentity{Caller: testutil.Bob, Name: "Bob", Contact: "bob@example.com"},
	})
	require.NotEqual(t, first.ID, second.ID)

	trail, err := e.AuditTrail(ctx)
	require.NoError(t, err)
	require.Len(t, trail, 3)
	assert.Equal(t, audit.EventIdentityRegistered.String(), trail[0].Action)
	assert.Equal(t, first.ID, trail[0].BlockID)
	assert.Equal(t, audit.EventIdentityVerified.String(), trail[1].Action)
	assert.Equal(t, first.ID, trail[1].BlockID)
	assert.Equal(t, testutil.Deployer, trail[1].ActorID)
	assert.Equal(t, second.ID, trail[2].BlockID)
}

func TestCodeFor(t *testing.T) {
	assert.Equal(t, engine.ErrorCode(0), engine.CodeFor(nil))
	assert.Equal(t, engine.ErrInternal, engine.CodeFor(assert.AnError))
}
