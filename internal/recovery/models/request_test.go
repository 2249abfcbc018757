package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "quorumid/pkg/domain"
	dErrors "quorumid/pkg/domain-errors"
)

func TestRequestApprovals(t *testing.T) {
	t.Run("starts empty and below quorum", func(t *testing.T) {
		r, err := NewRequest("alice", "bob")
		require.NoError(t, err)
		assert.Zero(t, r.ApprovalCount())
		assert.False(t, r.HasQuorum())
		assert.Empty(t, r.Approvers())
	})

	t.Run("duplicate approvals do not count twice", func(t *testing.T) {
		r, err := NewRequest("alice", "bob")
		require.NoError(t, err)

		assert.True(t, r.Approve("v1"))
		for j := 0; j < 5; j++ {
			assert.False(t, r.Approve("v1"))
		}
		assert.Equal(t, 1, r.ApprovalCount())
		assert.False(t, r.HasQuorum())
	})

	t.Run("quorum needs three distinct validators in any order", func(t *testing.T) {
		orders := [][]id.Address{
			{"v1", "v2", "v3"},
			{"v3", "v1", "v2"},
			{"v2", "v3", "v1"},
		}
		for _, order := range orders {
			r, err := NewRequest("alice", "bob")
			require.NoError(t, err)
			for i, v := range order {
				assert.False(t, r.HasQuorum(), "quorum before approval %d", i)
				r.Approve(v)
			}
			assert.True(t, r.HasQuorum())
			assert.Equal(t, []id.Address{"v1", "v2", "v3"}, r.Approvers())
		}
	})

	t.Run("requires the address being recovered", func(t *testing.T) {
		_, err := NewRequest("", "bob")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func TestRequestClone(t *testing.T) {
	r, err := NewRequest("alice", "bob")
	require.NoError(t, err)
	r.Approve("v1")

	c := r.Clone()
	c.Approve("v2")

	assert.Equal(t, 1, r.ApprovalCount())
	assert.Equal(t, 2, c.ApprovalCount())
	assert.True(t, c.HasApproved("v1"))
	assert.False(t, r.HasApproved("v2"))
}

func TestRequestStatus(t *testing.T) {
	r, err := NewRequest("alice", "bob")
	require.NoError(t, err)
	r.Approve("v2")
	r.Approve("v1")

	status := r.Status()
	assert.Equal(t, id.Address("alice"), status.OldAddress)
	assert.Equal(t, id.Address("bob"), status.NewAddress)
	assert.Equal(t, []id.Address{"v1", "v2"}, status.Approvers)
	assert.Equal(t, 2, status.Approvals)
	assert.Equal(t, QuorumThreshold, status.Threshold)
	assert.True(t, r.IsFor("bob"))
	assert.False(t, r.IsFor("alice"))
}
